package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fleshka4/bonding-curve/internal/config"
	"github.com/fleshka4/bonding-curve/internal/engine"
	"github.com/fleshka4/bonding-curve/internal/notify"
	"github.com/fleshka4/bonding-curve/internal/reserve"
	"github.com/fleshka4/bonding-curve/internal/service/dto"
	"github.com/fleshka4/bonding-curve/internal/store"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

// Service represents interface for business logic.
type Service interface {
	Estimate(ctx context.Context, req dto.EstimateRequest) (engine.Quote, error)
	Cost(ctx context.Context, req dto.CostRequest) (engine.Quote, error)
	CreateCurve(ctx context.Context, req dto.CreateCurveRequest) (dto.CurveInfo, error)
	Curve(ctx context.Context, mint common.Address) (dto.CurveInfo, error)
	Curves(ctx context.Context) ([]dto.CurveInfo, error)
	Buy(ctx context.Context, req dto.BuyRequest) (engine.Quote, error)
	Sell(ctx context.Context, req dto.SellRequest) (engine.Quote, error)
	Withdraw(ctx context.Context, mint common.Address) (engine.Quote, error)
	Deposit(ctx context.Context, req dto.DepositRequest) (uint64, error)
	Balance(ctx context.Context, req dto.BalanceRequest) (uint64, error)
	Config(ctx context.Context) config.Params
	UpdateConfig(ctx context.Context, u config.ParamsUpdate) (config.Params, error)
}

// CurveReader reads the reserve state of a curve.
type CurveReader interface {
	ReadCurve(ctx context.Context, mint common.Address) (reserve.State, error)
}

// ParamsStore holds the curve configuration.
type ParamsStore interface {
	config.Provider
	Update(u config.ParamsUpdate) (config.Params, error)
}

// CurveService represents struct for business logic.
type CurveService struct {
	store  store.Store
	reader CurveReader
	params ParamsStore
	sink   notify.Sink
	logger *slog.Logger
	now    func() time.Time
}

// NewCurveService creates CurveService. Estimates read reserves through
// reader, which may be the store itself or a chain client.
func NewCurveService(
	st store.Store,
	reader CurveReader,
	params ParamsStore,
	sink notify.Sink,
	logger *slog.Logger,
) *CurveService {
	return &CurveService{
		store:  st,
		reader: reader,
		params: params,
		sink:   sink,
		logger: logger,
		now:    time.Now,
	}
}

// flush delivers the records of a committed operation.
func (s *CurveService) flush(ctx context.Context, buf *notify.Buffer) {
	if err := buf.Flush(ctx, s.sink); err != nil {
		s.logger.WarnContext(ctx, "deliver curve records", slog.Any("error", err))
	}
}

// publish delivers the record of an operation that committed outside the
// engine.
func (s *CurveService) publish(ctx context.Context, r notify.Record) {
	if err := s.sink.Publish(ctx, r); err != nil {
		s.logger.WarnContext(ctx, "deliver curve record",
			slog.String("kind", string(r.Kind)),
			slog.Any("error", err),
		)
	}
}
