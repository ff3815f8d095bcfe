package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/bonding-curve/internal/apperrors"
	"github.com/fleshka4/bonding-curve/internal/engine"
	"github.com/fleshka4/bonding-curve/internal/ledger"
	"github.com/fleshka4/bonding-curve/internal/notify"
	"github.com/fleshka4/bonding-curve/internal/service/dto"
	"github.com/fleshka4/bonding-curve/internal/service/validate"
	"github.com/fleshka4/bonding-curve/internal/store"
)

// Buy executes a buy. The reserve update and the transfers commit in one
// store transaction; records are delivered after the commit.
func (s *CurveService) Buy(ctx context.Context, req dto.BuyRequest) (engine.Quote, error) {
	if err := validate.BuyRequestValidate(req); err != nil {
		return engine.Quote{}, err
	}

	order := engine.BuyOrder{Buyer: req.Buyer, Value: req.Value, MinTokens: req.MinTokens}
	return s.trade(ctx, req.Mint, func(eng *engine.Engine, c *store.Curve, l *ledger.Ledger) (engine.Quote, error) {
		return eng.Buy(ctx, l, c.Mint, &c.State, s.params.Snapshot(), order)
	})
}

// Sell executes a sell.
func (s *CurveService) Sell(ctx context.Context, req dto.SellRequest) (engine.Quote, error) {
	if err := validate.SellRequestValidate(req); err != nil {
		return engine.Quote{}, err
	}

	order := engine.SellOrder{Seller: req.Seller, Tokens: req.Tokens, MinValue: req.MinValue}
	return s.trade(ctx, req.Mint, func(eng *engine.Engine, c *store.Curve, l *ledger.Ledger) (engine.Quote, error) {
		return eng.Sell(ctx, l, c.Mint, &c.State, s.params.Snapshot(), order)
	})
}

// Withdraw migrates the proceeds of a completed curve.
func (s *CurveService) Withdraw(ctx context.Context, mint common.Address) (engine.Quote, error) {
	return s.trade(ctx, mint, func(eng *engine.Engine, c *store.Curve, l *ledger.Ledger) (engine.Quote, error) {
		return eng.Withdraw(ctx, l, c.Mint, &c.State, s.params.Snapshot())
	})
}

type operation func(eng *engine.Engine, c *store.Curve, l *ledger.Ledger) (engine.Quote, error)

func (s *CurveService) trade(ctx context.Context, mint common.Address, op operation) (engine.Quote, error) {
	if mint == (common.Address{}) {
		return engine.Quote{}, errors.Wrap(apperrors.ErrInvalidArgument, "mint address cannot be empty")
	}

	buf := &notify.Buffer{}
	eng := engine.New(buf, s.logger)

	var q engine.Quote
	_, err := s.store.Update(ctx, mint, func(c *store.Curve, l *ledger.Ledger) error {
		var err error
		q, err = op(eng, c, l)
		return err
	})
	if err != nil {
		return engine.Quote{}, err
	}

	s.flush(ctx, buf)
	return q, nil
}
