package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/fleshka4/bonding-curve/internal/engine"
	"github.com/fleshka4/bonding-curve/internal/notify"
	"github.com/fleshka4/bonding-curve/internal/service/dto"
	"github.com/fleshka4/bonding-curve/internal/service/validate"
)

// Estimate prices a buy of req.Amount value or a sell of req.Amount tokens
// against the current reserves without executing it.
func (s *CurveService) Estimate(ctx context.Context, req dto.EstimateRequest) (engine.Quote, error) {
	if err := validate.EstimateRequestValidate(req); err != nil {
		return engine.Quote{}, err
	}

	state, err := s.reader.ReadCurve(ctx, req.Mint)
	if err != nil {
		return engine.Quote{}, errors.Wrap(err, "s.reader.ReadCurve")
	}

	p := s.params.Snapshot()
	if req.Side == notify.KindSell {
		return engine.QuoteSell(state, p, req.Amount, 0)
	}
	return engine.QuoteBuy(state, p, req.Amount, 0)
}

// Cost prices buying exactly req.Tokens.
func (s *CurveService) Cost(ctx context.Context, req dto.CostRequest) (engine.Quote, error) {
	if err := validate.CostRequestValidate(req); err != nil {
		return engine.Quote{}, err
	}

	state, err := s.reader.ReadCurve(ctx, req.Mint)
	if err != nil {
		return engine.Quote{}, errors.Wrap(err, "s.reader.ReadCurve")
	}

	return engine.QuoteCost(state, s.params.Snapshot(), req.Tokens)
}
