package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/bonding-curve/internal/ledger"
	"github.com/fleshka4/bonding-curve/internal/notify"
	"github.com/fleshka4/bonding-curve/internal/reserve"
	"github.com/fleshka4/bonding-curve/internal/service/dto"
	"github.com/fleshka4/bonding-curve/internal/service/validate"
	"github.com/fleshka4/bonding-curve/internal/store"
)

// CreateCurve launches a curve for req.Mint with the current configuration.
// The creator pays the deploy fee and the pool receives the whole token
// supply, of which the threshold is offered on the curve.
func (s *CurveService) CreateCurve(ctx context.Context, req dto.CreateCurveRequest) (dto.CurveInfo, error) {
	if err := validate.CreateCurveRequestValidate(req); err != nil {
		return dto.CurveInfo{}, err
	}

	p := s.params.Snapshot()
	state, err := reserve.New(p.TokenThreshold, p.CurveCoefficient)
	if err != nil {
		return dto.CurveInfo{}, err
	}

	c := store.Curve{
		Mint:      req.Mint,
		Pool:      reserve.PoolAddress(req.Mint),
		Creator:   req.Creator,
		State:     state,
		CreatedAt: s.now().UTC(),
	}

	err = s.store.Create(ctx, c, func(l *ledger.Ledger) error {
		fee := []ledger.Transfer{{
			Asset:  ledger.Native,
			From:   req.Creator,
			To:     p.FeeRecipient,
			Amount: p.DeployFee,
		}}
		if err := l.Settle(ctx, fee); err != nil {
			return errors.Wrap(err, "deploy fee")
		}
		if err := l.AddCustodian(c.Pool); err != nil {
			return errors.Wrap(err, "l.AddCustodian")
		}
		return l.Mint(req.Mint, c.Pool, p.TokenSupply)
	})
	if err != nil {
		return dto.CurveInfo{}, err
	}

	s.publish(ctx, notify.Record{
		Kind:          notify.KindCreate,
		Mint:          c.Mint,
		Actor:         c.Creator,
		Fee:           p.DeployFee,
		TokenAmount:   p.TokenSupply,
		ReserveValue:  state.ReserveValue,
		ReserveTokens: state.ReserveTokens,
	})

	return dto.CurveInfo{
		Curve:      c,
		Status:     reserve.StatusActive,
		PoolTokens: p.TokenSupply,
	}, nil
}

// Curve returns the curve of mint with its lifecycle status.
func (s *CurveService) Curve(ctx context.Context, mint common.Address) (dto.CurveInfo, error) {
	c, err := s.store.Curve(ctx, mint)
	if err != nil {
		return dto.CurveInfo{}, err
	}

	var info dto.CurveInfo
	err = s.store.View(ctx, func(l *ledger.Ledger) error {
		var err error
		info, err = describe(c, l)
		return err
	})
	if err != nil {
		return dto.CurveInfo{}, err
	}
	return info, nil
}

// Curves lists every curve with its lifecycle status.
func (s *CurveService) Curves(ctx context.Context) ([]dto.CurveInfo, error) {
	curves, err := s.store.Curves(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CurveInfo, 0, len(curves))
	err = s.store.View(ctx, func(l *ledger.Ledger) error {
		for _, c := range curves {
			info, err := describe(c, l)
			if err != nil {
				return err
			}
			out = append(out, info)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func describe(c store.Curve, l *ledger.Ledger) (dto.CurveInfo, error) {
	poolTokens, err := l.Balance(c.Mint, c.Pool)
	if err != nil {
		return dto.CurveInfo{}, errors.Wrap(err, "l.Balance")
	}
	return dto.CurveInfo{
		Curve:       c,
		Status:      c.State.Status(poolTokens),
		Circulating: c.State.Circulating(),
		PoolTokens:  poolTokens,
	}, nil
}
