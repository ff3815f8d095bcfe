package service

import (
	"context"
	"log/slog"

	"github.com/fleshka4/bonding-curve/internal/config"
	"github.com/fleshka4/bonding-curve/internal/ledger"
	"github.com/fleshka4/bonding-curve/internal/service/dto"
	"github.com/fleshka4/bonding-curve/internal/service/validate"
)

// Deposit credits native value to an account and returns its new balance.
func (s *CurveService) Deposit(ctx context.Context, req dto.DepositRequest) (uint64, error) {
	if err := validate.DepositRequestValidate(req); err != nil {
		return 0, err
	}

	var bal uint64
	err := s.store.Ledger(ctx, func(l *ledger.Ledger) error {
		if err := l.Mint(ledger.Native, req.Account, req.Amount); err != nil {
			return err
		}
		var err error
		bal, err = l.Balance(ledger.Native, req.Account)
		return err
	})
	if err != nil {
		return 0, err
	}
	return bal, nil
}

// Balance returns the holding of an asset by an account.
func (s *CurveService) Balance(ctx context.Context, req dto.BalanceRequest) (uint64, error) {
	if err := validate.BalanceRequestValidate(req); err != nil {
		return 0, err
	}

	var bal uint64
	err := s.store.View(ctx, func(l *ledger.Ledger) error {
		var err error
		bal, err = l.Balance(req.Asset, req.Account)
		return err
	})
	if err != nil {
		return 0, err
	}
	return bal, nil
}

// Config returns the current curve configuration.
func (s *CurveService) Config(_ context.Context) config.Params {
	return s.params.Snapshot()
}

// UpdateConfig applies a partial configuration update. Curves created
// earlier keep their threshold and coefficient.
func (s *CurveService) UpdateConfig(ctx context.Context, u config.ParamsUpdate) (config.Params, error) {
	p, err := s.params.Update(u)
	if err != nil {
		return config.Params{}, err
	}
	s.logger.InfoContext(ctx, "curve configuration updated",
		slog.String("fee_recipient", p.FeeRecipient.Hex()),
		slog.String("migration_recipient", p.MigrationRecipient.Hex()),
		slog.Uint64("buy_fee_bps", uint64(p.BuyFeeBps)),
		slog.Uint64("sell_fee_bps", uint64(p.SellFeeBps)),
	)
	return p, nil
}
