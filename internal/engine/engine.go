// Package engine executes buys, sells and the final withdrawal against the
// reserve of one bonding curve.
//
// The engine has no locks. The caller owns the reserve state exclusively for
// the duration of a call and commits the returned state together with the
// ledger writes.
package engine

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/bonding-curve/internal/config"
	"github.com/fleshka4/bonding-curve/internal/ledger"
	"github.com/fleshka4/bonding-curve/internal/notify"
	"github.com/fleshka4/bonding-curve/internal/reserve"
)

//go:generate mockgen -source=engine.go -destination=mock/engine.go -package=mock

// Ledger moves balances for a trade.
type Ledger interface {
	Balance(asset, owner common.Address) (uint64, error)
	Settle(ctx context.Context, transfers []ledger.Transfer) error
}

// Notifier receives a record of every committed operation.
type Notifier interface {
	Publish(ctx context.Context, r notify.Record) error
}

// BuyOrder asks to spend Value on tokens and accept no fewer than MinTokens.
type BuyOrder struct {
	Buyer     common.Address
	Value     uint64
	MinTokens uint64
}

// SellOrder asks to sell Tokens and accept no less value than MinValue.
type SellOrder struct {
	Seller   common.Address
	Tokens   uint64
	MinValue uint64
}

// Engine runs operations and reports them to a Notifier.
type Engine struct {
	notifier Notifier
	logger   *slog.Logger
}

// New creates Engine.
func New(n Notifier, logger *slog.Logger) *Engine {
	return &Engine{notifier: n, logger: logger}
}

// Buy quotes the order, settles its transfers through led and advances state.
// state is written only after the transfers settle.
func (e *Engine) Buy(
	ctx context.Context,
	led Ledger,
	mint common.Address,
	state *reserve.State,
	p config.Params,
	o BuyOrder,
) (Quote, error) {
	q, err := QuoteBuy(*state, p, o.Value, o.MinTokens)
	if err != nil {
		return Quote{}, err
	}

	next := *state
	if err = next.ApplyBuy(q.ValueAmount, q.TokenAmount); err != nil {
		return Quote{}, err
	}

	pool := reserve.PoolAddress(mint)
	transfers := []ledger.Transfer{
		{Asset: ledger.Native, From: o.Buyer, To: pool, Amount: q.ValueAmount},
		{Asset: mint, From: pool, To: o.Buyer, Amount: q.TokenAmount, PoolAuthorized: true},
		{Asset: ledger.Native, From: o.Buyer, To: p.FeeRecipient, Amount: q.Fee},
	}
	if err = led.Settle(ctx, transfers); err != nil {
		return Quote{}, errors.Wrap(err, "led.Settle")
	}

	*state = next
	e.publish(ctx, notify.Record{
		Kind:          notify.KindBuy,
		Mint:          mint,
		Actor:         o.Buyer,
		ValueAmount:   q.ValueAmount,
		TokenAmount:   q.TokenAmount,
		Fee:           q.Fee,
		ReserveValue:  state.ReserveValue,
		ReserveTokens: state.ReserveTokens,
	})
	return q, nil
}

// Sell quotes the order, settles its transfers through led and rewinds state.
// state is written only after the transfers settle.
func (e *Engine) Sell(
	ctx context.Context,
	led Ledger,
	mint common.Address,
	state *reserve.State,
	p config.Params,
	o SellOrder,
) (Quote, error) {
	q, err := QuoteSell(*state, p, o.Tokens, o.MinValue)
	if err != nil {
		return Quote{}, err
	}

	next := *state
	if err = next.ApplySell(q.ValueAmount, q.TokenAmount); err != nil {
		return Quote{}, err
	}

	pool := reserve.PoolAddress(mint)
	transfers := []ledger.Transfer{
		{Asset: mint, From: o.Seller, To: pool, Amount: q.TokenAmount},
		{Asset: ledger.Native, From: o.Seller, To: p.FeeRecipient, Amount: q.Fee},
		{Asset: ledger.Native, From: pool, To: o.Seller, Amount: q.ValueAmount, PoolAuthorized: true},
	}
	if err = led.Settle(ctx, transfers); err != nil {
		return Quote{}, errors.Wrap(err, "led.Settle")
	}

	*state = next
	e.publish(ctx, notify.Record{
		Kind:          notify.KindSell,
		Mint:          mint,
		Actor:         o.Seller,
		ValueAmount:   q.ValueAmount,
		TokenAmount:   q.TokenAmount,
		Fee:           q.Fee,
		ReserveValue:  state.ReserveValue,
		ReserveTokens: state.ReserveTokens,
	})
	return q, nil
}

// Withdraw hands the proceeds and the leftover pool tokens of a completed
// curve to the migration recipient. It succeeds once per curve.
func (e *Engine) Withdraw(
	ctx context.Context,
	led Ledger,
	mint common.Address,
	state *reserve.State,
	p config.Params,
) (Quote, error) {
	pool := reserve.PoolAddress(mint)
	poolTokens, err := led.Balance(mint, pool)
	if err != nil {
		return Quote{}, errors.Wrap(err, "led.Balance")
	}
	if err = state.CheckWithdraw(poolTokens); err != nil {
		return Quote{}, err
	}

	next := *state
	value := next.Drain()

	transfers := []ledger.Transfer{
		{Asset: mint, From: pool, To: p.MigrationRecipient, Amount: poolTokens, PoolAuthorized: true},
		{Asset: ledger.Native, From: pool, To: p.MigrationRecipient, Amount: value, PoolAuthorized: true},
	}
	if err = led.Settle(ctx, transfers); err != nil {
		return Quote{}, errors.Wrap(err, "led.Settle")
	}

	*state = next
	e.publish(ctx, notify.Record{
		Kind:        notify.KindWithdraw,
		Mint:        mint,
		Actor:       p.MigrationRecipient,
		ValueAmount: value,
		TokenAmount: poolTokens,
	})
	return Quote{
		Side:        notify.KindWithdraw,
		TokenAmount: poolTokens,
		ValueAmount: value,
	}, nil
}

func (e *Engine) publish(ctx context.Context, r notify.Record) {
	if err := e.notifier.Publish(ctx, r); err != nil {
		e.logger.WarnContext(ctx, "publish curve record",
			slog.String("kind", string(r.Kind)),
			slog.String("mint", r.Mint.Hex()),
			slog.Any("error", err),
		)
	}
}
