// Package notify carries trade and withdrawal records to observability sinks.
// Delivery is best-effort: callers log sink errors and carry on.
package notify

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/multierr"
)

// Kind is the operation a record describes.
type Kind string

const (
	// KindCreate records a curve launch and its deploy fee.
	KindCreate Kind = "create"
	// KindBuy records tokens bought from the pool.
	KindBuy Kind = "buy"
	// KindSell records tokens sold back to the pool.
	KindSell Kind = "sell"
	// KindWithdraw records the proceeds handed to the migration recipient.
	KindWithdraw Kind = "withdraw"
)

// Record describes one committed operation and the reserves it left behind.
type Record struct {
	Kind          Kind           `json:"kind"`
	Mint          common.Address `json:"mint"`
	Actor         common.Address `json:"actor"`
	ValueAmount   uint64         `json:"value_amount,string"`
	TokenAmount   uint64         `json:"token_amount,string"`
	Fee           uint64         `json:"fee,string"`
	ReserveValue  uint64         `json:"reserve_value,string"`
	ReserveTokens uint64         `json:"reserve_tokens,string"`
}

//go:generate mockgen -source=notify.go -destination=mock/notify.go -package=mock

// Sink accepts records.
type Sink interface {
	Publish(ctx context.Context, r Record) error
}

// Log writes records to a structured logger.
type Log struct {
	logger *slog.Logger
}

// NewLog creates Log.
func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

// Publish implements Sink.
func (l *Log) Publish(ctx context.Context, r Record) error {
	l.logger.InfoContext(ctx, "curve operation",
		slog.String("kind", string(r.Kind)),
		slog.String("mint", r.Mint.Hex()),
		slog.String("actor", r.Actor.Hex()),
		slog.Uint64("value_amount", r.ValueAmount),
		slog.Uint64("token_amount", r.TokenAmount),
		slog.Uint64("fee", r.Fee),
		slog.Uint64("reserve_value", r.ReserveValue),
		slog.Uint64("reserve_tokens", r.ReserveTokens),
	)
	return nil
}

// Multi publishes to every sink, even when some fail.
type Multi []Sink

// Publish implements Sink.
func (m Multi) Publish(ctx context.Context, r Record) error {
	var err error
	for _, s := range m {
		err = multierr.Append(err, s.Publish(ctx, r))
	}
	return err
}

// Buffer holds records until the operation that produced them commits.
type Buffer struct {
	records []Record
}

// Publish implements Sink.
func (b *Buffer) Publish(_ context.Context, r Record) error {
	b.records = append(b.records, r)
	return nil
}

// Records returns the buffered records.
func (b *Buffer) Records() []Record {
	return b.records
}

// Flush hands the buffered records to sink and empties the buffer.
func (b *Buffer) Flush(ctx context.Context, sink Sink) error {
	var err error
	for _, r := range b.records {
		err = multierr.Append(err, sink.Publish(ctx, r))
	}
	b.records = nil
	return err
}
