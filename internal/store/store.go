// Package store keeps curve records and the ledger they trade against.
//
// Every mutation runs as one transaction: the curve record and every balance
// written by the callback commit together, or nothing does.
package store

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/bonding-curve/internal/ledger"
	"github.com/fleshka4/bonding-curve/internal/reserve"
)

// Curve is the persisted record of one bonding curve.
type Curve struct {
	Mint      common.Address `json:"mint"`
	Pool      common.Address `json:"pool"`
	Creator   common.Address `json:"creator"`
	State     reserve.State  `json:"state"`
	CreatedAt time.Time      `json:"created_at"`
}

// Store persists curves and balances.
type Store interface {
	// Create inserts c and runs fn in the same transaction.
	// It fails with apperrors.ErrCurveExists when the mint is taken.
	Create(ctx context.Context, c Curve, fn func(*ledger.Ledger) error) error
	// Curve returns the record of mint or apperrors.ErrCurveNotFound.
	Curve(ctx context.Context, mint common.Address) (Curve, error)
	// Curves returns every record ordered by mint.
	Curves(ctx context.Context) ([]Curve, error)
	// Update loads the curve of mint, lets fn modify it and the ledger, and
	// saves both when fn succeeds.
	Update(ctx context.Context, mint common.Address, fn func(*Curve, *ledger.Ledger) error) (Curve, error)
	// Ledger runs fn against the ledger in a writable transaction.
	Ledger(ctx context.Context, fn func(*ledger.Ledger) error) error
	// View runs fn against a read-only ledger.
	View(ctx context.Context, fn func(*ledger.Ledger) error) error
	Close() error
}

// StateReader exposes the reserves kept in a Store.
type StateReader struct {
	Store Store
}

// ReadCurve returns the reserve state of mint.
func (r StateReader) ReadCurve(ctx context.Context, mint common.Address) (reserve.State, error) {
	c, err := r.Store.Curve(ctx, mint)
	if err != nil {
		return reserve.State{}, err
	}
	return c.State, nil
}

var errReadOnly = errors.New("write in read-only transaction")

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "store transaction")
	}
	return nil
}
