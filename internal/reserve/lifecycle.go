package reserve

import (
	"github.com/pkg/errors"

	"github.com/fleshka4/bonding-curve/internal/apperrors"
)

// Status is the lifecycle phase of a curve. It is derived from the reserve
// and the pool token holding, never stored.
type Status int

const (
	// StatusActive means tokens remain for sale; buy and sell are legal.
	StatusActive Status = iota
	// StatusCompleted means the threshold is sold out; only withdraw is legal.
	StatusCompleted
	// StatusWithdrawn is terminal: the proceeds have been migrated.
	StatusWithdrawn
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	case StatusWithdrawn:
		return "withdrawn"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Status derives the lifecycle phase given the pool's current token holding.
func (s State) Status(poolTokens uint64) Status {
	switch {
	case s.ReserveTokens > 0:
		return StatusActive
	case s.ReserveValue == 0 && poolTokens == 0:
		return StatusWithdrawn
	default:
		return StatusCompleted
	}
}

// CheckTrade reports whether buy and sell are legal.
func (s State) CheckTrade() error {
	if s.ReserveTokens == 0 {
		return apperrors.ErrCurveCompleted
	}
	return nil
}

// CheckWithdraw reports whether the proceeds can be migrated.
func (s State) CheckWithdraw(poolTokens uint64) error {
	if s.ReserveTokens != 0 {
		return errors.Wrapf(apperrors.ErrCurveNotComplete, "%d tokens left for sale", s.ReserveTokens)
	}
	if s.ReserveValue == 0 && poolTokens == 0 {
		return apperrors.ErrAlreadyWithdrawn
	}
	return nil
}
