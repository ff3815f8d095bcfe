// Package reserve holds the mutable reserve record of one bonding curve and
// derives its lifecycle.
package reserve

import (
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/fleshka4/bonding-curve/internal/apperrors"
	"github.com/fleshka4/bonding-curve/internal/curvemath"
)

const poolSeed = "bonding_curve"

// State is the reserve record of one trading instance. TokenThreshold and
// CurveCoefficient never change after creation.
type State struct {
	ReserveValue     uint64 `json:"reserve_value,string"`
	ReserveTokens    uint64 `json:"reserve_tokens,string"`
	TokenThreshold   uint64 `json:"token_threshold,string"`
	CurveCoefficient uint64 `json:"curve_coefficient,string"`
}

// New returns the state of a freshly created curve: nothing collected and
// the whole threshold available for sale.
func New(threshold, coefficient uint64) (State, error) {
	s := State{
		ReserveTokens:    threshold,
		TokenThreshold:   threshold,
		CurveCoefficient: coefficient,
	}
	if err := s.Validate(); err != nil {
		return State{}, err
	}
	return s, nil
}

// Validate checks the reserve invariants. The value of the whole threshold
// must fit in uint64 so that every quote on the curve is payable.
func (s State) Validate() error {
	if s.TokenThreshold == 0 {
		return errors.Wrap(apperrors.ErrInvalidArgument, "token threshold must be positive")
	}
	if s.CurveCoefficient == 0 {
		return errors.Wrap(apperrors.ErrInvalidArgument, "curve coefficient must be positive")
	}
	full := curvemath.CumulativeValue(new(big.Int).SetUint64(s.TokenThreshold), s.CurveCoefficient)
	if !full.IsUint64() || full.Uint64() == math.MaxUint64 {
		return errors.Wrapf(apperrors.ErrInvalidArgument,
			"curve value %s at threshold %d does not fit in uint64", full, s.TokenThreshold)
	}
	if s.ReserveTokens > s.TokenThreshold {
		return errors.Wrapf(apperrors.ErrReserveInvariant,
			"reserve tokens %d exceed threshold %d", s.ReserveTokens, s.TokenThreshold)
	}
	return nil
}

// Circulating returns the tokens already sold out of the threshold.
func (s State) Circulating() uint64 {
	return s.TokenThreshold - s.ReserveTokens
}

// ApplyBuy moves tokens out of the reserve and value into it.
// On error s is left unchanged.
func (s *State) ApplyBuy(value, tokens uint64) error {
	if tokens > s.ReserveTokens {
		return errors.Wrapf(apperrors.ErrReserveInvariant,
			"buy of %d tokens exceeds reserve of %d", tokens, s.ReserveTokens)
	}
	if value > math.MaxUint64-s.ReserveValue {
		return errors.Wrapf(apperrors.ErrReserveInvariant,
			"reserve value %d overflows on deposit of %d", s.ReserveValue, value)
	}

	s.ReserveTokens -= tokens
	s.ReserveValue += value
	return nil
}

// ApplySell moves tokens back into the reserve and value out of it.
// On error s is left unchanged.
func (s *State) ApplySell(value, tokens uint64) error {
	if value > s.ReserveValue {
		return errors.Wrapf(apperrors.ErrReserveInvariant,
			"payout %d exceeds reserve value %d", value, s.ReserveValue)
	}
	if tokens > s.Circulating() {
		return errors.Wrapf(apperrors.ErrReserveInvariant,
			"sell of %d tokens exceeds circulating supply %d", tokens, s.Circulating())
	}

	s.ReserveValue -= value
	s.ReserveTokens += tokens
	return nil
}

// Drain empties the reserve and returns the value it held.
func (s *State) Drain() uint64 {
	value := s.ReserveValue
	s.ReserveValue = 0
	s.ReserveTokens = 0
	return value
}

// PoolAddress derives the custodial account of the curve for mint. The
// account has no key; only the pool itself can authorize debits from it.
func PoolAddress(mint common.Address) common.Address {
	return common.BytesToAddress(crypto.Keccak256([]byte(poolSeed), mint.Bytes())[12:])
}
