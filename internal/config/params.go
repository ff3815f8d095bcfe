package config

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/bonding-curve/internal/apperrors"
	"github.com/fleshka4/bonding-curve/internal/reserve"
)

// MaxFeeBps is the fee denominator: 10_000 basis points is 100%.
const MaxFeeBps = 10_000

// Params is a read snapshot of the curve configuration taken per call.
type Params struct {
	FeeRecipient       common.Address `json:"fee_recipient"`
	MigrationRecipient common.Address `json:"migration_recipient"`
	BuyFeeBps          uint16         `json:"buy_fee_bps"`
	SellFeeBps         uint16         `json:"sell_fee_bps"`
	TokenSupply        uint64         `json:"token_supply,string"`
	TokenThreshold     uint64         `json:"token_threshold,string"`
	CurveCoefficient   uint64         `json:"curve_coefficient,string"`
	DeployFee          uint64         `json:"deploy_fee,string"`
}

// Validate checks the parameter ranges.
func (p Params) Validate() error {
	switch {
	case p.FeeRecipient == (common.Address{}):
		return errors.Wrap(apperrors.ErrInvalidArgument, "fee recipient cannot be empty")
	case p.MigrationRecipient == (common.Address{}):
		return errors.Wrap(apperrors.ErrInvalidArgument, "migration recipient cannot be empty")
	case p.BuyFeeBps > MaxFeeBps:
		return errors.Wrapf(apperrors.ErrInvalidArgument, "buy fee %d bps exceeds %d", p.BuyFeeBps, MaxFeeBps)
	case p.SellFeeBps > MaxFeeBps:
		return errors.Wrapf(apperrors.ErrInvalidArgument, "sell fee %d bps exceeds %d", p.SellFeeBps, MaxFeeBps)
	case p.TokenThreshold > p.TokenSupply:
		return errors.Wrapf(apperrors.ErrInvalidArgument,
			"token threshold %d exceeds token supply %d", p.TokenThreshold, p.TokenSupply)
	}

	_, err := reserve.New(p.TokenThreshold, p.CurveCoefficient)
	return err
}

// Provider supplies the current configuration snapshot.
type Provider interface {
	Snapshot() Params
}

// ParamsUpdate carries a partial update; nil fields are left unchanged.
type ParamsUpdate struct {
	FeeRecipient       *common.Address `json:"fee_recipient,omitempty"`
	MigrationRecipient *common.Address `json:"migration_recipient,omitempty"`
	BuyFeeBps          *uint16         `json:"buy_fee_bps,omitempty"`
	SellFeeBps         *uint16         `json:"sell_fee_bps,omitempty"`
	TokenSupply        *uint64         `json:"token_supply,omitempty,string"`
	TokenThreshold     *uint64         `json:"token_threshold,omitempty,string"`
	CurveCoefficient   *uint64         `json:"curve_coefficient,omitempty,string"`
	DeployFee          *uint64         `json:"deploy_fee,omitempty,string"`
}

// Store is an in-process Provider whose snapshot can be updated.
// Curves already created keep the threshold and coefficient they were
// created with.
type Store struct {
	mu     sync.RWMutex
	params Params
}

// NewStore creates Store.
func NewStore(p Params) (*Store, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Store{params: p}, nil
}

// Snapshot returns a copy of the current parameters.
func (s *Store) Snapshot() Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}

// Update applies u atomically. The result is validated as a whole; on error
// the stored parameters are unchanged.
func (s *Store) Update(u ParamsUpdate) (Params, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.params
	if u.FeeRecipient != nil {
		next.FeeRecipient = *u.FeeRecipient
	}
	if u.MigrationRecipient != nil {
		next.MigrationRecipient = *u.MigrationRecipient
	}
	if u.BuyFeeBps != nil {
		next.BuyFeeBps = *u.BuyFeeBps
	}
	if u.SellFeeBps != nil {
		next.SellFeeBps = *u.SellFeeBps
	}
	if u.TokenSupply != nil {
		next.TokenSupply = *u.TokenSupply
	}
	if u.TokenThreshold != nil {
		next.TokenThreshold = *u.TokenThreshold
	}
	if u.CurveCoefficient != nil {
		next.CurveCoefficient = *u.CurveCoefficient
	}
	if u.DeployFee != nil {
		next.DeployFee = *u.DeployFee
	}

	if err := next.Validate(); err != nil {
		return s.params, err
	}
	s.params = next
	return next, nil
}

func parseAddress(field, s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Wrapf(apperrors.ErrInvalidArgument, "%s: bad address %q", field, s)
	}
	return common.HexToAddress(s), nil
}
