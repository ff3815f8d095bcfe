// Package ledger moves native value and curve tokens between accounts.
//
// Balances live in a KV supplied by the caller so the same settlement rules
// run over an in-memory map and over a bbolt bucket inside a store
// transaction.
package ledger

import (
	"context"
	"encoding/binary"
	"math"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/bonding-curve/internal/apperrors"
)

// Native is the asset identifier of the native currency. Every other asset
// is identified by the mint address of its curve token.
var Native = common.Address{}

const (
	balancePrefix   = 'b'
	custodianPrefix = 'c'
)

// Transfer moves Amount of Asset from From to To.
type Transfer struct {
	Asset  common.Address
	From   common.Address
	To     common.Address
	Amount uint64
	// PoolAuthorized marks a transfer signed by the pool itself, required to
	// debit a custodial account.
	PoolAuthorized bool
}

// KV is the byte store balances are kept in.
type KV interface {
	Get(key []byte) ([]byte, error)
	Put(key, value []byte) error
}

// Ledger applies transfers over a KV.
type Ledger struct {
	kv KV
}

// New creates Ledger.
func New(kv KV) *Ledger {
	return &Ledger{kv: kv}
}

// Balance returns the holding of asset by owner.
func (l *Ledger) Balance(asset, owner common.Address) (uint64, error) {
	return l.read(balanceKey(asset, owner))
}

// Mint credits amount of asset to owner out of thin air. It backs curve
// creation and deposits.
func (l *Ledger) Mint(asset, to common.Address, amount uint64) error {
	key := balanceKey(asset, to)
	bal, err := l.read(key)
	if err != nil {
		return err
	}
	if amount > math.MaxUint64-bal {
		return errors.Wrapf(apperrors.ErrInvalidArgument, "balance of %s overflows", to.Hex())
	}
	return l.write(key, bal+amount)
}

// AddCustodian marks owner as a pool account that can only be debited by
// pool-authorized transfers.
func (l *Ledger) AddCustodian(owner common.Address) error {
	return l.kv.Put(custodianKey(owner), []byte{1})
}

// IsCustodian reports whether owner is a pool account.
func (l *Ledger) IsCustodian(owner common.Address) (bool, error) {
	raw, err := l.kv.Get(custodianKey(owner))
	if err != nil {
		return false, errors.Wrap(err, "l.kv.Get")
	}
	return len(raw) > 0, nil
}

// Settle applies transfers in order as one unit: either every transfer is
// written or none is.
func (l *Ledger) Settle(ctx context.Context, transfers []Transfer) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "context cancelled before settle")
	}

	staged := make(map[string]uint64)
	order := make([]string, 0, 2*len(transfers))

	balance := func(key []byte) (uint64, error) {
		if v, ok := staged[string(key)]; ok {
			return v, nil
		}
		v, err := l.read(key)
		if err != nil {
			return 0, err
		}
		staged[string(key)] = v
		order = append(order, string(key))
		return v, nil
	}

	for i, tr := range transfers {
		if tr.Amount == 0 {
			continue
		}

		custodian, err := l.IsCustodian(tr.From)
		if err != nil {
			return err
		}
		if custodian && !tr.PoolAuthorized {
			return errors.Wrapf(apperrors.ErrUnauthorizedTransfer, "transfer %d from %s", i, tr.From.Hex())
		}

		fromKey := balanceKey(tr.Asset, tr.From)
		from, err := balance(fromKey)
		if err != nil {
			return err
		}
		if from < tr.Amount {
			return errors.Wrapf(apperrors.ErrInsufficientFunds,
				"transfer %d: %s holds %d of %s, needs %d", i, tr.From.Hex(), from, assetName(tr.Asset), tr.Amount)
		}
		staged[string(fromKey)] = from - tr.Amount

		toKey := balanceKey(tr.Asset, tr.To)
		to, err := balance(toKey)
		if err != nil {
			return err
		}
		if tr.Amount > math.MaxUint64-to {
			return errors.Wrapf(apperrors.ErrInvalidArgument, "transfer %d: balance of %s overflows", i, tr.To.Hex())
		}
		staged[string(toKey)] = to + tr.Amount
	}

	for _, key := range order {
		if err := l.write([]byte(key), staged[key]); err != nil {
			return err
		}
	}
	return nil
}

func (l *Ledger) read(key []byte) (uint64, error) {
	raw, err := l.kv.Get(key)
	if err != nil {
		return 0, errors.Wrap(err, "l.kv.Get")
	}
	if len(raw) == 0 {
		return 0, nil
	}
	if len(raw) != 8 {
		return 0, errors.Errorf("corrupt balance record of %d bytes", len(raw))
	}
	return binary.BigEndian.Uint64(raw), nil
}

func (l *Ledger) write(key []byte, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	if err := l.kv.Put(key, buf[:]); err != nil {
		return errors.Wrap(err, "l.kv.Put")
	}
	return nil
}

func balanceKey(asset, owner common.Address) []byte {
	key := make([]byte, 0, 1+2*common.AddressLength)
	key = append(key, balancePrefix)
	key = append(key, asset.Bytes()...)
	return append(key, owner.Bytes()...)
}

func custodianKey(owner common.Address) []byte {
	key := make([]byte, 0, 1+common.AddressLength)
	key = append(key, custodianPrefix)
	return append(key, owner.Bytes()...)
}

func assetName(asset common.Address) string {
	if asset == Native {
		return "native"
	}
	return asset.Hex()
}
