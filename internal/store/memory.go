package store

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/bonding-curve/internal/apperrors"
	"github.com/fleshka4/bonding-curve/internal/ledger"
)

// Memory is a Store held in process memory. One mutex serializes every
// operation.
type Memory struct {
	mu       sync.Mutex
	curves   map[common.Address]Curve
	balances ledger.MapKV
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty Memory.
func NewMemory() *Memory {
	return &Memory{
		curves:   make(map[common.Address]Curve),
		balances: ledger.MapKV{},
	}
}

// Create implements Store.
func (m *Memory) Create(ctx context.Context, c Curve, fn func(*ledger.Ledger) error) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.curves[c.Mint]; ok {
		return errors.Wrapf(apperrors.ErrCurveExists, "mint %s", c.Mint.Hex())
	}

	tx := m.begin(false)
	if err := fn(ledger.New(tx)); err != nil {
		return err
	}
	tx.commit()
	m.curves[c.Mint] = c
	return nil
}

// Curve implements Store.
func (m *Memory) Curve(ctx context.Context, mint common.Address) (Curve, error) {
	if err := checkContext(ctx); err != nil {
		return Curve{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.curves[mint]
	if !ok {
		return Curve{}, errors.Wrapf(apperrors.ErrCurveNotFound, "mint %s", mint.Hex())
	}
	return c, nil
}

// Curves implements Store.
func (m *Memory) Curves(ctx context.Context) ([]Curve, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Curve, 0, len(m.curves))
	for _, c := range m.curves {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].Mint.Bytes(), out[j].Mint.Bytes()) < 0
	})
	return out, nil
}

// Update implements Store.
func (m *Memory) Update(
	ctx context.Context,
	mint common.Address,
	fn func(*Curve, *ledger.Ledger) error,
) (Curve, error) {
	if err := checkContext(ctx); err != nil {
		return Curve{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.curves[mint]
	if !ok {
		return Curve{}, errors.Wrapf(apperrors.ErrCurveNotFound, "mint %s", mint.Hex())
	}

	tx := m.begin(false)
	if err := fn(&c, ledger.New(tx)); err != nil {
		return Curve{}, err
	}
	tx.commit()
	m.curves[mint] = c
	return c, nil
}

// Ledger implements Store.
func (m *Memory) Ledger(ctx context.Context, fn func(*ledger.Ledger) error) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	tx := m.begin(false)
	if err := fn(ledger.New(tx)); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// View implements Store.
func (m *Memory) View(ctx context.Context, fn func(*ledger.Ledger) error) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(ledger.New(m.begin(true)))
}

// Close implements Store.
func (m *Memory) Close() error {
	return nil
}

func (m *Memory) begin(readOnly bool) *memoryTx {
	return &memoryTx{
		base:     m.balances,
		writes:   make(map[string][]byte),
		readOnly: readOnly,
	}
}

// memoryTx buffers writes over the committed balances until commit.
type memoryTx struct {
	base     ledger.MapKV
	writes   map[string][]byte
	readOnly bool
}

func (t *memoryTx) Get(key []byte) ([]byte, error) {
	if v, ok := t.writes[string(key)]; ok {
		return append([]byte(nil), v...), nil
	}
	return t.base.Get(key)
}

func (t *memoryTx) Put(key, value []byte) error {
	if t.readOnly {
		return errReadOnly
	}
	t.writes[string(key)] = append([]byte(nil), value...)
	return nil
}

func (t *memoryTx) commit() {
	for k, v := range t.writes {
		t.base[k] = v
	}
}
