package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/fleshka4/bonding-curve/internal/apperrors"
	"github.com/fleshka4/bonding-curve/internal/ledger"
)

var (
	bucketCurves   = []byte("curves")
	bucketLedger   = []byte("ledger")
	defaultTimeout = time.Second
)

// Bolt is a Store in a bbolt file. bbolt allows one writable transaction at
// a time, which serializes every mutation of a curve.
type Bolt struct {
	db *bolt.DB
}

var _ Store = (*Bolt)(nil)

// OpenBolt opens (and creates when missing) the database at path.
func OpenBolt(path string, options *bolt.Options) (*Bolt, error) {
	if options == nil {
		options = &bolt.Options{Timeout: defaultTimeout}
	} else if options.Timeout == 0 {
		options.Timeout = defaultTimeout
	}

	db, err := bolt.Open(path, 0o600, options)
	if err != nil {
		return nil, errors.Wrap(err, "bolt.Open")
	}
	if err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketCurves, bucketLedger} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create buckets")
	}
	return &Bolt{db: db}, nil
}

// Create implements Store.
func (b *Bolt) Create(ctx context.Context, c Curve, fn func(*ledger.Ledger) error) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		curves := tx.Bucket(bucketCurves)
		if curves.Get(c.Mint.Bytes()) != nil {
			return errors.Wrapf(apperrors.ErrCurveExists, "mint %s", c.Mint.Hex())
		}
		if err := fn(ledger.New(bucketKV{b: tx.Bucket(bucketLedger)})); err != nil {
			return err
		}
		return putCurve(curves, c)
	})
}

// Curve implements Store.
func (b *Bolt) Curve(ctx context.Context, mint common.Address) (Curve, error) {
	if err := checkContext(ctx); err != nil {
		return Curve{}, err
	}

	var c Curve
	err := b.db.View(func(tx *bolt.Tx) error {
		var err error
		c, err = getCurve(tx.Bucket(bucketCurves), mint)
		return err
	})
	if err != nil {
		return Curve{}, err
	}
	return c, nil
}

// Curves implements Store.
func (b *Bolt) Curves(ctx context.Context) ([]Curve, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	var out []Curve
	err := b.db.View(func(tx *bolt.Tx) error {
		// keys are raw mint bytes, so the cursor walks them in mint order
		return tx.Bucket(bucketCurves).ForEach(func(k, v []byte) error {
			var c Curve
			if err := json.Unmarshal(v, &c); err != nil {
				return errors.Wrapf(err, "decode curve %x", k)
			}
			out = append(out, c)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update implements Store.
func (b *Bolt) Update(
	ctx context.Context,
	mint common.Address,
	fn func(*Curve, *ledger.Ledger) error,
) (Curve, error) {
	if err := checkContext(ctx); err != nil {
		return Curve{}, err
	}

	var result Curve
	err := b.db.Update(func(tx *bolt.Tx) error {
		curves := tx.Bucket(bucketCurves)
		c, err := getCurve(curves, mint)
		if err != nil {
			return err
		}
		if err = fn(&c, ledger.New(bucketKV{b: tx.Bucket(bucketLedger)})); err != nil {
			return err
		}
		if err = putCurve(curves, c); err != nil {
			return err
		}
		result = c
		return nil
	})
	if err != nil {
		return Curve{}, err
	}
	return result, nil
}

// Ledger implements Store.
func (b *Bolt) Ledger(ctx context.Context, fn func(*ledger.Ledger) error) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		return fn(ledger.New(bucketKV{b: tx.Bucket(bucketLedger)}))
	})
}

// View implements Store.
func (b *Bolt) View(ctx context.Context, fn func(*ledger.Ledger) error) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	return b.db.View(func(tx *bolt.Tx) error {
		return fn(ledger.New(bucketKV{b: tx.Bucket(bucketLedger), readOnly: true}))
	})
}

// Close implements Store.
func (b *Bolt) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

func getCurve(bucket *bolt.Bucket, mint common.Address) (Curve, error) {
	raw := bucket.Get(mint.Bytes())
	if raw == nil {
		return Curve{}, errors.Wrapf(apperrors.ErrCurveNotFound, "mint %s", mint.Hex())
	}
	var c Curve
	if err := json.Unmarshal(raw, &c); err != nil {
		return Curve{}, errors.Wrapf(err, "decode curve %s", mint.Hex())
	}
	return c, nil
}

func putCurve(bucket *bolt.Bucket, c Curve) error {
	encoded, err := json.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "json.Marshal")
	}
	return bucket.Put(c.Mint.Bytes(), encoded)
}

// bucketKV adapts a bucket of the current transaction to ledger.KV.
type bucketKV struct {
	b        *bolt.Bucket
	readOnly bool
}

func (kv bucketKV) Get(key []byte) ([]byte, error) {
	v := kv.b.Get(key)
	if v == nil {
		return nil, nil
	}
	// bbolt memory is only valid for the life of the transaction
	return append([]byte(nil), v...), nil
}

func (kv bucketKV) Put(key, value []byte) error {
	if kv.readOnly {
		return errReadOnly
	}
	return kv.b.Put(key, value)
}
