package ledger

// MapKV is an in-memory KV. It is not safe for concurrent use.
type MapKV map[string][]byte

// Get implements KV.
func (m MapKV) Get(key []byte) ([]byte, error) {
	return m[string(key)], nil
}

// Put implements KV.
func (m MapKV) Put(key, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	m[string(key)] = v
	return nil
}
