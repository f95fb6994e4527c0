package storage

// MemStore is an in-memory Store for tests. The error fields, when set,
// force the corresponding operations to fail for fault injection.
type MemStore struct {
	values map[string][]byte

	ReadErr  error
	WriteErr error
}

// NewMemStore creates an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string][]byte)}
}

// Get returns the stored value for key
func (s *MemStore) Get(key string) ([]byte, error) {
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	value, ok := s.values[key]
	if !ok {
		return nil, ErrNoValue
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores a copy of value under key
func (s *MemStore) Set(key string, value []byte) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored
	return nil
}

// Delete removes the key
func (s *MemStore) Delete(key string) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	delete(s.values, key)
	return nil
}

// Has reports whether the key is present
func (s *MemStore) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}
