package theme

import (
	"errors"
	"sync"
)

// ErrUnavailable reports that a store cannot be used at all.
var ErrUnavailable = errors.New("preference storage unavailable")

// MemStore is an in-memory Store. The zero value is ready to use.
type MemStore struct {
	mu     sync.Mutex
	values map[string]string
}

func (s *MemStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key], nil
}

func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
	return nil
}

// Tee reads from primary, falling back to mirror when primary fails or holds
// nothing, and writes to both stores. Only primary's write errors are
// returned, so a failing mirror never changes the outcome.
func Tee(primary, mirror Store) Store {
	return tee{primary: primary, mirror: mirror}
}

type tee struct {
	primary Store
	mirror  Store
}

func (t tee) Get(key string) (string, error) {
	v, err := t.primary.Get(key)
	if err == nil && v != "" {
		return v, nil
	}
	if mv, merr := t.mirror.Get(key); merr == nil && mv != "" {
		return mv, nil
	}
	return v, err
}

func (t tee) Set(key, value string) error {
	err := t.primary.Set(key, value)
	_ = t.mirror.Set(key, value)
	return err
}
