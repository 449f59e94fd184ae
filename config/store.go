package config

import "sync/atomic"

// Store publishes settings snapshots to the tick loop
// Readers load one pointer per tick and never see a partially applied change
type Store struct {
	cur atomic.Pointer[Settings]
}

// NewStore validates and publishes the initial snapshot
func NewStore(s *Settings) (*Store, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	st := &Store{}
	st.cur.Store(s.Clone())
	return st, nil
}

// Load returns the current snapshot; callers must not modify it
func (st *Store) Load() *Settings {
	return st.cur.Load()
}

// Swap validates and publishes a copy of s, returning the previous snapshot
func (st *Store) Swap(s *Settings) (*Settings, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return st.cur.Swap(s.Clone()), nil
}

// Update applies fn to a copy of the current snapshot and publishes it
// Concurrent updates retry until their change lands on the latest snapshot
func (st *Store) Update(fn func(*Settings)) error {
	for {
		old := st.cur.Load()
		next := old.Clone()
		fn(next)
		if err := next.Validate(); err != nil {
			return err
		}
		if st.cur.CompareAndSwap(old, next) {
			return nil
		}
	}
}
