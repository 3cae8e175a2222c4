// Package memory implements the activity directory as an in-process map.
// This is the default backend: state lives only for the process lifetime.
package memory

import (
	"context"
	"sync"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/store"
)

// entry pairs an activity record with its own mutex so concurrent mutations
// of different activities never contend with each other.
type entry struct {
	mu       sync.Mutex
	activity model.Activity
}

// Store is an in-memory activity directory. The set of activities is fixed at
// construction; only participant lists change afterwards, each under its
// activity's lock.
type Store struct {
	entries map[string]*entry
}

// New builds a Store from the given directory. The input is deep-copied.
func New(directory map[string]model.Activity) *Store {
	entries := make(map[string]*entry, len(directory))
	for name, act := range directory {
		entries[name] = &entry{activity: act.Clone()}
	}
	return &Store{entries: entries}
}

// List returns a detached copy of every activity.
func (s *Store) List(ctx context.Context) (map[string]model.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make(map[string]model.Activity, len(s.entries))
	for name, e := range s.entries {
		e.mu.Lock()
		out[name] = e.activity.Clone()
		e.mu.Unlock()
	}
	return out, nil
}

// SignUp appends email to the activity's participant list. The membership
// check and the append happen under the activity's lock, so two concurrent
// signups for the same email cannot both pass the check.
func (s *Store) SignUp(ctx context.Context, activity, email string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e, ok := s.entries[activity]
	if !ok {
		return store.ErrActivityNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.activity.IsRegistered(email) {
		return store.ErrAlreadyRegistered
	}
	e.activity.Participants = append(e.activity.Participants, email)
	return nil
}

// Unregister removes email from the activity's participant list, preserving
// the order of the remaining participants.
func (s *Store) Unregister(ctx context.Context, activity, email string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e, ok := s.entries[activity]
	if !ok {
		return store.ErrActivityNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for i, p := range e.activity.Participants {
		if p == email {
			e.activity.Participants = append(e.activity.Participants[:i], e.activity.Participants[i+1:]...)
			return nil
		}
	}
	return store.ErrNotRegistered
}

// Close is a no-op for the in-memory backend.
func (s *Store) Close() error { return nil }
