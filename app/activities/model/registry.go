package model

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// ==================== Registry ====================

// Registry is the in-memory collection of all activities, keyed by name. It is
// seeded once at startup and lives for the process lifetime; there is no
// create- or delete-activity operation and nothing is persisted.
//
// The registry is shared by every request, so the check-then-mutate sequences
// in Signup and Unregister run under the write lock. List takes the read lock
// and returns a deep copy, never a view into live state.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*Activity
}

// NewRegistry builds a registry from the seed set. The seed is validated the
// same way the write path is: activity names must be unique and each
// participant may appear at most once per activity.
func NewRegistry(seed []SeedActivity) (*Registry, error) {
	activities := make(map[string]*Activity, len(seed))
	for _, s := range seed {
		if s.Name == "" {
			return nil, errors.New("seed activity with empty name")
		}
		if _, ok := activities[s.Name]; ok {
			return nil, errors.Errorf("duplicate seed activity %q", s.Name)
		}

		a := &Activity{
			Description:     s.Description,
			Schedule:        s.Schedule,
			MaxParticipants: s.MaxParticipants,
			Participants:    make([]string, 0, len(s.Participants)),
		}
		for _, email := range s.Participants {
			if a.hasParticipant(email) {
				return nil, errors.Errorf("duplicate participant %q in seed activity %q", email, s.Name)
			}
			a.Participants = append(a.Participants, email)
		}
		activities[s.Name] = a
	}

	return &Registry{activities: activities}, nil
}

// List returns a snapshot of every activity, keyed by name. The snapshot is a
// deep copy taken under the read lock, so concurrent mutations can never tear
// a participant list mid-read.
func (r *Registry) List(ctx context.Context) map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = a.clone()
	}
	return out
}

// Signup appends email to the activity's participant list.
//
// Returns ErrActivityNotFound when name is not a registry key and
// ErrAlreadySignedUp when email is already in the list. MaxParticipants is not
// checked; capacity is advisory.
func (r *Registry) Signup(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if a.hasParticipant(email) {
		return ErrAlreadySignedUp
	}

	a.Participants = append(a.Participants, email)
	return nil
}

// Unregister removes email from the activity's participant list, preserving
// the order of the remaining entries.
//
// Returns ErrActivityNotFound when name is not a registry key and
// ErrNotRegistered when email is not in the list.
func (r *Registry) Unregister(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}

	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotRegistered
}
