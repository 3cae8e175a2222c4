// Package store defines the activity directory abstraction shared by all
// backends. The directory is constructor-injected wherever it is needed;
// there is no package-level singleton.
package store

import (
	"context"
	"errors"

	"github.com/mergington/activities/internal/model"
)

// ErrActivityNotFound is returned when the named activity is not in the directory.
var ErrActivityNotFound = errors.New("activity not found")

// ErrAlreadyRegistered is returned when the same email signs up twice for an activity.
var ErrAlreadyRegistered = errors.New("email already signed up for this activity")

// ErrNotRegistered is returned when unregistering an email that is not a participant.
var ErrNotRegistered = errors.New("email not registered for this activity")

// Directory holds the full set of activities and mutates participant lists.
//
// Implementations must serialize the check-then-act sequence inside SignUp and
// Unregister per activity, preserve participant insertion order, and never
// enforce max_participants — capacity is advisory.
type Directory interface {
	// List returns every activity keyed by name. The returned records are
	// detached copies; mutating them does not affect the directory.
	List(ctx context.Context) (map[string]model.Activity, error)

	// SignUp appends email to the activity's participant list.
	SignUp(ctx context.Context, activity, email string) error

	// Unregister removes email from the activity's participant list.
	Unregister(ctx context.Context, activity, email string) error

	// Close releases any resources held by the backend.
	Close() error
}
