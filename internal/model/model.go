// Package model defines the core domain types for the activity signup service.
package model

// Activity represents an extracurricular offering students can sign up for.
// The activity name is not part of the record; it is the key in the directory
// mapping returned by GET /activities.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone returns a deep copy of the activity so callers cannot mutate the
// stored participant list through a returned record.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// IsRegistered reports whether email appears in the participant list.
func (a Activity) IsRegistered(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// MessageResponse is the success envelope for signup and unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
