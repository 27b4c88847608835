package domain

import "time"

// VolunteerSignup represents a confirmed volunteer registration for an event.
// One email may sign up at most once per event; the event's volunteer target
// caps the number of confirmed sign-ups. Both constraints are enforced by the
// storage layer, not by application-level read-then-write.
type VolunteerSignup struct {
	SignupID  string    `json:"signupID"` // Primary Key (UUID)
	EventID   string    `json:"eventID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Shift     string    `json:"shift,omitempty"` // Optional free-text shift label
	CreatedAt time.Time `json:"createdAt"`
}
