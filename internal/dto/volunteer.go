package dto

import (
	"time"

	"github.com/assogestion/assogestion/internal/core/domain"
)

// VolunteerSignupRequest is the public sign-up form payload.
type VolunteerSignupRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
	Shift string `json:"shift"`
}

// VolunteerSignupResponse is the API shape of a sign-up.
type VolunteerSignupResponse struct {
	SignupID  string    `json:"signupID"`
	EventID   string    `json:"eventID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Shift     string    `json:"shift,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToVolunteerSignupResponse converts a domain.VolunteerSignup.
func ToVolunteerSignupResponse(s *domain.VolunteerSignup) VolunteerSignupResponse {
	return VolunteerSignupResponse{
		SignupID:  s.SignupID,
		EventID:   s.EventID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Shift:     s.Shift,
		CreatedAt: s.CreatedAt,
	}
}

// ListSignupsResponse wraps an event's sign-ups.
type ListSignupsResponse struct {
	Signups []VolunteerSignupResponse `json:"signups"`
}

// ToListSignupsResponse converts a slice of domain.VolunteerSignup.
func ToListSignupsResponse(signups []domain.VolunteerSignup) ListSignupsResponse {
	out := make([]VolunteerSignupResponse, len(signups))
	for i := range signups {
		out[i] = ToVolunteerSignupResponse(&signups[i])
	}
	return ListSignupsResponse{Signups: out}
}
