package domain

import "time"

// Event represents an association event, public once published.
type Event struct {
	EventID         string     `json:"eventID"` // Primary Key (UUID)
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	StartsAt        time.Time  `json:"startsAt"`
	EndsAt          *time.Time `json:"endsAt,omitempty"`
	ImageURL        string     `json:"imageURL"`
	VolunteerTarget int        `json:"volunteerTarget"` // 0 means no volunteers needed
	IsPublished     bool       `json:"isPublished"`
	AuditFields
}
