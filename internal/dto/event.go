package dto

import (
	"time"

	"github.com/assogestion/assogestion/internal/core/domain"
)

// CreateEventRequest defines the input for creating an event.
type CreateEventRequest struct {
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	StartsAt        time.Time  `json:"startsAt" binding:"required"`
	EndsAt          *time.Time `json:"endsAt"`
	ImageURL        string     `json:"imageURL" binding:"omitempty,url"`
	VolunteerTarget int        `json:"volunteerTarget" binding:"gte=0"`
}

// UpdateEventRequest defines the fields that may be changed on an event.
type UpdateEventRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Location        *string    `json:"location"`
	StartsAt        *time.Time `json:"startsAt"`
	EndsAt          *time.Time `json:"endsAt"`
	ImageURL        *string    `json:"imageURL" binding:"omitempty,url"`
	VolunteerTarget *int       `json:"volunteerTarget" binding:"omitempty,gte=0"`
}

// ListEventsParams defines query parameters for listing events.
type ListEventsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// EventResponse is the API shape of an event.
type EventResponse struct {
	EventID         string     `json:"eventID"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	StartsAt        time.Time  `json:"startsAt"`
	EndsAt          *time.Time `json:"endsAt,omitempty"`
	ImageURL        string     `json:"imageURL,omitempty"`
	VolunteerTarget int        `json:"volunteerTarget"`
	IsPublished     bool       `json:"isPublished"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// ToEventResponse converts a domain.Event to EventResponse.
func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		EventID:         e.EventID,
		Title:           e.Title,
		Description:     e.Description,
		Location:        e.Location,
		StartsAt:        e.StartsAt,
		EndsAt:          e.EndsAt,
		ImageURL:        e.ImageURL,
		VolunteerTarget: e.VolunteerTarget,
		IsPublished:     e.IsPublished,
		CreatedAt:       e.CreatedAt,
	}
}

// ListEventsResponse wraps the list of events.
type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
}

// ToListEventsResponse converts a slice of domain.Event.
func ToListEventsResponse(events []domain.Event) ListEventsResponse {
	out := make([]EventResponse, len(events))
	for i := range events {
		out[i] = ToEventResponse(&events[i])
	}
	return ListEventsResponse{Events: out}
}
