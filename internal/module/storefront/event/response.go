package event

import (
	"time"

	"github.com/Spark-Media-Group/moto-coach-sub001/internal/module/storefront/calendar"
)

type EventResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	AllDay      bool      `json:"allDay"`
	HTMLLink    string    `json:"htmlLink,omitempty"`
}

type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
	Total  int             `json:"total"`
}

func (r *ListEventsResponse) PopulateFromEntities(events []calendar.Event) {
	responses := make([]EventResponse, len(events))
	for k, v := range events {
		responses[k] = EventResponse{
			ID:          v.ID,
			Name:        v.Summary,
			Description: v.Description,
			Location:    v.Location,
			Start:       v.Start,
			End:         v.End,
			AllDay:      v.AllDay,
			HTMLLink:    v.HTMLLink,
		}
	}
	r.Events = responses
	r.Total = len(responses)
}

type ValidatedEventResponse struct {
	Name           string    `json:"name"`
	Date           string    `json:"date"`
	Rate           float64   `json:"rate"`
	MaxSpots       int       `json:"maxSpots"`
	RemainingSpots int       `json:"remainingSpots"`
	Description    string    `json:"description"`
	Location       string    `json:"location,omitempty"`
	Start          time.Time `json:"start"`
}

type ValidateEventResponse struct {
	Event ValidatedEventResponse `json:"event"`
}
