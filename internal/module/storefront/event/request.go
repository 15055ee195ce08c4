package event

type ListEventsRequest struct {
	TimeMin    string `json:"timeMin" validate:"required"`
	TimeMax    string `json:"timeMax" validate:"required"`
	MaxResults int    `json:"maxResults"`
}

type ValidateEventRequest struct {
	EventName string `json:"eventName" validate:"required"`
	EventDate string `json:"eventDate" validate:"required"`
}
