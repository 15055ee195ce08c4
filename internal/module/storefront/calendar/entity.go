package calendar

import "time"

type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	HTMLLink    string
	Start       time.Time
	End         time.Time
	AllDay      bool
}
