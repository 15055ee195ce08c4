package calendar

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/errors"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/status"
)

type Repository interface {
	ListUpcoming(ctx context.Context, timeMin, timeMax time.Time, maxResults int) ([]Event, error)
}

type repository struct {
	baseURL    string
	apiKey     string
	calendarID string
	location   *time.Location
	logger     *logrus.Logger
	rc         *resty.Client
}

func NewRepository(baseURL, apiKey, calendarID string, location *time.Location, logger *logrus.Logger, rc *resty.Client) Repository {
	return &repository{
		baseURL:    baseURL,
		apiKey:     apiKey,
		calendarID: calendarID,
		location:   location,
		logger:     logger,
		rc:         rc,
	}
}

type eventTime struct {
	DateTime string `json:"dateTime"`
	Date     string `json:"date"`
}

type eventItem struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	HTMLLink    string    `json:"htmlLink"`
	Start       eventTime `json:"start"`
	End         eventTime `json:"end"`
}

type eventsListResponse struct {
	Items []eventItem `json:"items"`
}

// ListUpcoming implements Repository.
func (r *repository) ListUpcoming(ctx context.Context, timeMin, timeMax time.Time, maxResults int) ([]Event, error) {
	if r.apiKey == "" || r.calendarID == "" {
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "google calendar is not configured")
	}

	listURL := fmt.Sprintf("%s/calendars/%s/events", r.baseURL, url.PathEscape(r.calendarID))

	result := eventsListResponse{}
	resp, err := r.rc.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":          r.apiKey,
			"timeMin":      timeMin.Format(time.RFC3339),
			"timeMax":      timeMax.Format(time.RFC3339),
			"singleEvents": "true",
			"orderBy":      "startTime",
			"maxResults":   strconv.Itoa(maxResults),
		}).
		SetResult(&result).
		Get(listURL)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while listing events from google calendar")
	}

	if resp.IsError() {
		r.logger.WithContext(ctx).WithError(fmt.Errorf(resp.String())).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while listing events from google calendar")
	}

	events := make([]Event, 0, len(result.Items))
	for _, item := range result.Items {
		if item.Status == "cancelled" {
			continue
		}

		e := Event{
			ID:          item.ID,
			Summary:     item.Summary,
			Description: item.Description,
			Location:    item.Location,
			HTMLLink:    item.HTMLLink,
		}

		start, allDay, err := r.parseEventTime(item.Start)
		if err != nil {
			r.logger.WithContext(ctx).WithError(err).Warn("skipping event with unparseable start time")
			continue
		}
		e.Start = start
		e.AllDay = allDay

		if end, _, err := r.parseEventTime(item.End); err == nil {
			e.End = end
		}

		events = append(events, e)
	}

	return events, nil
}

func (r *repository) parseEventTime(t eventTime) (time.Time, bool, error) {
	if t.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, t.DateTime)
		return parsed, false, err
	}
	if t.Date != "" {
		// all-day events carry a date only; pin them to midnight display time
		parsed, err := time.ParseInLocation("2006-01-02", t.Date, r.location)
		return parsed, true, err
	}

	return time.Time{}, false, fmt.Errorf("event has no start time")
}
