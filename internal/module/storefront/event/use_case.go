package event

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Spark-Media-Group/moto-coach-sub001/internal/module/storefront/calendar"
	"github.com/Spark-Media-Group/moto-coach-sub001/internal/module/storefront/registration"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/errors"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/status"
)

const (
	maxListResults = 250
	// validation scans the next six months of the schedule
	validationWindowMonths = 6
)

type UseCase interface {
	ListEvents(ctx context.Context, req ListEventsRequest) (ListEventsResponse, error)
	ValidateEvent(ctx context.Context, req ValidateEventRequest) (ValidateEventResponse, error)
}

type useCase struct {
	logger                 *logrus.Logger
	timeout                time.Duration
	location               *time.Location
	dateLayout             string
	now                    func() time.Time
	calendarRepository     calendar.Repository
	registrationRepository registration.Repository
}

type UseCaseProperty struct {
	Logger                 *logrus.Logger
	Timeout                time.Duration
	Location               *time.Location
	DateLayout             string
	Now                    func() time.Time
	CalendarRepository     calendar.Repository
	RegistrationRepository registration.Repository
}

func NewUseCase(props UseCaseProperty) UseCase {
	now := props.Now
	if now == nil {
		now = time.Now
	}

	return &useCase{
		logger:                 props.Logger,
		timeout:                props.Timeout,
		location:               props.Location,
		dateLayout:             props.DateLayout,
		now:                    now,
		calendarRepository:     props.CalendarRepository,
		registrationRepository: props.RegistrationRepository,
	}
}

// ListEvents implements UseCase.
func (u *useCase) ListEvents(ctx context.Context, req ListEventsRequest) (ListEventsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	timeMin, err := time.Parse(time.RFC3339, req.TimeMin)
	if err != nil {
		return ListEventsResponse{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "timeMin must be an RFC3339 timestamp")
	}

	timeMax, err := time.Parse(time.RFC3339, req.TimeMax)
	if err != nil {
		return ListEventsResponse{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "timeMax must be an RFC3339 timestamp")
	}

	if !timeMax.After(timeMin) {
		return ListEventsResponse{}, errors.New(http.StatusBadRequest, status.BAD_REQUEST, "timeMax must be after timeMin")
	}

	maxResults := req.MaxResults
	if maxResults <= 0 || maxResults > maxListResults {
		maxResults = maxListResults
	}

	events, err := u.calendarRepository.ListUpcoming(ctx, timeMin, timeMax, maxResults)
	if err != nil {
		return ListEventsResponse{}, err
	}

	resp := ListEventsResponse{}
	resp.PopulateFromEntities(events)

	return resp, nil
}

// ValidateEvent implements UseCase.
func (u *useCase) ValidateEvent(ctx context.Context, req ValidateEventRequest) (ValidateEventResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	now := u.now()
	events, err := u.calendarRepository.ListUpcoming(ctx, now, now.AddDate(0, validationWindowMonths, 0), maxListResults)
	if err != nil {
		return ValidateEventResponse{}, err
	}

	matched, found := u.matchEvent(events, req)
	if !found {
		return ValidateEventResponse{}, errors.New(http.StatusNotFound, status.NOT_FOUND, fmt.Sprintf("no event named '%s' found on %s", req.EventName, req.EventDate))
	}

	terms := parseTerms(matched.Description)

	remaining := terms.MaxSpots
	count, err := u.registrationRepository.CountByEvent(ctx, req.EventName, req.EventDate)
	if err != nil {
		// report availability optimistically rather than failing the whole lookup
		u.logger.WithContext(ctx).WithError(err).Warn("registration count unavailable, assuming no registrations")
	} else {
		remaining = terms.MaxSpots - count
		if remaining < 0 {
			remaining = 0
		}
	}

	resp := ValidateEventResponse{
		Event: ValidatedEventResponse{
			Name:           req.EventName,
			Date:           req.EventDate,
			Rate:           terms.Rate,
			MaxSpots:       terms.MaxSpots,
			RemainingSpots: remaining,
			Description:    matched.Description,
			Location:       matched.Location,
			Start:          matched.Start,
		},
	}

	return resp, nil
}

// matchEvent picks the first event whose trimmed title equals the requested
// name (case-sensitive) and whose start, formatted in the display locale,
// equals the requested date string. The registration ledger matches names
// case-insensitively; the resolver is stricter.
func (u *useCase) matchEvent(events []calendar.Event, req ValidateEventRequest) (calendar.Event, bool) {
	for _, e := range events {
		if strings.TrimSpace(e.Summary) != req.EventName {
			continue
		}
		if e.Start.In(u.location).Format(u.dateLayout) != req.EventDate {
			continue
		}
		return e, true
	}

	return calendar.Event{}, false
}
