package event

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spark-Media-Group/moto-coach-sub001/internal/module/storefront/calendar"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/applogger"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/errors"
)

type fakeCalendarRepository struct {
	events []calendar.Event
	err    error
}

func (f *fakeCalendarRepository) ListUpcoming(_ context.Context, _, _ time.Time, _ int) ([]calendar.Event, error) {
	return f.events, f.err
}

type fakeRegistrationRepository struct {
	count int
	err   error
	calls int
}

func (f *fakeRegistrationRepository) CountByEvent(_ context.Context, _, _ string) (int, error) {
	f.calls++
	return f.count, f.err
}

func newTestUseCase(cal *fakeCalendarRepository, reg *fakeRegistrationRepository) UseCase {
	location, _ := time.LoadLocation("Australia/Sydney")

	return NewUseCase(UseCaseProperty{
		Logger:                 applogger.GetLogrus(),
		Timeout:                5 * time.Second,
		Location:               location,
		DateLayout:             "02/01/2006",
		CalendarRepository:     cal,
		RegistrationRepository: reg,
	})
}

func clubMXEvent(t *testing.T) calendar.Event {
	t.Helper()

	start, err := time.Parse(time.RFC3339, "2025-09-11T03:30:00+10:00")
	require.NoError(t, err)

	return calendar.Event{
		ID:          "evt-1",
		Summary:     "ClubMX",
		Description: "rate=$250 spots=10",
		Location:    "ClubMX, Chesterfield SC",
		Start:       start,
		End:         start.Add(8 * time.Hour),
	}
}

func TestValidateEventComputesRemainingSpots(t *testing.T) {
	cal := &fakeCalendarRepository{events: []calendar.Event{clubMXEvent(t)}}
	reg := &fakeRegistrationRepository{count: 3}

	resp, err := newTestUseCase(cal, reg).ValidateEvent(context.Background(), ValidateEventRequest{
		EventName: "ClubMX",
		EventDate: "11/09/2025",
	})

	require.NoError(t, err)
	assert.EqualValues(t, "ClubMX", resp.Event.Name)
	assert.EqualValues(t, "11/09/2025", resp.Event.Date)
	assert.EqualValues(t, 250, resp.Event.Rate)
	assert.EqualValues(t, 10, resp.Event.MaxSpots)
	assert.EqualValues(t, 7, resp.Event.RemainingSpots)
}

func TestValidateEventNameMatchIsCaseSensitive(t *testing.T) {
	cal := &fakeCalendarRepository{events: []calendar.Event{clubMXEvent(t)}}
	reg := &fakeRegistrationRepository{}

	_, err := newTestUseCase(cal, reg).ValidateEvent(context.Background(), ValidateEventRequest{
		EventName: "clubmx",
		EventDate: "11/09/2025",
	})

	require.Error(t, err)
	assert.EqualValues(t, http.StatusNotFound, errors.Destruct(err).HTTPStatusCode)
}

func TestValidateEventTrimsEventTitle(t *testing.T) {
	e := clubMXEvent(t)
	e.Summary = "  ClubMX  "
	cal := &fakeCalendarRepository{events: []calendar.Event{e}}
	reg := &fakeRegistrationRepository{count: 0}

	resp, err := newTestUseCase(cal, reg).ValidateEvent(context.Background(), ValidateEventRequest{
		EventName: "ClubMX",
		EventDate: "11/09/2025",
	})

	require.NoError(t, err)
	assert.EqualValues(t, 10, resp.Event.RemainingSpots)
}

func TestValidateEventDateMismatchIsNotFound(t *testing.T) {
	cal := &fakeCalendarRepository{events: []calendar.Event{clubMXEvent(t)}}
	reg := &fakeRegistrationRepository{}

	_, err := newTestUseCase(cal, reg).ValidateEvent(context.Background(), ValidateEventRequest{
		EventName: "ClubMX",
		EventDate: "12/09/2025",
	})

	require.Error(t, err)
	assert.EqualValues(t, http.StatusNotFound, errors.Destruct(err).HTTPStatusCode)
}

func TestValidateEventCountFailureFallsBackToMaxSpots(t *testing.T) {
	cal := &fakeCalendarRepository{events: []calendar.Event{clubMXEvent(t)}}
	reg := &fakeRegistrationRepository{err: fmt.Errorf("ledger unavailable")}

	resp, err := newTestUseCase(cal, reg).ValidateEvent(context.Background(), ValidateEventRequest{
		EventName: "ClubMX",
		EventDate: "11/09/2025",
	})

	require.NoError(t, err)
	assert.EqualValues(t, 10, resp.Event.RemainingSpots)
}

func TestValidateEventRemainingSpotsNeverNegative(t *testing.T) {
	cal := &fakeCalendarRepository{events: []calendar.Event{clubMXEvent(t)}}
	reg := &fakeRegistrationRepository{count: 14}

	resp, err := newTestUseCase(cal, reg).ValidateEvent(context.Background(), ValidateEventRequest{
		EventName: "ClubMX",
		EventDate: "11/09/2025",
	})

	require.NoError(t, err)
	assert.EqualValues(t, 0, resp.Event.RemainingSpots)
}

func TestValidateEventUsesDefaultTermsWhenDescriptionIsBare(t *testing.T) {
	e := clubMXEvent(t)
	e.Description = "Come ride with us"
	cal := &fakeCalendarRepository{events: []calendar.Event{e}}
	reg := &fakeRegistrationRepository{count: 2}

	resp, err := newTestUseCase(cal, reg).ValidateEvent(context.Background(), ValidateEventRequest{
		EventName: "ClubMX",
		EventDate: "11/09/2025",
	})

	require.NoError(t, err)
	assert.EqualValues(t, 190, resp.Event.Rate)
	assert.EqualValues(t, 10, resp.Event.MaxSpots)
	assert.EqualValues(t, 8, resp.Event.RemainingSpots)
}

func TestValidateEventPropagatesCalendarFailure(t *testing.T) {
	cal := &fakeCalendarRepository{err: errors.New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "calendar down")}
	reg := &fakeRegistrationRepository{}

	_, err := newTestUseCase(cal, reg).ValidateEvent(context.Background(), ValidateEventRequest{
		EventName: "ClubMX",
		EventDate: "11/09/2025",
	})

	require.Error(t, err)
	assert.EqualValues(t, http.StatusInternalServerError, errors.Destruct(err).HTTPStatusCode)
	assert.EqualValues(t, 0, reg.calls)
}

func TestListEventsRejectsMalformedWindow(t *testing.T) {
	cal := &fakeCalendarRepository{}
	reg := &fakeRegistrationRepository{}

	_, err := newTestUseCase(cal, reg).ListEvents(context.Background(), ListEventsRequest{
		TimeMin: "not-a-timestamp",
		TimeMax: "2025-12-01T00:00:00Z",
	})

	require.Error(t, err)
	assert.EqualValues(t, http.StatusBadRequest, errors.Destruct(err).HTTPStatusCode)
}

func TestListEventsRejectsInvertedWindow(t *testing.T) {
	cal := &fakeCalendarRepository{}
	reg := &fakeRegistrationRepository{}

	_, err := newTestUseCase(cal, reg).ListEvents(context.Background(), ListEventsRequest{
		TimeMin: "2025-12-01T00:00:00Z",
		TimeMax: "2025-06-01T00:00:00Z",
	})

	require.Error(t, err)
	assert.EqualValues(t, http.StatusBadRequest, errors.Destruct(err).HTTPStatusCode)
}

func TestListEventsMapsEntities(t *testing.T) {
	cal := &fakeCalendarRepository{events: []calendar.Event{clubMXEvent(t)}}
	reg := &fakeRegistrationRepository{}

	resp, err := newTestUseCase(cal, reg).ListEvents(context.Background(), ListEventsRequest{
		TimeMin: "2025-09-01T00:00:00Z",
		TimeMax: "2025-10-01T00:00:00Z",
	})

	require.NoError(t, err)
	assert.EqualValues(t, 1, resp.Total)
	assert.EqualValues(t, "ClubMX", resp.Events[0].Name)
}
