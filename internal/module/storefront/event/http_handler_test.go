package event

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spark-Media-Group/moto-coach-sub001/internal/module/storefront/calendar"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/errors"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/status"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/validator"
)

func calendarDownError() error {
	return errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "calendar down")
}

func newTestRouter(t *testing.T, cal *fakeCalendarRepository, reg *fakeRegistrationRepository) *mux.Router {
	t.Helper()

	router := mux.NewRouter()
	InitHTTPHandler(router, validator.Get(), newTestUseCase(cal, reg))
	return router
}

func TestValidateEventHandlerRequiresQueryParams(t *testing.T) {
	router := newTestRouter(t, &fakeCalendarRepository{}, &fakeRegistrationRepository{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/validate?eventName=ClubMX", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.EqualValues(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "eventDate")
}

func TestValidateEventHandlerUnknownEventIs404(t *testing.T) {
	router := newTestRouter(t, &fakeCalendarRepository{}, &fakeRegistrationRepository{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/validate?eventName=ClubMX&eventDate=11/09/2025", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.EqualValues(t, http.StatusNotFound, rec.Code)
}

func TestValidateEventHandlerSuccess(t *testing.T) {
	cal := &fakeCalendarRepository{events: []calendar.Event{clubMXEvent(t)}}
	reg := &fakeRegistrationRepository{count: 3}
	router := newTestRouter(t, cal, reg)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/validate?eventName=ClubMX&eventDate=11/09/2025", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.EqualValues(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"remainingSpots":7`)
}

func TestListEventsHandlerMissingWindowIs400(t *testing.T) {
	router := newTestRouter(t, &fakeCalendarRepository{}, &fakeRegistrationRepository{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/events", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.EqualValues(t, http.StatusBadRequest, rec.Code)
}

func TestListEventsHandlerUpstreamFailureCarriesFallbackFlag(t *testing.T) {
	cal := &fakeCalendarRepository{err: calendarDownError()}
	router := newTestRouter(t, cal, &fakeRegistrationRepository{})

	now := time.Now().UTC()
	url := "/api/v1/calendar/events?timeMin=" + now.Format("2006-01-02T15:04:05Z") + "&timeMax=" + now.AddDate(0, 1, 0).Format("2006-01-02T15:04:05Z")

	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.EqualValues(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fallback":true`)
}
