package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/applogger"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/errors"
)

func sydney(t *testing.T) *time.Location {
	t.Helper()

	location, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)
	return location
}

func TestListUpcomingParsesTimedAndAllDayEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.EqualValues(t, "/calendars/cal-1/events", r.URL.Path)
		assert.EqualValues(t, "true", r.URL.Query().Get("singleEvents"))
		assert.EqualValues(t, "startTime", r.URL.Query().Get("orderBy"))
		assert.EqualValues(t, "250", r.URL.Query().Get("maxResults"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(eventsListResponse{Items: []eventItem{
			{
				ID:      "evt-1",
				Summary: "ClubMX",
				Start:   eventTime{DateTime: "2025-09-11T03:30:00+10:00"},
				End:     eventTime{DateTime: "2025-09-11T11:30:00+10:00"},
			},
			{
				ID:      "evt-2",
				Summary: "Open Practice",
				Start:   eventTime{Date: "2025-09-13"},
				End:     eventTime{Date: "2025-09-14"},
			},
			{
				ID:     "evt-3",
				Status: "cancelled",
				Start:  eventTime{DateTime: "2025-09-15T09:00:00+10:00"},
			},
		}})
	}))
	defer srv.Close()

	repo := NewRepository(srv.URL, "key", "cal-1", sydney(t), applogger.GetLogrus(), resty.New())

	events, err := repo.ListUpcoming(context.Background(), time.Now(), time.Now().AddDate(0, 6, 0), 250)

	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.EqualValues(t, "ClubMX", events[0].Summary)
	assert.False(t, events[0].AllDay)
	assert.EqualValues(t, "11/09/2025", events[0].Start.In(sydney(t)).Format("02/01/2006"))

	assert.True(t, events[1].AllDay)
	assert.EqualValues(t, "13/09/2025", events[1].Start.In(sydney(t)).Format("02/01/2006"))
}

func TestListUpcomingUpstreamErrorIsInternal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	repo := NewRepository(srv.URL, "key", "cal-1", sydney(t), applogger.GetLogrus(), resty.New())

	_, err := repo.ListUpcoming(context.Background(), time.Now(), time.Now().AddDate(0, 6, 0), 250)

	require.Error(t, err)
	assert.EqualValues(t, http.StatusInternalServerError, errors.Destruct(err).HTTPStatusCode)
}

func TestListUpcomingUnconfiguredFailsBeforeAnyCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	repo := NewRepository(srv.URL, "", "", sydney(t), applogger.GetLogrus(), resty.New())

	_, err := repo.ListUpcoming(context.Background(), time.Now(), time.Now().AddDate(0, 6, 0), 250)

	require.Error(t, err)
	assert.False(t, called)
}
