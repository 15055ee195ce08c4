package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestMethodNotAllowedSetsAllowHeader(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/shipping/rates", func(w http.ResponseWriter, r *http.Request) {}).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/exchange-rates", func(w http.ResponseWriter, r *http.Request) {}).Methods(http.MethodGet)
	router.MethodNotAllowedHandler = NewMethodNotAllowedHandler(router)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/shipping/rates", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.EqualValues(t, http.StatusMethodNotAllowed, rec.Code)
	assert.EqualValues(t, "POST", rec.Header().Get("Allow"))
	assert.Contains(t, rec.Body.String(), "method not allowed")
}

func TestMatchingMethodStillRoutes(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/exchange-rates", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	router.MethodNotAllowedHandler = NewMethodNotAllowedHandler(router)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exchange-rates", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.EqualValues(t, http.StatusOK, rec.Code)
}
