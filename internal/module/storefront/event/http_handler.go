package event

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/errors"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/response"
)

type HTTPHandler struct {
	Validate *validator.Validate
	UseCase  UseCase
}

func InitHTTPHandler(router *mux.Router, validate *validator.Validate, useCase UseCase) {
	handler := &HTTPHandler{
		Validate: validate,
		UseCase:  useCase,
	}

	router.HandleFunc("/api/v1/calendar/events", handler.ListEvents).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/calendar/validate", handler.ValidateEvent).Methods(http.MethodGet)
}

func (handler HTTPHandler) validate(ctx context.Context, payload interface{}) error {
	err := handler.Validate.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	errorFields := err.(validator.ValidationErrors)

	errMessages := make([]string, len(errorFields))

	for k, errorField := range errorFields {
		errMessages[k] = fmt.Sprintf("invalid '%s' with value '%v'", errorField.Field(), errorField.Value())
	}

	return fmt.Errorf(strings.Join(errMessages, ", "))
}

func (handler HTTPHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	qs := r.URL.Query()

	req := ListEventsRequest{
		TimeMin: qs.Get("timeMin"),
		TimeMax: qs.Get("timeMax"),
	}
	req.MaxResults, _ = strconv.Atoi(qs.Get("maxResults"))

	if err := handler.validate(ctx, req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := handler.UseCase.ListEvents(ctx, req)
	if err != nil {
		ae := errors.Destruct(err)
		if ae.HTTPStatusCode >= http.StatusInternalServerError {
			// tell the front end to fall back to its static schedule
			response.ErrorWithFallback(w, ae.HTTPStatusCode, ae.Message)
			return
		}
		response.Error(w, ae.HTTPStatusCode, ae.Message)
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

func (handler HTTPHandler) ValidateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	qs := r.URL.Query()

	req := ValidateEventRequest{
		EventName: qs.Get("eventName"),
		EventDate: qs.Get("eventDate"),
	}

	if err := handler.validate(ctx, req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := handler.UseCase.ValidateEvent(ctx, req)
	if err != nil {
		ae := errors.Destruct(err)
		response.Error(w, ae.HTTPStatusCode, ae.Message)
		return
	}

	response.JSON(w, http.StatusOK, resp)
}
