package shipping

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
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

	router.HandleFunc("/api/v1/shipping/rates", handler.GetRates).Methods(http.MethodPost)
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

func (handler HTTPHandler) GetRates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := GetRatesRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	// reject incomplete recipients before any outbound call is made
	if err := handler.validate(ctx, req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := handler.UseCase.GetRates(ctx, req)
	if err != nil {
		ae := errors.Destruct(err)
		response.Error(w, ae.HTTPStatusCode, ae.Message)
		return
	}

	response.JSON(w, http.StatusOK, resp)
}
