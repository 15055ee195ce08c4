package rates

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/response"
)

type HTTPHandler struct {
	UseCase UseCase
}

func InitHTTPHandler(router *mux.Router, useCase UseCase) {
	handler := &HTTPHandler{
		UseCase: useCase,
	}

	router.HandleFunc("/api/v1/exchange-rates", handler.GetRates).Methods(http.MethodGet)
}

// GetRates always answers 200; the use case degrades to fallback rates
// internally instead of surfacing upstream failures.
func (handler HTTPHandler) GetRates(w http.ResponseWriter, r *http.Request) {
	resp, _ := handler.UseCase.GetRates(r.Context())

	response.JSON(w, http.StatusOK, resp)
}
