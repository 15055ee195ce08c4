package debug

import (
	"net/http"

	"github.com/gorilla/mux"

	internalMiddleware "github.com/Spark-Media-Group/moto-coach-sub001/internal/pkg/middleware"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/middleware"
	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/response"
)

// CollaboratorStatus reports which external collaborators have credentials
// configured. Booleans only; never echo the values themselves.
type CollaboratorStatus struct {
	Stripe             bool `json:"stripe"`
	GoogleCalendar     bool `json:"googleCalendar"`
	RegistrationLedger bool `json:"registrationLedger"`
	Printful           bool `json:"printful"`
}

type StatusResponse struct {
	Environment   string             `json:"environment"`
	Collaborators CollaboratorStatus `json:"collaborators"`
}

type HTTPHandler struct {
	Environment string
	Status      CollaboratorStatus
}

func InitHTTPHandler(router *mux.Router, access *internalMiddleware.DebugAccess, environment string, collaborators CollaboratorStatus) {
	handler := &HTTPHandler{
		Environment: environment,
		Status:      collaborators,
	}

	router.HandleFunc("/api/v1/debug/status", middleware.SetRouteChain(handler.GetStatus, access.Verify)).Methods(http.MethodGet)
}

func (handler HTTPHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, StatusResponse{
		Environment:   handler.Environment,
		Collaborators: handler.Status,
	})
}
