package errors

import (
	"net/http"

	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/status"
)

// ApplicationError carries the HTTP status code and status keyword alongside
// the user-visible message so handlers can translate failures uniformly.
type ApplicationError struct {
	HTTPStatusCode int
	Status         string
	Message        string
}

func (e *ApplicationError) Error() string {
	return e.Message
}

func New(httpStatusCode int, statusCode string, message string) error {
	return &ApplicationError{
		HTTPStatusCode: httpStatusCode,
		Status:         statusCode,
		Message:        message,
	}
}

// Destruct recovers an ApplicationError from err. Plain errors map to an
// internal server error.
func Destruct(err error) *ApplicationError {
	if ae, ok := err.(*ApplicationError); ok {
		return ae
	}

	return &ApplicationError{
		HTTPStatusCode: http.StatusInternalServerError,
		Status:         status.INTERNAL_SERVER_ERROR,
		Message:        err.Error(),
	}
}
