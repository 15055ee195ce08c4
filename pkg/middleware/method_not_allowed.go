package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/response"
)

// NewMethodNotAllowedHandler walks the router's registered routes and returns
// a 405 handler that sets the Allow header for the requested path. Call it
// after all routes have been registered.
func NewMethodNotAllowedHandler(router *mux.Router) http.Handler {
	allowed := map[string][]string{}

	router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		path, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			return nil
		}
		allowed[path] = append(allowed[path], methods...)
		return nil
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if methods, ok := allowed[r.URL.Path]; ok {
			w.Header().Set("Allow", strings.Join(methods, ", "))
		}
		response.Error(w, http.StatusMethodNotAllowed, "method not allowed")
	})
}
