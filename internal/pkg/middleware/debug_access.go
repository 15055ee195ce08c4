package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/Spark-Media-Group/moto-coach-sub001/pkg/response"
)

// DebugAccess guards the debug surface with a feature toggle, an origin
// allow-list and a static API key.
type DebugAccess struct {
	enabled        bool
	apiKey         string
	allowedOrigins []string
}

func NewDebugAccess(enabled bool, apiKey string, allowedOrigins []string) *DebugAccess {
	return &DebugAccess{
		enabled:        enabled,
		apiKey:         apiKey,
		allowedOrigins: allowedOrigins,
	}
}

func (m *DebugAccess) Verify(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.enabled {
			response.Error(w, http.StatusNotFound, "not found")
			return
		}

		if m.apiKey == "" || subtle.ConstantTimeCompare([]byte(r.Header.Get("X-API-Key")), []byte(m.apiKey)) != 1 {
			response.Error(w, http.StatusUnauthorized, "invalid api key")
			return
		}

		if origin := r.Header.Get("Origin"); origin != "" && len(m.allowedOrigins) > 0 {
			if !m.originAllowed(origin) {
				response.Error(w, http.StatusForbidden, "origin not allowed")
				return
			}
		}

		next(w, r)
	}
}

func (m *DebugAccess) originAllowed(origin string) bool {
	for _, allowed := range m.allowedOrigins {
		if allowed == origin || allowed == "*" {
			return true
		}
	}

	return false
}
