package middleware

import (
	"net/http"

	"inventory-tracker/pkg/response"

	"github.com/sirupsen/logrus"
)

// RecoveryMiddleware turns handler panics into structured 500 responses
// instead of letting them kill the connection.
type RecoveryMiddleware struct {
	log *logrus.Logger
}

func NewRecoveryMiddleware(log *logrus.Logger) *RecoveryMiddleware {
	return &RecoveryMiddleware{log: log}
}

func (m *RecoveryMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.log.Errorf("Panic recovered on %s %s: %+v", req.Method, req.URL.Path, rec)
				response.InternalServerError(w, "Internal server error")
			}
		}()

		next.ServeHTTP(w, req)
	})
}
