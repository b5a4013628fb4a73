package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/josephsae/healthhub-app/pkg/apperror"
	"github.com/josephsae/healthhub-app/pkg/response"

	"github.com/sirupsen/logrus"
)

type RecoveryMiddleware struct {
	log *logrus.Logger
}

func NewRecoveryMiddleware(log *logrus.Logger) *RecoveryMiddleware {
	return &RecoveryMiddleware{log: log}
}

// Handle turns a panic in any handler into the generic 500 body.
func (m *RecoveryMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				requestID, _ := GetRequestIDFromContext(r.Context())
				m.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"panic":      rec,
					"stack":      string(debug.Stack()),
				}).Error("Recovered from panic")
				response.Error(w, apperror.ErrInternal)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
