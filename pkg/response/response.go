package response

import (
	"encoding/json"
	"net/http"

	"github.com/josephsae/healthhub-app/pkg/apperror"

	"github.com/sirupsen/logrus"
)

type ErrorBody struct {
	Error ErrorPayload `json:"error"`
}

type ErrorPayload struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type MessageBody struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageBody{Message: message})
}

func Error(w http.ResponseWriter, err *apperror.Error) {
	JSON(w, err.Status, ErrorBody{
		Error: ErrorPayload{
			Code:    err.Code,
			Message: err.Message,
			Details: err.Details,
		},
	})
}

// FromError is the single place where errors become HTTP responses.
// Anything that is not an *apperror.Error is logged and reported as a
// generic internal error.
func FromError(w http.ResponseWriter, log logrus.FieldLogger, err error) {
	appErr, ok := apperror.From(err)
	if !ok {
		log.WithError(err).Error("Unhandled error")
	}
	Error(w, appErr)
}
