package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/josephsae/healthhub-app/internal/delivery/http/middleware"
	"github.com/josephsae/healthhub-app/pkg/apperror"
	"github.com/josephsae/healthhub-app/pkg/validator"

	"github.com/gorilla/mux"
)

// decodeAndValidate reads a JSON body into dst and runs struct validation.
// Both failures are reported as VALIDATION_ERROR.
func decodeAndValidate(r *http.Request, v *validator.CustomValidator, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.Validation(map[string]string{"body": "must be a valid JSON object"})
	}

	if err := v.Validate(dst); err != nil {
		return apperror.Validation(v.FormatValidationErrors(err))
	}

	return nil
}

// pathID parses the {id} route variable as a positive integer.
func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, strconv.IntSize)
	if err != nil || id == 0 {
		return 0, apperror.Validation(map[string]string{"id": "must be a positive integer"})
	}
	return uint(id), nil
}

func currentUserID(r *http.Request) (uint, error) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, apperror.ErrUserIDNotFound
	}
	return userID, nil
}

// ownedResource resolves the caller and the {id} path variable together.
func ownedResource(r *http.Request) (userID, id uint, err error) {
	if userID, err = currentUserID(r); err != nil {
		return 0, 0, err
	}
	if id, err = pathID(r); err != nil {
		return 0, 0, err
	}
	return userID, id, nil
}
