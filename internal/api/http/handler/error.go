package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/taskboard-server/internal/model"
)

// statusFor maps an operation error to a response status and a message that is
// safe to show to clients.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, errContentType):
		return http.StatusUnsupportedMediaType, err.Error()
	case errors.Is(err, errInvalidJSON):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, model.ErrDuplicateKey):
		return http.StatusConflict, "record already exists"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func handleError(w http.ResponseWriter, err error) {
	status, msg := statusFor(err)
	writeError(w, status, msg)
}
