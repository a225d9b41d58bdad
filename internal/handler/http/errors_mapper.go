package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-prompt-tracker/internal/logger"
	"github.com/MKhiriev/go-prompt-tracker/internal/service"
	"github.com/MKhiriev/go-prompt-tracker/internal/utils"
)

// errorStatusMap lists every error with a dedicated status. Anything else is a 500.
var errorStatusMap = map[error]int{
	service.ErrValidation:         http.StatusBadRequest,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrInvalidToken:       http.StatusUnauthorized,
	service.ErrDuplicateUser:      http.StatusConflict,
	service.ErrPromptNotFound:     http.StatusNotFound,

	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidPromptID:            http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrNoClaimsInContext:          http.StatusUnauthorized,
	ErrForbidden:                  http.StatusForbidden,
}

// errorMessageMap overrides the text sent to the client. Errors missing here
// expose their own message unless they map to a 500.
var errorMessageMap = map[error]string{
	service.ErrInvalidCredentials: "invalid username or password",
	service.ErrInvalidToken:       "invalid or expired token",
	service.ErrDuplicateUser:      "username already exists",
	service.ErrPromptNotFound:     "prompt not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	if status == http.StatusInternalServerError {
		return http.StatusText(http.StatusInternalServerError)
	}
	return err.Error()
}

// writeError logs err and answers with the mapped status and a message body.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status == http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	if _, err := utils.WriteMessage(w, messageFromError(err, status), status); err != nil {
		log.Err(err).Str("func", funcName).Msg("error writing response")
	}
}
