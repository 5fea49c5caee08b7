package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"game_catalog/internal/apperr"
)

// statusOf is the one place a failure kind becomes an HTTP status. An
// invalid identifier surfaces as 500, matching the observed behavior;
// changing that policy is a one-line edit here.
func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.ValidationFailed, apperr.AlreadyAuthenticated,
		apperr.DuplicateEmail, apperr.DuplicateMobile,
		apperr.MissingCredential, apperr.UserNotFound, apperr.InvalidPassword:
		return http.StatusBadRequest
	case apperr.AuthenticationRequired:
		return http.StatusUnauthorized
	case apperr.AuthorizationDenied:
		return http.StatusForbidden
	case apperr.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError shapes every service-level failure into its JSON envelope.
// Validation failures carry the field-error map; unexpected failures carry
// the raw error detail alongside a generic message.
func respondError(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = apperr.Wrap(apperr.Unexpected, "Server error", err)
	}

	body := gin.H{"message": ae.Message}
	switch ae.Kind {
	case apperr.ValidationFailed:
		if len(ae.Fields) > 0 {
			body["errors"] = ae.Fields
		}
	case apperr.AlreadyAuthenticated:
		body["redirect"] = true
	case apperr.Unexpected, apperr.InvalidIdentifier:
		if ae.Err != nil {
			body["error"] = ae.Err.Error()
		}
		log.Error().Err(ae.Err).Msg("request failed")
	}

	c.JSON(statusOf(ae.Kind), body)
}
