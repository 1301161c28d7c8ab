package controllers

import (
	"errors"
	"net/http"

	"quickbites/app/models"
	"quickbites/pkg/logger"
	"quickbites/pkg/response"
)

// respondError maps a domain error kind to its transport status. Unknown
// errors are logged and answered with a bare 500 so store details never
// leak to the caller.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, models.ErrDuplicateEmail):
		response.Conflict(w, "Email already exists")
	case errors.Is(err, models.ErrInvalidCredentials):
		response.Unauthorized(w, "Invalid email or password")
	default:
		logger.WithCtx(r.Context()).Error("internal error",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error(),
		)
		response.Internal(w)
	}
}
