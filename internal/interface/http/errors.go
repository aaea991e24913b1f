package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pawcare/pawcare-api/internal/application"
	"github.com/pawcare/pawcare-api/internal/domain/repository"
	"github.com/pawcare/pawcare-api/pkg/response"
)

// failFromService maps service sentinels to envelope failures. Anything
// unrecognized is an internal error; details stay in the logs, never in
// the body.
func failFromService(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Fail(c, http.StatusNotFound, notFoundMsg, nil)
	case errors.Is(err, application.ErrAccessDenied):
		response.Fail(c, http.StatusForbidden, "Access denied", nil)
	case errors.Is(err, application.ErrInvalidSpecies),
		errors.Is(err, application.ErrNotAVeterinarian),
		errors.Is(err, application.ErrInvalidTransition):
		response.Fail(c, http.StatusBadRequest, err.Error(), nil)
	default:
		response.Fail(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func parseSize(s string) (int, error) {
	return strconv.Atoi(s)
}
