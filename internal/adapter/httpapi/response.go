package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
)

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

func respondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func respondError(c *gin.Context, err error) {
	status, code := classify(err)
	c.JSON(status, errorEnvelope{Error: apiError{Message: err.Error(), Code: code}})
}

// classify maps domain sentinels onto HTTP statuses. Anything unrecognized is
// an internal error; ErrPersistence included, since the caller's mutation
// stood but durability was lost.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrInvalidPlanSettings):
		return http.StatusBadRequest, "invalid_plan_settings"
	case errors.Is(err, entity.ErrInvalidOutcome):
		return http.StatusBadRequest, "invalid_outcome"
	case errors.Is(err, entity.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, entity.ErrUnknownWord):
		return http.StatusNotFound, "unknown_word"
	case errors.Is(err, entity.ErrBookNotFound):
		return http.StatusNotFound, "book_not_found"
	case errors.Is(err, entity.ErrNoPlanConfigured):
		return http.StatusConflict, "no_plan"
	case errors.Is(err, entity.ErrDuplicateBook):
		return http.StatusConflict, "duplicate_book"
	case errors.Is(err, entity.ErrPersistence):
		return http.StatusInternalServerError, "persistence_failure"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
