package v1

import (
	"errors"
	"net/http"

	"github.com/Kali-Thiresh-K/expense-tracker/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no expense matching your query"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
	errYearNotSetInQuery  = errors.New("the year query parameter must be set")
	errTitleNotSetInQuery = errors.New("the title query parameter must be set")
)
