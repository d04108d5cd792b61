package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

var badRequestErrors = []error{
	domain.ErrInvalidWeek,
	domain.ErrInvalidDay,
	domain.ErrInvalidBlock,
	domain.ErrSlotContentTooLong,
	domain.ErrHabitNameEmpty,
	domain.ErrHabitNameTooLong,
	domain.ErrHabitIDRequired,
}

var notFoundErrors = []error{
	domain.ErrHabitNotFound,
	domain.ErrSlotNotFound,
	domain.ErrRatingNotFound,
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// handleError maps domain errors to a status code. Anything unknown is recorded on the context
// and reported as a 500 without leaking its message.
func handleError(c *gin.Context, err error) {
	switch {
	case isAny(err, badRequestErrors):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrRatingInvalid), errors.Is(err, domain.ErrRatingOutOfRange):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case isAny(err, notFoundErrors):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
	case errors.Is(err, domain.ErrPassphraseNotEnabled):
		c.JSON(http.StatusForbidden, errorResponse{Error: err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func weekParam(c *gin.Context) (domain.WeekID, bool) {
	week, err := domain.ParseWeekID(c.Param("week"))
	if err != nil {
		badRequest(c, err)
		return domain.WeekID{}, false
	}
	return week, true
}

func dayParam(c *gin.Context) (domain.DayIndex, bool) {
	day, err := domain.ParseDayKey(c.Param("day"))
	if err != nil {
		badRequest(c, err)
		return 0, false
	}
	return day, true
}
