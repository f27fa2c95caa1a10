package handlers

import (
	"errors"
	"net/http"

	"carebook/services/scheduling"
	"carebook/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes the scheduling service over HTTP.
type ScheduleHandler struct {
	Service scheduling.SchedulingService
}

// NewScheduleHandler constructs the handler set for the scheduling service.
func NewScheduleHandler(svc scheduling.SchedulingService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// respondError maps the service error taxonomy onto HTTP statuses. Validation
// problems are client errors; store failures surface as 503 so consumers can
// tell "could not load availability" apart from "no slots today".
func respondError(c *gin.Context, err error) {
	var invalidDate *scheduling.InvalidDateError
	var invalidWindow *scheduling.InvalidWindowError
	var conflict *scheduling.SlotConflictError
	var infra *scheduling.InfrastructureError

	switch {
	case errors.As(err, &invalidDate):
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
	case errors.As(err, &invalidWindow):
		utils.JSONError(c, http.StatusBadRequest, "Invalid weekly window", err.Error())
	case errors.As(err, &conflict):
		utils.JSONError(c, http.StatusConflict, "Slot already booked", err.Error())
	case errors.As(err, &infra):
		utils.JSONError(c, http.StatusServiceUnavailable, "Availability store unavailable", err.Error())
	default:
		utils.JSONError(c, http.StatusBadRequest, "Request failed", err.Error())
	}
}
