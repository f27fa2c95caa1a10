package handlers

import (
	"net/http"

	"carebook/models"
	"carebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UpsertWeeklyRequest is the payload for replacing a provider's week.
type UpsertWeeklyRequest struct {
	Weekly   []models.WeeklyWindow `json:"weekly" binding:"required"`
	Timezone string                `json:"timezone"`
	Meta     map[string]string     `json:"meta"`
}

// UpsertWeeklyAvailabilityHandler replaces the provider's recurring week
// wholesale; there are no partial-day patches.
func (h *ScheduleHandler) UpsertWeeklyAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	providerID := c.Param("providerID")
	if providerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing provider ID in path"})
		return
	}

	var req UpsertWeeklyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid weekly availability request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	schedule, err := h.Service.UpsertWeeklyAvailability(c.Request.Context(), providerID, req.Weekly, req.Timezone, req.Meta)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Weekly availability updated",
		"schedule": schedule,
	})
}

// GetWeeklyWindowHandler returns the enabled window covering the given date,
// or an explicit null when the day has none.
func (h *ScheduleHandler) GetWeeklyWindowHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	if providerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing provider ID in path"})
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date query parameter"})
		return
	}

	window, err := h.Service.GetWeeklyWindowForDate(c.Request.Context(), providerID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"window": window})
}
