package handlers

import (
	"net/http"
	"strconv"

	"carebook/services/scheduling"

	"github.com/gin-gonic/gin"
)

// GetAvailabilityHandler resolves the bookable slots for a provider and date.
// Optional duration/gap query parameters override the configured defaults
// for this query only.
func (h *ScheduleHandler) GetAvailabilityHandler(c *gin.Context) {
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

	var opts *scheduling.SlotOptions
	durationParam := c.Query("duration")
	gapParam := c.Query("gap")
	if durationParam != "" || gapParam != "" {
		opts = &scheduling.SlotOptions{GapMin: -1}
		if durationParam != "" {
			d, err := strconv.Atoi(durationParam)
			if err != nil || d <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid duration parameter"})
				return
			}
			opts.DurationMin = d
		}
		if gapParam != "" {
			g, err := strconv.Atoi(gapParam)
			if err != nil || g < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gap parameter"})
				return
			}
			opts.GapMin = g
		}
	}

	result, err := h.Service.GetAvailabilityForDate(c.Request.Context(), providerID, date, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
