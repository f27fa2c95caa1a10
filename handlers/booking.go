package handlers

import (
	"net/http"

	"carebook/services/scheduling"
	"carebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReserveSlotHandler books one slot. A concurrent reservation for the same
// slot loses at the storage layer and surfaces here as 409.
func (h *ScheduleHandler) ReserveSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req scheduling.ReserveSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid reservation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if req.ProviderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing provider ID"})
		return
	}

	booking, err := h.Service.ReserveSlot(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Slot reserved",
		"booking": booking,
	})
}
