package handlers

import (
	"net/http"

	"carebook/services/scheduling"
	"carebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BlockSlotHandler records one ad hoc exclusion for a provider. Repeating
// the call for the same slot overwrites its metadata, never duplicates it.
func (h *ScheduleHandler) BlockSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()

	providerID := c.Param("providerID")
	if providerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing provider ID in path"})
		return
	}

	var req scheduling.BlockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid block slot request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	req.ProviderID = providerID

	block, err := h.Service.BlockSlot(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Slot blocked",
		"block":   block,
	})
}

// ClearBusyHandler removes busy blocks; omitted body fields act as wildcards,
// so sending only a date clears that whole day for the provider.
func (h *ScheduleHandler) ClearBusyHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	if providerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing provider ID in path"})
		return
	}

	var req scheduling.ClearBusyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	req.ProviderID = providerID

	if err := h.Service.ClearBusy(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Busy blocks cleared"})
}
