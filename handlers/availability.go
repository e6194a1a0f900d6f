package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vedicjivan/models"
	"vedicjivan/services/availability"
	"vedicjivan/services/scheduling"
	"vedicjivan/utils"
)

type AvailabilityHandler struct {
	Availability availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Availability: svc}
}

// validDate reports whether s is a well-formed "YYYY-MM-DD" date.
// time.Parse alone also accepts unpadded forms like "2026-3-1", so the
// length is checked first.
func validDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// validTimeSlot reports whether s is a well-formed zero-padded "HH:MM" time.
func validTimeSlot(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

// SlotsHandler returns the bookable slots for a date. Public endpoint.
func (h *AvailabilityHandler) SlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if !validDate(date) {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}

	slots, err := h.Availability.AvailableSlots(c.Request.Context(), date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute slots", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// HolidaysHandler returns holiday dates within a range. Public endpoint so
// the booking calendar can grey them out.
func (h *AvailabilityHandler) HolidaysHandler(c *gin.Context) {
	start, end := c.Query("start_date"), c.Query("end_date")
	if !validDate(start) || !validDate(end) {
		utils.JSONError(c, http.StatusBadRequest, "invalid date range", "expected YYYY-MM-DD start_date and end_date")
		return
	}

	holidays, err := h.Availability.HolidaysInRange(c.Request.Context(), start, end)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list holidays", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"holidays": holidays})
}

// ListBlocksHandler returns unavailability blocks for a date or a range.
func (h *AvailabilityHandler) ListBlocksHandler(c *gin.Context) {
	ctx := c.Request.Context()

	if date := c.Query("date"); date != "" {
		if !validDate(date) {
			utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
			return
		}
		blocks, err := h.Availability.BlocksForDate(ctx, date)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list blocks", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"blocks": blocks})
		return
	}

	start, end := c.Query("start_date"), c.Query("end_date")
	if !validDate(start) || !validDate(end) {
		utils.JSONError(c, http.StatusBadRequest, "invalid date range", "expected date, or start_date and end_date")
		return
	}
	blocks, err := h.Availability.BlocksInRange(ctx, start, end)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list blocks", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

// AddBlockHandler creates a holiday or partial-day unavailability block.
func (h *AvailabilityHandler) AddBlockHandler(c *gin.Context) {
	var req availability.AddBlockInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !validDate(req.Date) {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}

	block, err := h.Availability.AddBlock(c.Request.Context(), req)
	if err != nil {
		if ce := scheduling.AsConflict(err); ce != nil {
			utils.JSONErrorCode(c, http.StatusConflict, ce.Code, ce.Message)
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "failed to add block", err.Error())
		return
	}

	c.JSON(http.StatusCreated, block)
}

// RemoveBlockHandler deletes an unavailability block by id.
func (h *AvailabilityHandler) RemoveBlockHandler(c *gin.Context) {
	if err := h.Availability.RemoveBlock(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, availability.ErrBlockNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to remove block", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "block removed"})
}

// GetBusinessHoursHandler returns the weekly schedule. Public endpoint.
func (h *AvailabilityHandler) GetBusinessHoursHandler(c *gin.Context) {
	hours, err := h.Availability.BusinessHours(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load business hours", err.Error())
		return
	}

	c.JSON(http.StatusOK, hours)
}

// UpdateBusinessHoursHandler replaces the weekly schedule.
func (h *AvailabilityHandler) UpdateBusinessHoursHandler(c *gin.Context) {
	var hours models.BusinessHours
	if err := c.ShouldBindJSON(&hours); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Availability.UpdateBusinessHours(c.Request.Context(), hours); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid business hours", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "business hours updated"})
}
