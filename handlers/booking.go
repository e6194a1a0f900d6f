package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vedicjivan/middleware"
	"vedicjivan/models"
	"vedicjivan/services/booking"
	"vedicjivan/services/scheduling"
	"vedicjivan/utils"
)

type BookingHandler struct {
	Bookings booking.BookingService
}

func NewBookingHandler(bookings booking.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

// CreateBookingHandler places a new pending booking for the authenticated user.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)
	if usr == nil {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req struct {
		ServiceSlug     string               `json:"service_slug" binding:"required"`
		ServiceTitle    string               `json:"service_title"`
		Date            string               `json:"date" binding:"required"`
		TimeSlot        string               `json:"time_slot" binding:"required"`
		DurationMinutes int                  `json:"duration_minutes" binding:"required,min=15,max=120"`
		Notes           string               `json:"notes"`
		BirthDetails    *models.BirthDetails `json:"birth_details"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !validDate(req.Date) {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}
	if !validTimeSlot(req.TimeSlot) {
		utils.JSONError(c, http.StatusBadRequest, "invalid time slot", "expected HH:MM")
		return
	}

	bk, err := h.Bookings.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		UserID:          usr.ID,
		UserName:        usr.Name,
		UserEmail:       usr.Email,
		UserPhone:       usr.Phone,
		ServiceSlug:     req.ServiceSlug,
		ServiceTitle:    req.ServiceTitle,
		Date:            req.Date,
		TimeSlot:        req.TimeSlot,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
		BirthDetails:    req.BirthDetails,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bk)
}

// ListBookingsHandler returns the requester's bookings, or every booking when
// the requester is an admin. Status and date filters are optional.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)
	if usr == nil {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	bookings, err := h.Bookings.ListBookings(c.Request.Context(), usr, booking.ListInput{
		Status: c.Query("status"),
		Date:   c.Query("date"),
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBookingHandler returns a single booking the requester may view.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)
	if usr == nil {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	bk, err := h.Bookings.GetBooking(c.Request.Context(), c.Param("id"), usr)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, bk)
}

// CancelBookingHandler cancels a booking the requester owns.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	usr := middleware.CurrentUser(c)
	if usr == nil {
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	bk, err := h.Bookings.CancelBooking(c.Request.Context(), c.Param("id"), usr)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, bk)
}

// OverrideStatusHandler lets an admin force a booking into any status.
func (h *BookingHandler) OverrideStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	bk, err := h.Bookings.OverrideStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, bk)
}

// writeBookingError maps the booking error taxonomy onto HTTP statuses.
func writeBookingError(c *gin.Context, err error) {
	if ce := scheduling.AsConflict(err); ce != nil {
		utils.JSONErrorCode(c, http.StatusConflict, ce.Code, ce.Message)
		return
	}
	if pe := booking.AsPricing(err); pe != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, pe.Code, pe.Message)
		return
	}
	if le := booking.AsLifecycle(err); le != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, le.Code, le.Message)
		return
	}
	switch {
	case errors.Is(err, booking.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, booking.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", err.Error())
	}
}
