package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vedicjivan/services/payment"
	"vedicjivan/utils"
)

type PaymentHandler struct {
	Payments payment.PaymentService
}

func NewPaymentHandler(payments payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Payments: payments}
}

// CreateOrderHandler opens a gateway order for a pending booking.
func (h *PaymentHandler) CreateOrderHandler(c *gin.Context) {
	var req struct {
		BookingID string `json:"booking_id" binding:"required"`
		AmountINR int    `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	order, err := h.Payments.CreateOrder(c.Request.Context(), req.BookingID, req.AmountINR)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		case errors.Is(err, payment.ErrAlreadyPaid):
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to create order", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

// VerifyPaymentHandler checks the checkout callback signature and confirms
// the booking on success.
func (h *PaymentHandler) VerifyPaymentHandler(c *gin.Context) {
	var req payment.VerifyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Payments.VerifyPayment(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidSignature):
			utils.JSONErrorCode(c, http.StatusBadRequest, payment.CodeInvalidSignature, err.Error())
		case errors.Is(err, payment.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to verify payment", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "payment verified"})
}

// WebhookHandler ingests gateway webhook events. The raw body is needed
// intact for the signature check.
func (h *PaymentHandler) WebhookHandler(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read body", err.Error())
		return
	}

	signature := c.GetHeader("X-Razorpay-Signature")
	if err := h.Payments.HandleWebhook(c.Request.Context(), body, signature); err != nil {
		if errors.Is(err, payment.ErrInvalidSignature) {
			utils.JSONErrorCode(c, http.StatusBadRequest, payment.CodeInvalidSignature, err.Error())
			return
		}
		// Acknowledge anyway so the gateway does not retry storms at us;
		// the failure is logged for followup.
		utils.GetLogger().Error("webhook processing failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"status": "acknowledged"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListPaymentsHandler returns recent payment records for admins.
func (h *PaymentHandler) ListPaymentsHandler(c *gin.Context) {
	payments, err := h.Payments.ListPayments(c.Request.Context(), 100)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list payments", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": payments})
}
