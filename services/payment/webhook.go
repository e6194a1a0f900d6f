package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"vedicjivan/config"

	"go.uber.org/zap"
)

// webhookPayload is the subset of the gateway event body we act on.
type webhookPayload struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
			} `json:"entity"`
		} `json:"payment"`
		Refund struct {
			Entity struct {
				ID        string `json:"id"`
				PaymentID string `json:"payment_id"`
			} `json:"entity"`
		} `json:"refund"`
	} `json:"payload"`
}

// HandleWebhook processes asynchronous gateway events. These run
// independently of the synchronous verify path, so captures still land
// when the client-side callback never arrives, and out-of-band refunds
// are recorded.
func (s *DefaultPaymentService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if secret := config.AppConfig.RazorpayWebhookSecret; secret != "" {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(body)
		expected := hex.EncodeToString(mac.Sum(nil))
		if !hmac.Equal([]byte(expected), []byte(signature)) {
			return ErrInvalidSignature
		}
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("failed to decode webhook payload: %w", err)
	}

	switch payload.Event {
	case "payment.captured":
		entity := payload.Payload.Payment.Entity
		existing, err := s.Payments.GetByOrderID(ctx, entity.OrderID)
		if err != nil {
			return err
		}
		if existing == nil {
			// Captures for orders we never opened (another environment,
			// manual dashboard payments) are acknowledged, not recorded.
			s.Logger.Warn("webhook: capture for unknown order",
				zap.String("orderID", entity.OrderID), zap.String("paymentID", entity.ID))
			return nil
		}
		if err := s.Payments.MarkCaptured(ctx, entity.OrderID, entity.ID, ""); err != nil {
			return err
		}
		s.Logger.Info("webhook: payment captured",
			zap.String("orderID", entity.OrderID), zap.String("paymentID", entity.ID))

	case "refund.created":
		entity := payload.Payload.Refund.Entity
		if err := s.Payments.MarkRefundedByPaymentID(ctx, entity.PaymentID); err != nil {
			return err
		}
		s.Logger.Info("webhook: refund recorded", zap.String("paymentID", entity.PaymentID))

	default:
		s.Logger.Debug("webhook: ignored event", zap.String("event", payload.Event))
	}
	return nil
}
