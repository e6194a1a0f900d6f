package payment

import (
	"fmt"

	"vedicjivan/config"

	razorpay "github.com/razorpay/razorpay-go"
)

// razorpayGateway adapts the Razorpay SDK to the Gateway interface.
type razorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway builds a Gateway from the configured API keys.
func NewRazorpayGateway() Gateway {
	return &razorpayGateway{
		client: razorpay.NewClient(config.AppConfig.RazorpayKeyID, config.AppConfig.RazorpayKeySecret),
	}
}

func (g *razorpayGateway) CreateOrder(amountPaise int, currency, receipt string, notes map[string]interface{}) (string, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}
	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create razorpay order: %w", err)
	}

	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("razorpay order response missing id")
	}
	return orderID, nil
}
