package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/smartcoindev389/ana-rey-video-sub000/config"

	"github.com/go-resty/resty/v2"
)

// PaymentStatus is the gateway's view of a payment reference
type PaymentStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"` // settled, pending, failed
	Amount uint   `json:"amount"`
}

// VerifyPaymentSettled asks the payment gateway whether the given payment
// reference has settled. Billing itself happens entirely at the gateway;
// this is only a read of an already-decided fact. When no gateway is
// configured (local development) the reference is accepted as settled.
func VerifyPaymentSettled(paymentID string) (*PaymentStatus, error) {
	if config.AppConfig.PaymentGatewayURL == "" {
		log.Printf("[PAYMENT] Gateway not configured, accepting payment %s without verification", paymentID)
		return &PaymentStatus{ID: paymentID, Status: "settled"}, nil
	}

	client := resty.New().
		SetBaseURL(config.AppConfig.PaymentGatewayURL).
		SetTimeout(10 * time.Second).
		SetHeader("Authorization", "Bearer "+config.AppConfig.PaymentGatewayKey)

	var status PaymentStatus
	resp, err := client.R().
		SetResult(&status).
		SetPathParam("paymentId", paymentID).
		Get("/payments/{paymentId}")
	if err != nil {
		log.Printf("[PAYMENT] Error verifying payment %s: %v", paymentID, err)
		return nil, err
	}
	if resp.IsError() {
		log.Printf("[PAYMENT] Gateway returned %d for payment %s", resp.StatusCode(), paymentID)
		return nil, fmt.Errorf("payment lookup failed with status %d", resp.StatusCode())
	}

	if status.Status != "settled" {
		return nil, fmt.Errorf("payment %s is not settled (status: %s)", paymentID, status.Status)
	}

	return &status, nil
}
