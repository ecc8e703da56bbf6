package utils

import (
	"encoding/json"
	"fmt"

	"porto/config"

	"github.com/go-resty/resty/v2"
)

// VerifyPayment checks a deposit's payment reference against the configured
// gateway. When no gateway is configured the check is skipped, which keeps
// local development and tests self-contained.
func VerifyPayment(paymentID string, amount float64) error {
	if config.AppConfig.GatewayApiURL == "" {
		return nil
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.GatewayApiKey).
		Get(fmt.Sprintf("%s/payments/%s", config.AppConfig.GatewayApiURL, paymentID))
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode())
	}

	var payment struct {
		Status string  `json:"status"`
		Amount float64 `json:"amount"`
	}
	if err := json.Unmarshal(resp.Body(), &payment); err != nil {
		return fmt.Errorf("invalid gateway response: %w", err)
	}

	if payment.Status != "success" {
		return fmt.Errorf("payment %s not successful: %s", paymentID, payment.Status)
	}
	if payment.Amount != amount {
		return fmt.Errorf("payment %s amount mismatch: got %.2f, want %.2f", paymentID, payment.Amount, amount)
	}

	return nil
}
