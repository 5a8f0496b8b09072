package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const stripePaymentIntentsURL = "https://api.stripe.com/v1/payment_intents"

// StripeGateway charges through the Stripe PaymentIntents API using the
// fixed test payment method, confirmed in the same call.
type StripeGateway struct {
	secretKey  string
	httpClient *http.Client
}

func NewStripeGateway(secretKey string) *StripeGateway {
	return &StripeGateway{
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Charge creates and confirms a PaymentIntent and returns its id.
func (g *StripeGateway) Charge(ctx context.Context, chargeReq ChargeRequest) (*ChargeResult, error) {
	data := url.Values{
		"amount":         {strconv.FormatInt(chargeReq.AmountMinor, 10)},
		"currency":       {chargeReq.Currency},
		"payment_method": {"pm_card_visa"},
		"confirm":        {"true"},
		"description":    {chargeReq.Description},
		"automatic_payment_methods[enabled]":         {"true"},
		"automatic_payment_methods[allow_redirects]": {"never"},
	}
	if chargeReq.ReceiptEmail != "" {
		data.Set("receipt_email", chargeReq.ReceiptEmail)
	}
	for key, value := range chargeReq.Metadata {
		data.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, stripePaymentIntentsURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("stripe: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stripe: charge: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("stripe: charge failed (%d): %s", resp.StatusCode, string(body))
	}

	var intent struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("stripe: decode response: %w", err)
	}

	return &ChargeResult{TransactionID: intent.ID}, nil
}
