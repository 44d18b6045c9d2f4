package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ValidationRequest is the payload sent to the promotion validator.
// OrderSubtotal is in rupees, matching the validator's public contract.
type ValidationRequest struct {
	Code          string    `json:"code"`
	OrderSubtotal float64   `json:"orderSubtotal"`
	RestaurantID  uuid.UUID `json:"restaurantId"`
}

// ValidatedPromotion mirrors the validator's promotion payload. The
// calculated_discount figure is informational; the checkout calculator
// always derives the discount locally from the percentage/amount fields.
type ValidatedPromotion struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	DiscountPercentage *float64 `json:"discount_percentage"`
	DiscountAmount     *float64 `json:"discount_amount"`
	CalculatedDiscount float64  `json:"calculated_discount"`
}

// ValidationResponse is the validator's reply envelope.
type ValidationResponse struct {
	Valid     bool                `json:"valid"`
	Promotion *ValidatedPromotion `json:"promotion,omitempty"`
	Error     string              `json:"error,omitempty"`
}

// PromotionValidator validates promotion codes against a remote service.
type PromotionValidator interface {
	Validate(ctx context.Context, req *ValidationRequest) (*ValidationResponse, error)
}

// PromotionValidatorClient is the HTTP client for the promotion
// validation service.
type PromotionValidatorClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewPromotionValidatorClient creates a validator client for the given
// base URL. The timeout bounds the whole validation round trip.
func NewPromotionValidatorClient(baseURL string, timeout time.Duration) *PromotionValidatorClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &PromotionValidatorClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// Validate posts the code to the validator and returns its verdict.
// Transport failures and non-2xx replies are returned as errors so the
// caller can map them to a gateway failure; a well-formed "invalid code"
// reply is NOT an error, it comes back as Valid=false.
func (c *PromotionValidatorClient) Validate(ctx context.Context, valReq *ValidationRequest) (*ValidationResponse, error) {
	payload, err := json.Marshal(valReq)
	if err != nil {
		return nil, fmt.Errorf("error marshalling validation request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/promotions/validate", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling promotion validator: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading validator response: %w", err)
	}

	// 422 carries a structured invalid-code verdict, not a transport fault
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusUnprocessableEntity {
		return nil, fmt.Errorf("promotion validator returned status %d: %s", resp.StatusCode, string(body))
	}

	var result ValidationResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("error unmarshalling validator response: %w", err)
	}

	return &result, nil
}
