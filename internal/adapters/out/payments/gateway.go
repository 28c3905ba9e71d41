// Package payments implements the payment gateway port against an external
// HTTP charging service. The engine only forwards the order reference and
// reads back success or failure; amounts and receipts stay on the provider
// side.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"expertise/internal/core/domain/model/kernel"
)

// ErrChargeDeclined reports that the provider refused the charge.
var ErrChargeDeclined = errors.New("charge declined")

// Gateway is an HTTP client for the external payment provider.
type Gateway struct {
	endpoint string
	client   *http.Client
}

// NewGateway creates a gateway charging through the given endpoint.
func NewGateway(endpoint string) *Gateway {
	return &Gateway{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type chargeRequest struct {
	OrderID string `json:"order_id"`
}

// Charge attempts to collect payment for the given order.
// Any non-2xx provider response is reported as ErrChargeDeclined.
func (g *Gateway) Charge(ctx context.Context, orderID kernel.UUID) error {
	body, err := json.Marshal(chargeRequest{OrderID: orderID.String()})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("call payment provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: status %d: %s", ErrChargeDeclined, resp.StatusCode, detail)
	}

	return nil
}
