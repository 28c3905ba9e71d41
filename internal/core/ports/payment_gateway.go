package ports

import (
	"context"

	"expertise/internal/core/domain/model/kernel"
)

// PaymentGateway is the opaque external capability charging a client for an
// order. The engine only learns success or failure; amounts, receipts, and
// retries are the gateway's business.
type PaymentGateway interface {
	// Charge attempts to collect payment for the given order.
	// A nil return means the charge succeeded; any error means the order
	// must remain in its current status.
	Charge(ctx context.Context, orderID kernel.UUID) error
}
