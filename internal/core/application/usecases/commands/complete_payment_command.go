package commands

import (
	"errors"

	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/pkg/guard"
)

var ErrCompletePaymentCommandIsNotConstructed = errors.New(
	"CompletePaymentCommand must be created via NewCompletePaymentCommand constructor",
)

// CompletePaymentCommand represents a client's request to pay for an order
// and unlock its full analysis content.
type CompletePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	payer   actor.Actor

	guard guard.ConstructorGuard
}

// NewCompletePaymentCommand creates a command to pay for an order.
// Validates that the order ID and actor are constructed.
func NewCompletePaymentCommand(orderID kernel.UUID, payer actor.Actor) (CompletePaymentCommand, error) {
	cmd := CompletePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPayer(payer),
	); err != nil {
		return CompletePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompletePaymentCommandIsNotConstructed if validation fails.
func (c CompletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCompletePaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid for.
func (c CompletePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Payer returns the paying actor.
func (c CompletePaymentCommand) Payer() actor.Actor {
	return c.payer
}

func (c *CompletePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompletePaymentCommand) setPayer(payer actor.Actor) error {
	if err := payer.Validate(); err != nil {
		return err
	}

	c.payer = payer
	return nil
}
