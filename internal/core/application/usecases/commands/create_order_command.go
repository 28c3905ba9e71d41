package commands

import (
	"errors"
	"strings"

	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTitleIsRequired = errors.New("title is required")
)

// CreateOrderCommand represents a client's request to submit a new order
// for expert document analysis. The submitting actor becomes the owning
// client and the order starts in the NEW status.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, client, "Contract review", "Two leases attached")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	client      actor.Actor
	title       string
	description string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to submit a new analysis order.
// Validates that the order ID and actor are constructed and the title is
// non-empty after trimming; the description is optional.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	client actor.Actor,
	title string,
	description string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClient(client),
		orderCommand.setTitle(title),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Client returns the submitting actor.
func (c CreateOrderCommand) Client() actor.Actor {
	return c.client
}

// Title returns the order title.
func (c CreateOrderCommand) Title() string {
	return c.title
}

// Description returns the optional order description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClient(client actor.Actor) error {
	if err := client.Validate(); err != nil {
		return err
	}

	c.client = client
	return nil
}

func (c *CreateOrderCommand) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}
