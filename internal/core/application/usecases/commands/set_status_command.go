package commands

import (
	"errors"

	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/core/domain/model/order"
	"expertise/internal/pkg/guard"
)

var ErrSetStatusCommandIsNotConstructed = errors.New(
	"SetStatusCommand must be created via NewSetStatusCommand constructor",
)

// SetStatusCommand represents an operator's request to move an order to a
// target status. Any of the five statuses is a legal target; the workflow
// is advisory and mis-clicks are corrected by re-issuing the command.
type SetStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	issuer  actor.Actor

	guard guard.ConstructorGuard
}

// NewSetStatusCommand creates a command to move an order to a target status.
// Validates that the target is one of the five defined statuses and that the
// order ID and actor are constructed. The issuer's role is checked by the
// handler, not here.
func NewSetStatusCommand(orderID kernel.UUID, target order.Status, issuer actor.Actor) (SetStatusCommand, error) {
	cmd := SetStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setIssuer(issuer),
	); err != nil {
		return SetStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetStatusCommandIsNotConstructed if validation fails.
func (c SetStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to move.
func (c SetStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested target status.
func (c SetStatusCommand) Target() order.Status {
	return c.target
}

// Issuer returns the actor issuing the transition.
func (c SetStatusCommand) Issuer() actor.Actor {
	return c.issuer
}

func (c *SetStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *SetStatusCommand) setIssuer(issuer actor.Actor) error {
	if err := issuer.Validate(); err != nil {
		return err
	}

	c.issuer = issuer
	return nil
}
