package commands

import (
	"errors"
	"strings"

	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/pkg/guard"
)

var (
	ErrAddCommentCommandIsNotConstructed = errors.New(
		"AddCommentCommand must be created via NewAddCommentCommand constructor",
	)
	ErrContentIsRequired = errors.New("content is required")
)

// AddCommentCommand represents a request to append a message to an order's
// comment thread. The author's role is snapshotted into the comment so the
// thread stays readable even if the author's role changes later.
type AddCommentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	author  actor.Actor
	content string

	guard guard.ConstructorGuard
}

// NewAddCommentCommand creates a command to append a comment to an order.
// Validates that the order ID and actor are constructed and the content is
// non-empty after trimming.
func NewAddCommentCommand(orderID kernel.UUID, author actor.Actor, content string) (AddCommentCommand, error) {
	cmd := AddCommentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAuthor(author),
		cmd.setContent(content),
	); err != nil {
		return AddCommentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddCommentCommandIsNotConstructed if validation fails.
func (c AddCommentCommand) Validate() error {
	return c.guard.Validate(ErrAddCommentCommandIsNotConstructed)
}

// OrderID returns the identifier of the commented order.
func (c AddCommentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Author returns the commenting actor.
func (c AddCommentCommand) Author() actor.Actor {
	return c.author
}

// Content returns the comment text.
func (c AddCommentCommand) Content() string {
	return c.content
}

func (c *AddCommentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddCommentCommand) setAuthor(author actor.Actor) error {
	if err := author.Validate(); err != nil {
		return err
	}

	c.author = author
	return nil
}

func (c *AddCommentCommand) setContent(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrContentIsRequired
	}

	c.content = content
	return nil
}
