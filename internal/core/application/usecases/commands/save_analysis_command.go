package commands

import (
	"errors"
	"strings"

	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/pkg/guard"
)

var (
	ErrSaveAnalysisCommandIsNotConstructed = errors.New(
		"SaveAnalysisCommand must be created via NewSaveAnalysisCommand constructor",
	)
	ErrFullContentIsRequired = errors.New("full content is required")
)

// SaveAnalysisCommand represents an operator's request to publish or revise
// the analysis result of an order. The preview is the teaser shown before
// payment; the full content is released only after payment.
type SaveAnalysisCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	author         actor.Actor
	previewContent string
	fullContent    string

	guard guard.ConstructorGuard
}

// NewSaveAnalysisCommand creates a command to publish analysis content for an
// order. The full content must be non-empty after trimming; the preview is
// optional and may legitimately be empty.
func NewSaveAnalysisCommand(
	orderID kernel.UUID,
	author actor.Actor,
	previewContent string,
	fullContent string,
) (SaveAnalysisCommand, error) {
	cmd := SaveAnalysisCommand{
		previewContent: strings.TrimSpace(previewContent),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAuthor(author),
		cmd.setFullContent(fullContent),
	); err != nil {
		return SaveAnalysisCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSaveAnalysisCommandIsNotConstructed if validation fails.
func (c SaveAnalysisCommand) Validate() error {
	return c.guard.Validate(ErrSaveAnalysisCommandIsNotConstructed)
}

// OrderID returns the identifier of the analyzed order.
func (c SaveAnalysisCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Author returns the actor publishing the analysis.
func (c SaveAnalysisCommand) Author() actor.Actor {
	return c.author
}

// PreviewContent returns the pre-payment teaser content.
func (c SaveAnalysisCommand) PreviewContent() string {
	return c.previewContent
}

// FullContent returns the post-payment full content.
func (c SaveAnalysisCommand) FullContent() string {
	return c.fullContent
}

func (c *SaveAnalysisCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SaveAnalysisCommand) setAuthor(author actor.Actor) error {
	if err := author.Validate(); err != nil {
		return err
	}

	c.author = author
	return nil
}

func (c *SaveAnalysisCommand) setFullContent(fullContent string) error {
	fullContent = strings.TrimSpace(fullContent)
	if fullContent == "" {
		return ErrFullContentIsRequired
	}

	c.fullContent = fullContent
	return nil
}
