// Package comment provides the Comment entity for an order's communication
// thread. Comments are append-only and visible to both roles; the author's
// role is captured at write time as an immutable snapshot.
package comment

import (
	"errors"
	"strings"
	"time"

	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/pkg/errs"
)

// ErrCommentIsNotConstructed is returned when a Comment instance was not
// created through the NewComment or RestoreComment factory methods.
var ErrCommentIsNotConstructed = errors.New("Comment must be created via NewComment or RestoreComment constructor")

// Comment is one entry in an order's thread, ordered by creation time.
//
// The author role is denormalized at creation and never re-derived from the
// identity provider, so the thread reads historically even if an account's
// role record changes later. The private flag is persisted for schema
// compatibility but the read path ignores it; no operation sets it.
type Comment struct {
	id         kernel.UUID
	orderID    kernel.UUID
	authorID   kernel.UUID
	authorRole actor.Role
	content    string
	isPrivate  bool
	createdAt  time.Time

	isConstructed bool
}

// NewComment creates a comment authored by the given actor.
// Content must be non-empty after trimming.
func NewComment(id kernel.UUID, orderID kernel.UUID, author actor.Actor, content string) (*Comment, error) {
	c := &Comment{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setOrderID(orderID),
		c.setAuthor(author),
		c.setContent(content),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreComment reconstructs a comment from persistence, including the
// denormalized author role and the latent private flag.
func RestoreComment(
	id kernel.UUID,
	orderID kernel.UUID,
	authorID kernel.UUID,
	authorRole actor.Role,
	content string,
	isPrivate bool,
	createdAt time.Time,
) (*Comment, error) {
	c := &Comment{
		isPrivate:     isPrivate,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setOrderID(orderID),
		c.setContent(content),
	); err != nil {
		return nil, err
	}

	if err := authorID.Validate(); err != nil {
		return nil, err
	}
	if err := authorRole.Validate(); err != nil {
		return nil, err
	}
	c.authorID = authorID
	c.authorRole = authorRole

	return c, nil
}

// Validate ensures the Comment instance was created through a factory method.
func (c *Comment) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCommentIsNotConstructed
	}

	return nil
}

// ID returns the comment identifier.
func (c *Comment) ID() kernel.UUID {
	return c.id
}

// OrderID returns the identifier of the owning order.
func (c *Comment) OrderID() kernel.UUID {
	return c.orderID
}

// AuthorID returns the identity of the comment author.
func (c *Comment) AuthorID() kernel.UUID {
	return c.authorID
}

// AuthorRole returns the author's role as snapshotted at write time.
func (c *Comment) AuthorRole() actor.Role {
	return c.authorRole
}

// Content returns the comment text.
func (c *Comment) Content() string {
	return c.content
}

// IsPrivate returns the latent visibility flag. The read path shows all
// comments to both roles regardless of this value.
func (c *Comment) IsPrivate() bool {
	return c.isPrivate
}

// CreatedAt returns when the comment was written.
func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Comment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *Comment) setAuthor(author actor.Actor) error {
	if err := author.Validate(); err != nil {
		return err
	}
	c.authorID = author.ID()
	c.authorRole = author.Role()
	return nil
}

func (c *Comment) setContent(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return errs.NewValueIsRequiredError("content")
	}
	c.content = content
	return nil
}
