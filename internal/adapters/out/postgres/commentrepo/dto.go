// Package commentrepo provides data transfer objects and mapping functions
// for comment persistence. Comments are append-only and read back in
// ascending creation order.
package commentrepo

import (
	"time"

	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/comment"
	"expertise/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CommentDTO represents the database structure for persisting comments.
// The author role is denormalized into the row; the private flag is stored
// but never read back into any listing.
type CommentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null"`
	AuthorRole int       `gorm:"not null"`
	Content    string    `gorm:"not null"`
	IsPrivate  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for comment entities.
func (CommentDTO) TableName() string {
	return "order_comments"
}

func fromDomain(entity *comment.Comment) CommentDTO {
	return CommentDTO{
		ID:         entity.ID().Bytes(),
		OrderID:    entity.OrderID().Bytes(),
		AuthorID:   entity.AuthorID().Bytes(),
		AuthorRole: int(entity.AuthorRole()),
		Content:    entity.Content(),
		IsPrivate:  entity.IsPrivate(),
		CreatedAt:  entity.CreatedAt(),
	}
}

func toDomain(dto CommentDTO) (*comment.Comment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	authorID, err := kernel.UUIDFromBytes(dto.AuthorID[:])
	if err != nil {
		return nil, err
	}

	return comment.RestoreComment(
		id,
		orderID,
		authorID,
		actor.Role(dto.AuthorRole),
		dto.Content,
		dto.IsPrivate,
		dto.CreatedAt,
	)
}
