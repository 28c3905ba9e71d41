// Package documentrepo provides data transfer objects and mapping functions
// for document metadata persistence. Document rows are append-only; the
// bytes themselves live in the document store under the storage key.
package documentrepo

import (
	"time"

	"expertise/internal/core/domain/model/document"
	"expertise/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DocumentDTO represents the database structure for persisting document
// metadata.
type DocumentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	FileName   string    `gorm:"not null"`
	StorageKey string    `gorm:"uniqueIndex;not null"`
	UploadedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for document entities.
func (DocumentDTO) TableName() string {
	return "documents"
}

func fromDomain(entity *document.Document) DocumentDTO {
	return DocumentDTO{
		ID:         entity.ID().Bytes(),
		OrderID:    entity.OrderID().Bytes(),
		FileName:   entity.FileName(),
		StorageKey: entity.StorageKey(),
		UploadedBy: entity.UploadedBy().Bytes(),
		CreatedAt:  entity.CreatedAt(),
	}
}

func toDomain(dto DocumentDTO) (*document.Document, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	uploadedBy, err := kernel.UUIDFromBytes(dto.UploadedBy[:])
	if err != nil {
		return nil, err
	}

	return document.RestoreDocument(id, orderID, dto.FileName, dto.StorageKey, uploadedBy, dto.CreatedAt)
}
