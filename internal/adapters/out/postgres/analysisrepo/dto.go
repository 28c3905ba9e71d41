// Package analysisrepo provides data transfer objects and mapping functions
// for analysis persistence. At most one analysis row exists per order,
// enforced by a unique index on order_id.
package analysisrepo

import (
	"time"

	"expertise/internal/core/domain/model/analysis"
	"expertise/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AnalysisDTO represents the database structure for persisting analysis
// aggregates.
type AnalysisDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	PreviewContent string
	FullContent    string    `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the database table name for analysis entities.
func (AnalysisDTO) TableName() string {
	return "analyses"
}

func fromDomain(aggregate *analysis.Analysis) AnalysisDTO {
	return AnalysisDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		PreviewContent: aggregate.PreviewContent(),
		FullContent:    aggregate.FullContent(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

func toDomain(dto AnalysisDTO) (*analysis.Analysis, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return analysis.RestoreAnalysis(
		id,
		orderID,
		dto.PreviewContent,
		dto.FullContent,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
