package documentrepo

import (
	"context"
	"errors"

	"expertise/internal/core/domain/model/document"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDocumentRepository implements DocumentRepository using GORM.
type GormDocumentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDocumentRepository creates a new GORM document repository.
func NewGormDocumentRepository(db *gorm.DB, tracker aggregateTracker) *GormDocumentRepository {
	return &GormDocumentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new document record to the database.
func (r *GormDocumentRepository) Add(ctx context.Context, entity *document.Document) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Get retrieves a document record by ID.
func (r *GormDocumentRepository) Get(ctx context.Context, id kernel.UUID) (*document.Document, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DocumentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("document", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrderID retrieves all document records of an order, oldest first.
func (r *GormDocumentRepository) GetAllByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*document.Document, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DocumentDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	documents := make([]*document.Document, 0, len(dtos))
	for _, dto := range dtos {
		d, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		documents = append(documents, d)
	}

	return documents, nil
}
