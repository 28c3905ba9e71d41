package analysisrepo

import (
	"context"
	"errors"

	"expertise/internal/core/domain/model/analysis"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAnalysisRepository implements AnalysisRepository using GORM.
type GormAnalysisRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAnalysisRepository creates a new GORM analysis repository.
func NewGormAnalysisRepository(db *gorm.DB, tracker aggregateTracker) *GormAnalysisRepository {
	return &GormAnalysisRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly authored analysis to the database.
func (r *GormAnalysisRepository) Add(ctx context.Context, aggregate *analysis.Analysis) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a content revision of an existing analysis.
// Select("*") forces every column into the UPDATE; a revision may clear the
// preview, and a struct update would skip the zero value.
func (r *GormAnalysisRepository) Update(ctx context.Context, aggregate *analysis.Analysis) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AnalysisDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrderID retrieves the analysis of an order.
func (r *GormAnalysisRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*analysis.Analysis, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AnalysisDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("analysis", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
