package commentrepo

import (
	"context"

	"expertise/internal/core/domain/model/comment"
	"expertise/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCommentRepository implements CommentRepository using GORM.
type GormCommentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCommentRepository creates a new GORM comment repository.
func NewGormCommentRepository(db *gorm.DB, tracker aggregateTracker) *GormCommentRepository {
	return &GormCommentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new comment to the database.
func (r *GormCommentRepository) Add(ctx context.Context, entity *comment.Comment) error {
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

// GetAllByOrderID retrieves all comments of an order in ascending
// creation-time order.
func (r *GormCommentRepository) GetAllByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*comment.Comment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CommentDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*comment.Comment, 0, len(dtos))
	for _, dto := range dtos {
		c, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		comments = append(comments, c)
	}

	return comments, nil
}
