// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"expertise/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AnalysisRepoFactory provides access to the analysis repository within a transaction.
	AnalysisRepoFactory interface {
		AnalysisRepository() ports.AnalysisRepository
	}

	// DocumentRepoFactory provides access to the document repository within a transaction.
	DocumentRepoFactory interface {
		DocumentRepository() ports.DocumentRepository
	}

	// CommentRepoFactory provides access to the comment repository within a transaction.
	CommentRepoFactory interface {
		CommentRepository() ports.CommentRepository
	}

	// OrderUoW manages transactions for order-only operations:
	// create order, set status, complete payment.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AnalysisUoW manages transactions spanning the order and analysis
	// aggregates. Saving an analysis writes both: the content upsert and the
	// forced AWAITING_PAYMENT status.
	AnalysisUoW interface {
		TxManager
		OrderRepoFactory
		AnalysisRepoFactory
	}

	// AnalysisUoWFactory creates new analysis unit of work instances.
	AnalysisUoWFactory interface {
		Create() AnalysisUoW
	}

	// DocumentUoW manages transactions spanning the order and document
	// aggregates. Each attached file commits independently.
	DocumentUoW interface {
		TxManager
		OrderRepoFactory
		DocumentRepoFactory
	}

	// DocumentUoWFactory creates new document unit of work instances.
	DocumentUoWFactory interface {
		Create() DocumentUoW
	}

	// CommentUoW manages transactions spanning the order and comment
	// aggregates.
	CommentUoW interface {
		TxManager
		OrderRepoFactory
		CommentRepoFactory
	}

	// CommentUoWFactory creates new comment unit of work instances.
	CommentUoWFactory interface {
		Create() CommentUoW
	}
)
