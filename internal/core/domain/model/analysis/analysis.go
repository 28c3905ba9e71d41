// Package analysis provides the Analysis aggregate: the operator-authored
// result of an order, split into a freely visible preview and a full text
// gated behind payment. At most one analysis exists per order.
package analysis

import (
	"errors"
	"strings"
	"time"

	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/pkg/errs"
)

// ErrAnalysisIsNotConstructed is returned when an Analysis instance was not
// created through the NewAnalysis or RestoreAnalysis factory methods.
var ErrAnalysisIsNotConstructed = errors.New("Analysis must be created via NewAnalysis or RestoreAnalysis constructor")

// Analysis is the operator-authored result for an order.
//
// Invariants:
//   - Full content is never empty for a persisted analysis
//   - Preview content may be empty
//   - Exactly zero or one analysis exists per order; revisions overwrite
//     the content in place
type Analysis struct {
	id             kernel.UUID
	orderID        kernel.UUID
	previewContent string
	fullContent    string
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

// NewAnalysis creates an analysis for an order. Full content must be
// non-empty after trimming; preview may be empty.
func NewAnalysis(id kernel.UUID, orderID kernel.UUID, previewContent string, fullContent string) (*Analysis, error) {
	now := time.Now().UTC()
	a := &Analysis{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setContent(previewContent, fullContent),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAnalysis reconstructs an analysis from persistence, re-checking
// the non-empty full content invariant.
func RestoreAnalysis(
	id kernel.UUID,
	orderID kernel.UUID,
	previewContent string,
	fullContent string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Analysis, error) {
	a := &Analysis{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setContent(previewContent, fullContent),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Analysis instance was created through a factory method.
func (a *Analysis) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAnalysisIsNotConstructed
	}

	return nil
}

// ID returns the analysis identifier.
func (a *Analysis) ID() kernel.UUID {
	return a.id
}

// OrderID returns the identifier of the owning order.
func (a *Analysis) OrderID() kernel.UUID {
	return a.orderID
}

// PreviewContent returns the freely visible preview text, possibly empty.
func (a *Analysis) PreviewContent() string {
	return a.previewContent
}

// FullContent returns the payment-gated full text, never empty.
func (a *Analysis) FullContent() string {
	return a.fullContent
}

// CreatedAt returns when the analysis was first authored.
func (a *Analysis) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns when the content was last revised.
func (a *Analysis) UpdatedAt() time.Time {
	return a.updatedAt
}

// Revise overwrites preview and full content in place. The non-empty full
// content rule applies to revisions the same as to creation.
func (a *Analysis) Revise(previewContent string, fullContent string) error {
	if err := a.setContent(previewContent, fullContent); err != nil {
		return err
	}

	a.updatedAt = time.Now().UTC()
	return nil
}

func (a *Analysis) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Analysis) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}

func (a *Analysis) setContent(previewContent string, fullContent string) error {
	fullContent = strings.TrimSpace(fullContent)
	if fullContent == "" {
		return errs.NewValueIsRequiredError("full content")
	}

	a.previewContent = strings.TrimSpace(previewContent)
	a.fullContent = fullContent
	return nil
}
