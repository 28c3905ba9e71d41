package analysis_test

import (
	"testing"
	"time"

	"expertise/internal/core/domain/model/analysis"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnalysis(t *testing.T) {
	id := kernel.NewUUID()
	orderID := kernel.NewUUID()

	t.Run("creates analysis with preview and full content", func(t *testing.T) {
		a, err := analysis.NewAnalysis(id, orderID, "Short preview", "Full findings")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.True(t, a.OrderID().IsEqual(orderID))
		assert.Equal(t, "Short preview", a.PreviewContent())
		assert.Equal(t, "Full findings", a.FullContent())
	})

	t.Run("allows empty preview", func(t *testing.T) {
		a, err := analysis.NewAnalysis(id, orderID, "", "Full findings")

		require.NoError(t, err)
		assert.Empty(t, a.PreviewContent())
	})

	t.Run("trims content", func(t *testing.T) {
		a, err := analysis.NewAnalysis(id, orderID, "  preview  ", "  full  ")

		require.NoError(t, err)
		assert.Equal(t, "preview", a.PreviewContent())
		assert.Equal(t, "full", a.FullContent())
	})

	t.Run("rejects empty full content", func(t *testing.T) {
		a, err := analysis.NewAnalysis(id, orderID, "preview", "   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, a)
	})

	t.Run("rejects zero identifiers", func(t *testing.T) {
		var zero kernel.UUID

		_, err := analysis.NewAnalysis(zero, orderID, "", "Full findings")
		require.Error(t, err)

		_, err = analysis.NewAnalysis(id, zero, "", "Full findings")
		require.Error(t, err)
	})
}

func TestRestoreAnalysis(t *testing.T) {
	t.Run("restores persisted analysis", func(t *testing.T) {
		createdAt := time.Now().UTC().Add(-time.Hour)
		updatedAt := time.Now().UTC()

		a, err := analysis.RestoreAnalysis(kernel.NewUUID(), kernel.NewUUID(), "P", "F", createdAt, updatedAt)

		require.NoError(t, err)
		assert.Equal(t, createdAt, a.CreatedAt())
		assert.Equal(t, updatedAt, a.UpdatedAt())
	})

	t.Run("rejects persisted record with empty full content", func(t *testing.T) {
		_, err := analysis.RestoreAnalysis(kernel.NewUUID(), kernel.NewUUID(), "P", "",
			time.Now().UTC(), time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAnalysisRevise(t *testing.T) {
	t.Run("overwrites content in place", func(t *testing.T) {
		a, err := analysis.NewAnalysis(kernel.NewUUID(), kernel.NewUUID(), "old preview", "old full")
		require.NoError(t, err)

		require.NoError(t, a.Revise("new preview", "new full"))
		assert.Equal(t, "new preview", a.PreviewContent())
		assert.Equal(t, "new full", a.FullContent())
	})

	t.Run("rejects revision with empty full content and keeps prior content", func(t *testing.T) {
		a, err := analysis.NewAnalysis(kernel.NewUUID(), kernel.NewUUID(), "preview", "full")
		require.NoError(t, err)

		err = a.Revise("new preview", "  ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, "preview", a.PreviewContent())
		assert.Equal(t, "full", a.FullContent())
	})
}

func TestAnalysisValidate(t *testing.T) {
	var nilAnalysis *analysis.Analysis
	require.ErrorIs(t, nilAnalysis.Validate(), analysis.ErrAnalysisIsNotConstructed)
	require.ErrorIs(t, (&analysis.Analysis{}).Validate(), analysis.ErrAnalysisIsNotConstructed)
}
