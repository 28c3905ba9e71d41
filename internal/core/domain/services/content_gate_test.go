package services_test

import (
	"testing"

	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/analysis"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/core/domain/model/order"
	"expertise/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Contract review", "")
	require.NoError(t, err)
	require.NoError(t, o.ChangeStatus(status, kernel.NewUUID()))
	return o
}

func analysisFor(t *testing.T, o *order.Order, preview, full string) *analysis.Analysis {
	t.Helper()

	a, err := analysis.NewAnalysis(kernel.NewUUID(), o.ID(), preview, full)
	require.NoError(t, err)
	return a
}

func TestContentGate_Operator(t *testing.T) {
	gate := services.NewContentGate()

	t.Run("sees preview and full content in every status", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			o := orderInStatus(t, status)
			a := analysisFor(t, o, "P", "F")

			view := gate.VisibleContent(o, a, actor.Operator)

			assert.True(t, view.ShowAnalysis, "status %s", status)
			assert.Equal(t, "P", view.PreviewContent)
			assert.Equal(t, "F", view.FullContent)
			assert.True(t, view.CanEdit)
			assert.False(t, view.PaymentDue)
		}
	})

	t.Run("keeps edit capability when no analysis exists yet", func(t *testing.T) {
		o := orderInStatus(t, order.InProgress)

		view := gate.VisibleContent(o, nil, actor.Operator)

		assert.False(t, view.ShowAnalysis)
		assert.True(t, view.CanEdit)
	})
}

func TestContentGate_Client(t *testing.T) {
	gate := services.NewContentGate()

	t.Run("sees nothing before the gate", func(t *testing.T) {
		for _, status := range []order.Status{order.New, order.InProgress, order.AwaitingClient} {
			o := orderInStatus(t, status)
			a := analysisFor(t, o, "P", "F")

			view := gate.VisibleContent(o, a, actor.Client)

			assert.False(t, view.ShowAnalysis, "status %s", status)
			assert.Empty(t, view.PreviewContent)
			assert.Empty(t, view.FullContent)
			assert.False(t, view.CanEdit)
		}
	})

	t.Run("sees exactly the preview while awaiting payment", func(t *testing.T) {
		o := orderInStatus(t, order.AwaitingPayment)
		a := analysisFor(t, o, "P", "F")

		view := gate.VisibleContent(o, a, actor.Client)

		assert.True(t, view.ShowAnalysis)
		assert.Equal(t, "P", view.PreviewContent)
		assert.Empty(t, view.FullContent, "full content must be withheld before payment")
		assert.True(t, view.PaymentDue)
		assert.False(t, view.CanEdit)
	})

	t.Run("sees the full content once completed", func(t *testing.T) {
		o := orderInStatus(t, order.Completed)
		a := analysisFor(t, o, "P", "F")

		view := gate.VisibleContent(o, a, actor.Client)

		assert.True(t, view.ShowAnalysis)
		assert.Empty(t, view.PreviewContent)
		assert.Equal(t, "F", view.FullContent)
		assert.False(t, view.PaymentDue)
	})

	t.Run("sees nothing when no analysis exists, in any status", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			o := orderInStatus(t, status)

			view := gate.VisibleContent(o, nil, actor.Client)

			assert.Equal(t, services.AnalysisView{}, view, "status %s", status)
		}
	})
}
