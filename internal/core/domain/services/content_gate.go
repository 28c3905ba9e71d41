package services

import (
	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/analysis"
	"expertise/internal/core/domain/model/order"
)

// AnalysisView is the role- and status-dependent projection of an analysis.
// Exactly the fields a requester is allowed to see are populated; withheld
// content is left empty rather than blanked downstream.
type AnalysisView struct {
	// ShowAnalysis reports whether any analysis section is visible at all.
	ShowAnalysis bool

	// PreviewContent is the freely visible fragment, when permitted.
	PreviewContent string

	// FullContent is the paid analysis text, when permitted.
	FullContent string

	// PaymentDue reports that the requester should be offered the payment
	// call-to-action (client looking at an order awaiting payment).
	PaymentDue bool

	// CanEdit reports that the requester may author or revise the analysis.
	CanEdit bool
}

// ContentGate is the domain service deciding which analysis content a
// requester may observe. It is a pure function of the requester role, the
// order status, and analysis presence; it holds no state.
//
// The gate is the authorization boundary for paid content: a client never
// observes full content while the order status is not Completed, and never
// observes anything if no analysis exists.
type ContentGate struct{}

// NewContentGate creates a new ContentGate instance.
func NewContentGate() ContentGate {
	return ContentGate{}
}

// VisibleContent computes the analysis projection for one requester.
//
// Operators always see preview and full content plus the edit capability.
// Clients see nothing before the analysis is gated, the preview (with a
// payment call-to-action) while AwaitingPayment, and the full content once
// Completed.
func (g ContentGate) VisibleContent(o *order.Order, a *analysis.Analysis, role actor.Role) AnalysisView {
	if role == actor.Operator {
		view := AnalysisView{CanEdit: true}
		if a != nil {
			view.ShowAnalysis = true
			view.PreviewContent = a.PreviewContent()
			view.FullContent = a.FullContent()
		}
		return view
	}

	if a == nil {
		return AnalysisView{}
	}

	switch o.Status() {
	case order.AwaitingPayment:
		return AnalysisView{
			ShowAnalysis:   true,
			PreviewContent: a.PreviewContent(),
			PaymentDue:     true,
		}
	case order.Completed:
		return AnalysisView{
			ShowAnalysis: true,
			FullContent:  a.FullContent(),
		}
	default:
		return AnalysisView{}
	}
}
