package order

import (
	"fmt"

	"expertise/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Happy path:
//
//	New ──> InProgress ──> AwaitingClient ──> AwaitingPayment ──> Completed
//	             ^                │
//	             └────────────────┘
//
// The workflow is advisory: an operator may move an order to any of the
// five states at any time. Saving an analysis always forces
// AwaitingPayment, and a successful payment always forces Completed;
// those are the only non-operator transitions in the system.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status of a freshly submitted order.
	New

	// InProgress indicates an operator has taken the order for analysis.
	// First entry into this status assigns the acting operator, write-once.
	InProgress

	// AwaitingClient indicates the operator needs more input from the client.
	AwaitingClient

	// AwaitingPayment indicates the analysis is authored and gated behind payment.
	AwaitingPayment

	// Completed indicates the order is paid and the full analysis is released.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		New:             "NEW",
		InProgress:      "IN_PROGRESS",
		AwaitingClient:  "AWAITING_CLIENT",
		AwaitingPayment: "AWAITING_PAYMENT",
		Completed:       "COMPLETED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:             "NEW",
		InProgress:      "IN_PROGRESS",
		AwaitingClient:  "AWAITING_CLIENT",
		AwaitingPayment: "AWAITING_PAYMENT",
		Completed:       "COMPLETED",
	}
}

// AllStatuses returns the five valid statuses in lifecycle order.
// Used by the stats fold so every status appears in the aggregate,
// including those with zero orders.
func AllStatuses() []Status {
	return []Status{New, InProgress, AwaitingClient, AwaitingPayment, Completed}
}

// StatusFromString parses a canonical status tag such as "AWAITING_PAYMENT".
// Returns an error for anything outside the five defined tags.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the status is one of the five defined tags.
// Unknown (0) and any other values are invalid. No operation may ever
// persist a status that fails this check.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical status tag, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
