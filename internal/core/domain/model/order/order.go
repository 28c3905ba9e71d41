package order

import (
	"errors"
	"strings"
	"time"

	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root of the lifecycle engine. It owns the status
// state machine and the write-once operator assignment; documents, analysis,
// and comments reference it by ID.
//
// Invariants:
//   - Status is always one of the five defined states
//   - Title is non-empty
//   - The owning client is set at creation and never changes
//   - The assigned operator is set at most once and never cleared
//   - Orders are never physically deleted
type Order struct {
	id          kernel.UUID
	clientID    kernel.UUID
	operatorID  *kernel.UUID
	title       string
	description string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewOrder creates a client-submitted order in the New status.
// Title must be non-empty after trimming; description is optional.
func NewOrder(id kernel.UUID, clientID kernel.UUID, title string, description string) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        New,
		description:   strings.TrimSpace(description),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setTitle(title),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence. All invariants are
// re-checked so a corrupted record cannot enter the domain.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	operatorID *kernel.UUID,
	title string,
	description string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		description:   description,
		operatorID:    operatorID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setTitle(title),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	if operatorID != nil {
		if err := operatorID.Validate(); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// Validate ensures the Order instance was created through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the identity of the owning client.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Operator returns the assigned operator's identity, or nil if unassigned.
func (o *Order) Operator() *kernel.UUID {
	return o.operatorID
}

// Title returns the order title.
func (o *Order) Title() string {
	return o.title
}

// Description returns the optional order description.
func (o *Order) Description() string {
	return o.description
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was submitted.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsOwnedBy reports whether the given identity is the owning client.
func (o *Order) IsOwnedBy(id kernel.UUID) bool {
	return o.clientID.IsEqual(id)
}

// ChangeStatus moves the order to the target status on behalf of an operator.
//
// No source→target adjacency is checked: the workflow is advisory and any
// operator may move an order to any of the five states. If the target is
// InProgress and no operator is assigned yet, the acting operator is
// recorded, write-once. Handlers are responsible for verifying the actor's
// role before calling this method.
func (o *Order) ChangeStatus(target Status, operatorID kernel.UUID) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if err := operatorID.Validate(); err != nil {
		return err
	}

	if target == InProgress && o.operatorID == nil {
		o.operatorID = &operatorID
	}

	o.status = target
	o.touch()
	return nil
}

// MarkAwaitingPayment forces the status to AwaitingPayment, regardless of the
// prior status. This is the automatic transition performed when an operator
// saves an analysis; re-saving simply re-asserts the gate.
func (o *Order) MarkAwaitingPayment() {
	o.status = AwaitingPayment
	o.touch()
}

// Complete forces the status to Completed after a successful payment.
// No precondition on the prior status is checked; the gateway call is the
// only guard on this transition.
func (o *Order) Complete() {
	o.status = Completed
	o.touch()
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	o.title = title
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
