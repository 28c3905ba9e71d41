package actor

import (
	"fmt"

	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/pkg/errs"
)

// Role is the fixed role tag the identity provider assigns at account
// creation. The lifecycle engine never alters it.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// Client submits orders, attaches documents, and pays for analyses.
	Client

	// Operator triages orders, authors analyses, and manages statuses.
	Operator
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "UNKNOWN",
		Client:      "CLIENT",
		Operator:    "OPERATOR",
	}
}

func getValidRoleStrings() map[Role]string {
	return map[Role]string{
		Client:   "CLIENT",
		Operator: "OPERATOR",
	}
}

// RoleFromString parses the role tag issued by the identity provider.
// Returns an error for anything other than CLIENT or OPERATOR.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the role is one of the two defined tags.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the canonical role tag.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Actor is the authenticated identity and role pair passed explicitly into
// every engine operation. It is a value object; the identity provider owns
// the underlying account.
type Actor struct {
	id   kernel.UUID
	role Role
}

// NewActor creates an Actor from a validated identity and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{id: id, role: role}, nil
}

// ID returns the stable identity of the actor.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role tag.
func (a Actor) Role() Role {
	return a.role
}

// IsClient reports whether the actor holds the CLIENT role.
func (a Actor) IsClient() bool {
	return a.role == Client
}

// IsOperator reports whether the actor holds the OPERATOR role.
func (a Actor) IsOperator() bool {
	return a.role == Operator
}

// Validate checks the actor carries a constructed identity and a defined role.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
