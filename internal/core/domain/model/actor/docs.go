// Package actor models the authenticated identity and role pair that every
// lifecycle operation receives. Roles are CLIENT and OPERATOR, fixed at
// account creation by the external identity provider; the engine only reads
// them to authorize operations.
package actor
