// Package errs provides standardized error types for the expertise application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure classes the core distinguishes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ObjectNotFoundError: an object cannot be found by its identifier
//   - OperationForbiddenError: the acting identity may not perform the operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Dependency failures (database, blob store, payment gateway) are not
// wrapped in a dedicated type; adapters wrap them with %w naming the
// originating operation so callers can still inspect the cause.
package errs
