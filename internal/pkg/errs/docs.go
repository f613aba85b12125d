// Package errs provides standardized error types for the waypoint application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is malformed
//   - ObjectNotFoundError: For when a target or referenced object cannot be found
//   - ObjectAlreadyExistsError: For when a store-level uniqueness constraint is violated
//   - AccessDeniedError: For when the caller's role does not permit an operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Transport adapters classify failures with errors.Is against the sentinels and
// use errors.As to read the details (kind, id, field) for the response body.
package errs
