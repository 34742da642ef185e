// Package errs provides standardized error types for the order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes the error kinds the service surfaces to callers:
//   - ObjectNotFoundError: a referenced object does not exist
//   - ValueIsInvalidError: a value or state does not satisfy a business rule
//   - ValueIsRequiredError: a required value is missing
//   - ForbiddenError: the caller is not allowed to act on the object
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
//
// Transport adapters classify failures with errors.Is against the sentinels
// and never need to know the concrete types.
package errs
