// Package errs provides standardized error types for the purchase-order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is present but invalid
//   - ObjectNotFoundError: for when a lookup matches nothing
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is matches the kind
package errs
