// Package errors provides structured error types for the vCard writer.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes context: nesting path, property name, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
//		Path("AGENT", "AGENT").
//		Property("NOTE").
//		Detail("cannot write %T", v).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnregisteredProperty([]string{"X-LUCKY-NUM"})
//	err := errors.SinkIO(cause)
//
// All errors implement the standard error interface and support errors.Is/As.
// The package-level sentinels (ErrUnregisteredProperty, ErrSinkIO, ...) match
// any *Error with the same Phase and Kind.
package errors
