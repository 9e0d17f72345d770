package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhasePrepare  Phase = "prepare"  // property selection
	PhaseWrite    Phase = "write"    // record emission
	PhaseEncode   Phase = "encode"   // scribe value/parameter production
	PhaseRegister Phase = "register" // scribe registration
	PhaseConfig   Phase = "config"   // writer configuration
	PhaseLoad     Phase = "load"     // input document loading
)

// Kind categorizes the error
type Kind string

const (
	KindUnregisteredProperty Kind = "unregistered_property"
	KindSinkIO               Kind = "sink_io"
	KindNestingTooDeep       Kind = "nesting_too_deep"
	KindInvalidConfig        Kind = "invalid_config"
	KindInvalidInput         Kind = "invalid_input"
	KindTypeMismatch         Kind = "type_mismatch"
	KindSkipped              Kind = "skipped"
	KindUnsupported          Kind = "unsupported"
)

// Sentinels for errors.Is. Matching is by Phase and Kind only.
var (
	ErrUnregisteredProperty = &Error{Phase: PhasePrepare, Kind: KindUnregisteredProperty}
	ErrSinkIO               = &Error{Phase: PhaseWrite, Kind: KindSinkIO}
	ErrNestingTooDeep       = &Error{Phase: PhaseWrite, Kind: KindNestingTooDeep}
	ErrSkipped              = &Error{Phase: PhaseEncode, Kind: KindSkipped}
	ErrInvalidConfig        = &Error{Phase: PhaseConfig, Kind: KindInvalidConfig}
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Property string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, " > "))
	}

	if e.Property != "" {
		b.WriteString(": property ")
		b.WriteString(e.Property)
	}

	if e.Detail != "" {
		if e.Property != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the nesting path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Property sets the property name
func (b *Builder) Property(name string) *Builder {
	b.err.Property = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnregisteredProperty reports property kinds that have no scribe.
// Value holds the sorted, deduplicated kind list.
func UnregisteredProperty(kinds []string) *Error {
	sorted := append([]string(nil), kinds...)
	sort.Strings(sorted)
	return &Error{
		Phase:  PhasePrepare,
		Kind:   KindUnregisteredProperty,
		Detail: "no scribes registered for: " + strings.Join(sorted, ", "),
		Value:  sorted,
	}
}

// SinkIO wraps a failure of the output sink
func SinkIO(cause error) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindSinkIO,
		Detail: "write to sink",
		Cause:  cause,
	}
}

// NestingTooDeep reports nested records beyond the configured limit
func NestingTooDeep(path []string, limit int) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindNestingTooDeep,
		Path:   path,
		Detail: fmt.Sprintf("nested records exceed maximum depth %d", limit),
		Value:  limit,
	}
}

// Skipped signals that a scribe declines to write one property instance
func Skipped(property, reason string) *Error {
	return &Error{
		Phase:    PhaseEncode,
		Kind:     KindSkipped,
		Property: property,
		Detail:   reason,
	}
}

// TypeMismatch reports a scribe handed a property it does not serialize
func TypeMismatch(property string, got any) *Error {
	return &Error{
		Phase:    PhaseEncode,
		Kind:     KindTypeMismatch,
		Property: property,
		Detail:   fmt.Sprintf("unexpected property type %T", got),
		Value:    got,
	}
}

// InvalidConfig creates a configuration error
func InvalidConfig(detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidConfig,
		Detail: detail,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Load creates an input loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidInput,
		Detail: detail,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// IsSkip reports whether err is a scribe skip signal
func IsSkip(err error) bool {
	return stderrors.Is(err, ErrSkipped)
}
