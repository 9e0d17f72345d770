// Package scribe binds property kinds to the serializers that know their
// internal shape.
//
// A Scribe produces the wire name, the parameter set, and the escaped
// value of one property at a target version. The writer never inspects a
// property's fields; it only talks to scribes.
//
// # Registry
//
// NewRegistry returns a Registry with scribes for every built-in kind
// plus the catch-all for vcard.Raw. Only properties constructed as Raw
// match the catch-all: an unknown Go type without a registered scribe is
// an error, not an extension property.
//
//	reg := scribe.NewRegistry()
//	reg.MustRegister(luckyNumScribe{})
//
// Registering a scribe for a kind that already has one replaces it.
//
// # Skipping
//
// A scribe that cannot represent one particular instance returns an error
// built with errors.Skipped. The writer records a warning and moves on.
//
// # Thread Safety
//
// Registry is safe for concurrent use. Built-in scribes are stateless.
package scribe
