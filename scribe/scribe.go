package scribe

import (
	"github.com/wippyai/vcard"
)

// Context describes the record a property is written from.
type Context struct {
	// Record is the record that owns the property being written.
	Record  *vcard.Record
	Version vcard.Version
}

// Scribe serializes one property kind. Scribes are stateless and may be
// shared by concurrently running writers.
//
// Parameters returns a set the caller may modify. Value returns the value
// already escaped for ctx.Version; in 2.1 it may still contain raw
// newlines, which the writer turns into quoted-printable.
//
// Either method may return an error built with errors.Skipped to drop
// this one property instance with a warning.
type Scribe interface {
	Kind() vcard.Kind
	Name(p vcard.Property, v vcard.Version) string
	Parameters(p vcard.Property, ctx *Context) (*vcard.Parameters, error)
	Value(p vcard.Property, ctx *Context) (string, error)
}

// Embedder is implemented by scribes whose property can embed a complete
// record. The writer serializes the embedded record itself and hands the
// text to EmbedValue.
type Embedder interface {
	// Embedded returns the record to serialize, or nil when the property
	// carries an ordinary value.
	Embedded(p vcard.Property) *vcard.Record

	// EmbedValue turns serialized record text into the property value.
	// When verbatim is true the writer emits the text as-is on the lines
	// following the property header.
	EmbedValue(nested string, v vcard.Version) (value string, verbatim bool)

	// FoldNested reports whether the embedded record is folded on its own
	// before embedding.
	FoldNested(v vcard.Version) bool
}

// cloneParams copies the property's parameters.
func cloneParams(p vcard.Property) *vcard.Parameters {
	params := p.Parameters().Clone()
	return &params
}
