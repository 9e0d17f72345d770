package writer

import (
	"strings"

	"github.com/wippyai/vcard"
)

// Warning is a non-fatal problem found while writing a record.
type Warning struct {
	// Property is the offending property, or nil for record-level
	// warnings such as a missing required property.
	Property vcard.Property
	Message  string
	// Path names the embedding properties when the warning comes from a
	// nested record, outermost first.
	Path []string
}

// String renders "AGENT > NOTE: message".
func (w Warning) String() string {
	var b strings.Builder
	parts := append([]string(nil), w.Path...)
	if w.Property != nil {
		parts = append(parts, propertyName(w.Property))
	}
	if len(parts) > 0 {
		b.WriteString(strings.Join(parts, " > "))
		b.WriteString(": ")
	}
	b.WriteString(w.Message)
	return b.String()
}

// propertyName returns the wire name used in diagnostics.
func propertyName(p vcard.Property) string {
	if r, ok := p.(*vcard.Raw); ok && r.Name != "" {
		return strings.ToUpper(r.Name)
	}
	return string(p.Kind())
}
