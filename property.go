package vcard

// Kind identifies a property type. Scribes are registered per Kind.
// Built-in kinds use the property name; extension types may use any
// stable identifier.
type Kind string

const (
	KindStructuredName Kind = "N"
	KindFormattedName  Kind = "FN"
	KindAddress        Kind = "ADR"
	KindLabel          Kind = "LABEL"
	KindNote           Kind = "NOTE"
	KindProductID      Kind = "PRODID"
	KindEntityKind     Kind = "KIND"
	KindMember         Kind = "MEMBER"
	KindAgent          Kind = "AGENT"
	KindMailer         Kind = "MAILER"

	// KindRaw is shared by every Raw property regardless of its name.
	KindRaw Kind = "raw"
)

// Property is one field of a Record.
type Property interface {
	Kind() Kind
	Group() string
	Parameters() *Parameters
	// SupportedVersions is static metadata; it does not depend on the
	// property's current field values.
	SupportedVersions() []Version
}

// Supports reports whether p declares support for v.
func Supports(p Property, v Version) bool {
	return containsVersion(p.SupportedVersions(), v)
}

// Base carries the group and parameters shared by all properties.
// Embed it in custom property types.
type Base struct {
	group  string
	params Parameters
}

// Group returns the group label, or "" when ungrouped.
func (b *Base) Group() string { return b.group }

// SetGroup sets the group label.
func (b *Base) SetGroup(group string) { b.group = group }

// Parameters returns the live parameter set.
func (b *Base) Parameters() *Parameters { return &b.params }

// SupportedVersions defaults to every version.
func (b *Base) SupportedVersions() []Version { return Versions }

// Types returns the TYPE parameter values.
func (b *Base) Types() []string { return b.params.Values(ParamType) }

// AddType appends a TYPE parameter value.
func (b *Base) AddType(t string) { b.params.Add(ParamType, t) }

// Language returns the LANGUAGE parameter.
func (b *Base) Language() string { return b.params.Get(ParamLanguage) }

// SetLanguage sets the LANGUAGE parameter; "" removes it.
func (b *Base) SetLanguage(lang string) {
	if lang == "" {
		b.params.Remove(ParamLanguage)
		return
	}
	b.params.Set(ParamLanguage, lang)
}
