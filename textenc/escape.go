package textenc

import (
	"strings"

	"github.com/wippyai/vcard"
)

// valueRules is the value-escaping grammar of one version.
type valueRules struct {
	// escapeNewline writes newlines as the two characters \n. When false
	// newlines are left raw and the caller must quoted-printable encode.
	escapeNewline bool
	// escapeComponentComma escapes commas inside structured components.
	// Commas in plain text are always escaped.
	escapeComponentComma bool
}

var valueRulesByVersion = map[vcard.Version]valueRules{
	vcard.V21: {escapeNewline: false, escapeComponentComma: false},
	vcard.V30: {escapeNewline: true, escapeComponentComma: true},
	vcard.V40: {escapeNewline: true, escapeComponentComma: true},
}

func rulesFor(v vcard.Version) valueRules {
	if r, ok := valueRulesByVersion[v]; ok {
		return r
	}
	return valueRulesByVersion[vcard.V40]
}

// EscapeValue escapes one property value, or one component of a
// structured value when structured is true. The caller joins components
// with unescaped separators.
func EscapeValue(raw string, v vcard.Version, structured bool) string {
	rules := rulesFor(v)
	if !strings.ContainsAny(raw, "\\;,\r\n") {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw) + 8)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case ';':
			b.WriteString(`\;`)
		case ',':
			if structured && !rules.escapeComponentComma {
				b.WriteByte(c)
			} else {
				b.WriteString(`\,`)
			}
		case '\r', '\n':
			if !rules.escapeNewline {
				b.WriteByte(c)
				continue
			}
			if c == '\r' && i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
			b.WriteString(`\n`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// EscapeNewlines replaces every newline sequence with \n for 3.0 and 4.0
// and leaves the text untouched for 2.1. Used for values that are
// otherwise written verbatim.
func EscapeNewlines(raw string, v vcard.Version) string {
	if !rulesFor(v).escapeNewline || !strings.ContainsAny(raw, "\r\n") {
		return raw
	}
	return replaceNewlines(raw, `\n`)
}

// JoinComponents escapes each component and joins them with sep.
func JoinComponents(components []string, sep string, v vcard.Version) string {
	escaped := make([]string, len(components))
	for i, c := range components {
		escaped[i] = EscapeValue(c, v, true)
	}
	return strings.Join(escaped, sep)
}

// HasNewline reports whether s contains CR or LF.
func HasNewline(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}

// replaceNewlines substitutes repl for each CRLF, CR, or LF.
func replaceNewlines(s, repl string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			b.WriteString(repl)
		case '\n':
			b.WriteString(repl)
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// ValidName reports whether s is usable as a property name or group
// label: one or more ASCII letters, digits and hyphens.
func ValidName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-':
		default:
			return false
		}
	}
	return true
}
