package textenc

import (
	"strings"

	"github.com/wippyai/vcard"
)

// fileSeparator (ASCII FS) is never valid in a parameter value.
const fileSeparator = '\x1c'

// paramRules is the parameter-value grammar of one version, without
// caret encoding.
type paramRules struct {
	// stripped characters are removed outright.
	stripped string
	// escapeSemicolon writes ; as \; (2.1 has no quoting).
	escapeSemicolon bool
	// escapeBackslash doubles \.
	escapeBackslash bool
	// newline replaces each newline sequence.
	newline string
	// tab replaces a horizontal tab; "" keeps it.
	tab string
	// doubleQuote replaces "; "" keeps it.
	doubleQuote string
	// quotable values are wrapped in double quotes when they contain , ; or :
	quotable bool
}

var paramRulesByVersion = map[vcard.Version]paramRules{
	vcard.V21: {
		stripped:        string(fileSeparator) + ",:=[]",
		escapeSemicolon: true,
		escapeBackslash: true,
		newline:         " ",
		tab:             " ",
	},
	vcard.V30: {
		stripped:        string(fileSeparator),
		escapeBackslash: true,
		newline:         " ",
		doubleQuote:     "'",
		quotable:        true,
	},
	vcard.V40: {
		stripped:        string(fileSeparator),
		escapeBackslash: true,
		newline:         `\n`,
		doubleQuote:     "'",
		quotable:        true,
	},
}

func paramRulesFor(v vcard.Version) paramRules {
	if r, ok := paramRulesByVersion[v]; ok {
		return r
	}
	return paramRulesByVersion[vcard.V40]
}

// EscapeParamValue escapes one parameter value. Caret encoding applies
// to 3.0 and 4.0 only; 2.1 silently ignores the request. The result is
// not quoted; see FormatParamValue.
func EscapeParamValue(raw string, v vcard.Version, caret bool) string {
	escaped, _ := EscapeParamValueChecked(raw, v, caret)
	return escaped
}

// EscapeParamValueChecked is EscapeParamValue that also reports whether
// any character was removed because the version cannot represent it.
func EscapeParamValueChecked(raw string, v vcard.Version, caret bool) (string, bool) {
	if caret && v != vcard.V21 {
		return caretEncode(raw)
	}
	rules := paramRulesFor(v)

	var b strings.Builder
	b.Grow(len(raw))
	stripped := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if strings.IndexByte(rules.stripped, c) >= 0 {
			stripped = true
			continue
		}
		switch {
		case c == '\\' && rules.escapeBackslash:
			b.WriteString(`\\`)
		case c == ';' && rules.escapeSemicolon:
			b.WriteString(`\;`)
		case c == '\r' || c == '\n':
			if c == '\r' && i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
			b.WriteString(rules.newline)
		case c == '\t' && rules.tab != "":
			b.WriteString(rules.tab)
		case c == '"' && rules.doubleQuote != "":
			b.WriteString(rules.doubleQuote)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), stripped
}

// caretEncode applies RFC 6868 caret encoding.
func caretEncode(raw string) (string, bool) {
	var b strings.Builder
	b.Grow(len(raw))
	stripped := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch c {
		case fileSeparator:
			stripped = true
		case '^':
			b.WriteString("^^")
		case '"':
			b.WriteString("^'")
		case '\r', '\n':
			if c == '\r' && i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
			b.WriteString("^n")
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), stripped
}

// NeedsQuotes reports whether an escaped 3.0/4.0 parameter value must be
// wrapped in double quotes.
func NeedsQuotes(escaped string) bool {
	return strings.ContainsAny(escaped, ",;:")
}

// FormatParamValue escapes raw and, for 3.0 and 4.0, wraps it in double
// quotes when needed. The second result reports stripped characters.
func FormatParamValue(raw string, v vcard.Version, caret bool) (string, bool) {
	escaped, stripped := EscapeParamValueChecked(raw, v, caret)
	if paramRulesFor(v).quotable && NeedsQuotes(escaped) {
		return `"` + escaped + `"`, stripped
	}
	return escaped, stripped
}
