package textenc

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/wippyai/vcard/errors"
)

// DefaultLineLength is the historical MIME directory line length.
const DefaultLineLength = 75

// FoldingScheme configures line folding. A LineLength of zero or less
// disables folding. LineLength counts characters including the indent
// of continuation lines.
type FoldingScheme struct {
	LineLength int    `yaml:"line_length"`
	Indent     string `yaml:"indent"`
}

// MimeDir is the default scheme: 75 characters, one-space indent.
var MimeDir = FoldingScheme{LineLength: DefaultLineLength, Indent: " "}

// NoFolding disables folding.
var NoFolding = FoldingScheme{}

// Enabled reports whether lines are folded.
func (fs FoldingScheme) Enabled() bool {
	return fs.LineLength > 0
}

// Validate checks that an enabled scheme can make progress and that the
// indent is whitespace, as unfolding parsers require.
func (fs FoldingScheme) Validate() error {
	if !fs.Enabled() {
		return nil
	}
	if fs.Indent == "" {
		return errors.InvalidConfig("folding indent must not be empty")
	}
	if strings.Trim(fs.Indent, " \t") != "" {
		return errors.InvalidConfig("folding indent %q must contain only spaces or tabs", fs.Indent)
	}
	if uniseg.GraphemeClusterCount(fs.Indent) >= fs.LineLength {
		return errors.InvalidConfig("folding indent %q must be shorter than line length %d", fs.Indent, fs.LineLength)
	}
	return nil
}

// Fold folds line with this scheme.
func (fs FoldingScheme) Fold(line, newline string) string {
	if !fs.Enabled() {
		return line
	}
	return FoldLine(line, fs.LineLength, fs.Indent, newline)
}

// FoldLine splits line into chunks of at most maxWidth characters, joined
// by newline+prefix. Continuation chunks count the prefix toward
// maxWidth. Grapheme clusters and the escape sequences \x, ^x and =XX
// are never split. A maxWidth of zero or less returns line unchanged.
func FoldLine(line string, maxWidth int, prefix, newline string) string {
	if maxWidth <= 0 {
		return line
	}
	units := foldUnits(line)
	total := 0
	for _, u := range units {
		total += u.width
	}
	if total <= maxWidth {
		return line
	}

	continuation := maxWidth - uniseg.GraphemeClusterCount(prefix)
	if continuation < 1 {
		continuation = 1
	}

	var b strings.Builder
	b.Grow(len(line) + (total/continuation+1)*(len(newline)+len(prefix)))
	limit := maxWidth
	used := 0
	for _, u := range units {
		if used > 0 && used+u.width > limit {
			b.WriteString(newline)
			b.WriteString(prefix)
			limit = continuation
			used = 0
		}
		b.WriteString(u.text)
		used += u.width
	}
	return b.String()
}

type foldUnit struct {
	text  string
	width int
}

// foldUnits splits line into unbreakable pieces.
func foldUnits(line string) []foldUnit {
	var clusters []string
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	units := make([]foldUnit, 0, len(clusters))
	for i := 0; i < len(clusters); i++ {
		c := clusters[i]
		switch {
		case (c == `\` || c == "^") && i+1 < len(clusters):
			units = append(units, foldUnit{text: c + clusters[i+1], width: 2})
			i++
		case c == "=" && i+2 < len(clusters) && isHexDigit(clusters[i+1]) && isHexDigit(clusters[i+2]):
			units = append(units, foldUnit{text: c + clusters[i+1] + clusters[i+2], width: 3})
			i += 2
		default:
			units = append(units, foldUnit{text: c, width: 1})
		}
	}
	return units
}

func isHexDigit(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}
