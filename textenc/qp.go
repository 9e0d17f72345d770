package textenc

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

const upperHex = "0123456789ABCDEF"

// QuotedPrintableEncoding is the ENCODING parameter value written on 2.1
// properties whose value is quoted-printable encoded.
const QuotedPrintableEncoding = "quoted-printable"

// NeedsQuotedPrintable reports whether a 2.1 value cannot be written as
// plain text.
func NeedsQuotedPrintable(value string) bool {
	return HasNewline(value)
}

// IsASCII reports whether s contains only 7-bit characters.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// EncodeQuotedPrintable encodes value as quoted-printable on one line.
// Newline sequences become =0D=0A. When charset is non-empty the text is
// first transcoded into it; "" and UTF-8 leave the bytes as they are.
//
// Unlike mime/quotedprintable no soft line breaks are inserted: line
// length is the folding layer's concern.
func EncodeQuotedPrintable(value, charset string) (string, error) {
	value = replaceNewlines(value, "\r\n")

	data := []byte(value)
	if charset != "" && !isUTF8(charset) {
		enc, err := lookupCharset(charset)
		if err != nil {
			return "", err
		}
		data, err = enc.NewEncoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("encode value as %s: %w", charset, err)
		}
	}

	var b strings.Builder
	b.Grow(len(data) * 2)
	for i, c := range data {
		switch {
		case c == ' ' || c == '\t':
			if i == len(data)-1 {
				writeHexByte(&b, c)
			} else {
				b.WriteByte(c)
			}
		case c == '=' || c < ' ' || c > '~':
			writeHexByte(&b, c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

func writeHexByte(b *strings.Builder, c byte) {
	b.WriteByte('=')
	b.WriteByte(upperHex[c>>4])
	b.WriteByte(upperHex[c&0x0f])
}

func isUTF8(charset string) bool {
	return strings.EqualFold(charset, "utf-8") || strings.EqualFold(charset, "utf8")
}

func lookupCharset(charset string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", charset, err)
	}
	return enc, nil
}
