package textenc

import "testing"

func TestEncodeQuotedPrintable(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		charset string
		want    string
	}{
		{"crlf", "One\r\nTwo", "", "One=0D=0ATwo"},
		{"bare lf normalized", "One\nTwo", "", "One=0D=0ATwo"},
		{"equals sign", "a=b", "", "a=3Db"},
		{"utf-8 default", "soirée", "", "soir=C3=A9e"},
		{"utf-8 explicit", "soirée", "UTF-8", "soir=C3=A9e"},
		{"latin-1", "soirée", "ISO-8859-1", "soir=E9e"},
		{"trailing space", "end ", "", "end=20"},
		{"inner whitespace kept", "a b\tc", "", "a b\tc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeQuotedPrintable(tt.value, tt.charset)
			if err != nil {
				t.Fatalf("EncodeQuotedPrintable: %v", err)
			}
			if got != tt.want {
				t.Errorf("EncodeQuotedPrintable(%q, %q) = %q, want %q", tt.value, tt.charset, got, tt.want)
			}
		})
	}
}

func TestEncodeQuotedPrintableUnknownCharset(t *testing.T) {
	if _, err := EncodeQuotedPrintable("x", "no-such-charset"); err == nil {
		t.Fatal("expected error for unknown charset")
	}
}

func TestNeedsQuotedPrintable(t *testing.T) {
	if !NeedsQuotedPrintable("a\nb") || !NeedsQuotedPrintable("a\rb") {
		t.Error("newlines need quoted-printable")
	}
	if NeedsQuotedPrintable("soirée") {
		t.Error("non-ASCII alone does not need quoted-printable")
	}
	if IsASCII("soirée") || !IsASCII("plain") {
		t.Error("IsASCII mismatch")
	}
}
