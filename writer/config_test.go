package writer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/vcard"
	vcerrors "github.com/wippyai/vcard/errors"
	"github.com/wippyai/vcard/textenc"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(vcard.V40)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if !cfg.AddProdID || !cfg.VersionStrict || cfg.CaretEncoding {
		t.Errorf("unexpected flags: %+v", cfg)
	}
	if cfg.Newline != "\r\n" {
		t.Errorf("Newline = %q", cfg.Newline)
	}
	if cfg.Folding.Scheme() != textenc.MimeDir {
		t.Errorf("Folding = %+v", cfg.Folding.Scheme())
	}
	if cfg.MaxNestingDepth != DefaultMaxNestingDepth {
		t.Errorf("MaxNestingDepth = %d", cfg.MaxNestingDepth)
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
version: "2.1"
add_prodid: false
caret_encoding: true
newline: lf
folding:
  line_length: 60
  indent: "  "
max_nesting_depth: 5
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Version != vcard.V21 {
		t.Errorf("Version = %v", cfg.Version)
	}
	if cfg.AddProdID || !cfg.CaretEncoding || !cfg.VersionStrict {
		t.Errorf("unexpected flags: %+v", cfg)
	}
	if cfg.Newline != "\n" {
		t.Errorf("Newline = %q", cfg.Newline)
	}
	if want := (textenc.FoldingScheme{LineLength: 60, Indent: "  "}); cfg.Folding.Scheme() != want {
		t.Errorf("Folding = %+v", cfg.Folding.Scheme())
	}
	if cfg.MaxNestingDepth != 5 {
		t.Errorf("MaxNestingDepth = %d", cfg.MaxNestingDepth)
	}
}

func TestParseConfigDisabledFolding(t *testing.T) {
	cfg, err := ParseConfig([]byte("version: 4.0\nfolding:\n  disabled: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Version != vcard.V40 {
		t.Errorf("Version = %v", cfg.Version)
	}
	if cfg.Folding.Scheme().Enabled() {
		t.Error("folding should be disabled")
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown version", `version: "5.0"`},
		{"empty newline", `newline: ""`},
		{"bad indent", "folding:\n  indent: \"-\""},
		{"negative depth", "max_nesting_depth: -1"},
		{"empty product id", `product_id: ""`},
		{"not yaml", "version: [unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.name != "unknown version" && !errors.Is(err, vcerrors.ErrInvalidConfig) {
				t.Errorf("err = %v, want invalid config", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vcard.yaml")
	if err := os.WriteFile(path, []byte("version: 3.0\nadd_prodid: false\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Version != vcard.V30 || cfg.AddProdID {
		t.Errorf("cfg = %+v", cfg)
	}

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var e *vcerrors.Error
	if !errors.As(err, &e) || e.Phase != vcerrors.PhaseLoad {
		t.Errorf("err = %v, want load error", err)
	}
}

func TestNewWithConfig(t *testing.T) {
	cfg := DefaultConfig(vcard.V30)
	cfg.Newline = "CRLF"
	w, err := NewWithConfig(nil, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if w.Config().Newline != "\r\n" {
		t.Errorf("Newline = %q", w.Config().Newline)
	}

	cfg.Version = 0
	if _, err := NewWithConfig(nil, cfg); !errors.Is(err, vcerrors.ErrInvalidConfig) {
		t.Errorf("err = %v, want invalid config", err)
	}
}

func TestParseConfigCustomNewline(t *testing.T) {
	cfg, err := ParseConfig([]byte(`newline: "<br>"`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Newline != "<br>" {
		t.Errorf("Newline = %q, want <br>", cfg.Newline)
	}
}
