package writer

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/vcard"
	"github.com/wippyai/vcard/errors"
	"github.com/wippyai/vcard/textenc"
)

// DefaultMaxNestingDepth bounds embedded records (AGENT inside AGENT ...).
const DefaultMaxNestingDepth = 100

// CRLF is the default newline sequence.
const CRLF = "\r\n"

// Config holds writer settings. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	Newline   string        `yaml:"newline"`
	ProductID string        `yaml:"product_id"`
	Folding   FoldingConfig `yaml:"folding"`
	Version   vcard.Version `yaml:"version"`

	MaxNestingDepth int `yaml:"max_nesting_depth"`

	AddProdID          bool `yaml:"add_prodid"`
	VersionStrict      bool `yaml:"version_strict"`
	CaretEncoding      bool `yaml:"caret_encoding"`
	WarnParamStripping bool `yaml:"warn_param_stripping"`
}

// FoldingConfig is the file form of textenc.FoldingScheme.
type FoldingConfig struct {
	Indent     string `yaml:"indent"`
	LineLength int    `yaml:"line_length"`
	Disabled   bool   `yaml:"disabled"`
}

// Scheme returns the folding scheme, or textenc.NoFolding when disabled.
func (f FoldingConfig) Scheme() textenc.FoldingScheme {
	if f.Disabled || f.LineLength <= 0 {
		return textenc.NoFolding
	}
	return textenc.FoldingScheme{LineLength: f.LineLength, Indent: f.Indent}
}

func foldingConfigOf(fs textenc.FoldingScheme) FoldingConfig {
	if !fs.Enabled() {
		return FoldingConfig{Disabled: true, LineLength: textenc.DefaultLineLength, Indent: " "}
	}
	return FoldingConfig{LineLength: fs.LineLength, Indent: fs.Indent}
}

// DefaultConfig returns the defaults for version v: generator id on,
// strict version compliance on, caret encoding off, 75-character folding
// with a one-space indent, CRLF newlines.
func DefaultConfig(v vcard.Version) Config {
	return Config{
		Version:            v,
		AddProdID:          true,
		VersionStrict:      true,
		Folding:            foldingConfigOf(textenc.MimeDir),
		Newline:            CRLF,
		WarnParamStripping: true,
		MaxNestingDepth:    DefaultMaxNestingDepth,
		ProductID:          vcard.GeneratorID(),
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if !c.Version.Valid() {
		return errors.InvalidConfig("unknown vCard version %d", int(c.Version))
	}
	if c.Newline == "" {
		return errors.InvalidConfig("newline must not be empty")
	}
	if c.MaxNestingDepth < 0 {
		return errors.InvalidConfig("max_nesting_depth must not be negative")
	}
	if c.AddProdID && c.ProductID == "" {
		return errors.InvalidConfig("product_id must not be empty when add_prodid is set")
	}
	return c.Folding.Scheme().Validate()
}

// newlineAliases lets config files name the newline instead of quoting
// control characters.
var newlineAliases = map[string]string{
	"crlf": "\r\n",
	"lf":   "\n",
	"cr":   "\r",
}

// ResolveNewline maps "crlf", "lf" and "cr" to their sequences and
// returns anything else unchanged.
func ResolveNewline(s string) string {
	if nl, ok := newlineAliases[strings.ToLower(s)]; ok {
		return nl
	}
	return s
}

// LoadConfig reads a YAML config file over DefaultConfig(vcard.V30).
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Load("read config "+path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultConfig(vcard.V30) and validates
// the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig(vcard.V30)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.PhaseConfig, errors.KindInvalidConfig, err, "decode config")
	}
	cfg.Newline = ResolveNewline(cfg.Newline)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
