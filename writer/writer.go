package writer

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/vcard"
	"github.com/wippyai/vcard/errors"
	"github.com/wippyai/vcard/scribe"
	"github.com/wippyai/vcard/textenc"
)

// Writer serializes records to a sink at one target version.
//
// Each Write call serializes the whole record into memory first, so a
// fatal error leaves the sink untouched. Warnings from the last call are
// available from Warnings until the next call.
//
// Writer is NOT safe for concurrent use. The Registry may be shared.
type Writer struct {
	out      io.Writer
	registry *scribe.Registry
	logger   *zap.Logger
	warnings []Warning
	cfg      Config
}

// New creates a writer for version v with DefaultConfig and the built-in
// scribes.
func New(out io.Writer, v vcard.Version) *Writer {
	return &Writer{
		out:      out,
		cfg:      DefaultConfig(v),
		registry: scribe.NewRegistry(),
	}
}

// NewWithConfig creates a writer from a validated config.
func NewWithConfig(out io.Writer, cfg Config) (*Writer, error) {
	cfg.Newline = ResolveNewline(cfg.Newline)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Writer{
		out:      out,
		cfg:      cfg,
		registry: scribe.NewRegistry(),
	}, nil
}

// WithVersion sets the target version.
func (w *Writer) WithVersion(v vcard.Version) *Writer {
	w.cfg.Version = v
	return w
}

// WithAddProdID sets whether a generator id is written first.
func (w *Writer) WithAddProdID(add bool) *Writer {
	w.cfg.AddProdID = add
	return w
}

// WithProductID sets the generator id value.
func (w *Writer) WithProductID(id string) *Writer {
	w.cfg.ProductID = id
	return w
}

// WithVersionStrict sets whether properties unsupported by the target
// version are dropped.
func (w *Writer) WithVersionStrict(strict bool) *Writer {
	w.cfg.VersionStrict = strict
	return w
}

// WithCaretEncoding enables RFC 6868 parameter encoding (3.0 and 4.0).
func (w *Writer) WithCaretEncoding(enabled bool) *Writer {
	w.cfg.CaretEncoding = enabled
	return w
}

// WithFolding sets the folding scheme.
func (w *Writer) WithFolding(fs textenc.FoldingScheme) *Writer {
	w.cfg.Folding = foldingConfigOf(fs)
	return w
}

// WithoutFolding disables line folding.
func (w *Writer) WithoutFolding() *Writer {
	return w.WithFolding(textenc.NoFolding)
}

// WithNewline sets the line terminator. "crlf", "lf" and "cr" are
// accepted as names.
func (w *Writer) WithNewline(nl string) *Writer {
	w.cfg.Newline = ResolveNewline(nl)
	return w
}

// WithMaxNestingDepth bounds embedded records.
func (w *Writer) WithMaxNestingDepth(depth int) *Writer {
	w.cfg.MaxNestingDepth = depth
	return w
}

// WithParamStripWarnings sets whether removing characters from parameter
// values produces a warning.
func (w *Writer) WithParamStripWarnings(enabled bool) *Writer {
	w.cfg.WarnParamStripping = enabled
	return w
}

// WithRegistry replaces the scribe registry.
func (w *Writer) WithRegistry(r *scribe.Registry) *Writer {
	w.registry = r
	return w
}

// WithLogger overrides the package logger for this writer.
func (w *Writer) WithLogger(l *zap.Logger) *Writer {
	w.logger = l
	return w
}

// Config returns a copy of the active configuration.
func (w *Writer) Config() Config { return w.cfg }

// Version returns the target version.
func (w *Writer) Version() vcard.Version { return w.cfg.Version }

// Registry returns the scribe registry.
func (w *Writer) Registry() *scribe.Registry { return w.registry }

// RegisterScribe adds a scribe to the writer's registry.
func (w *Writer) RegisterScribe(s scribe.Scribe) error {
	return w.registry.Register(s)
}

// Warnings returns the warnings of the last Write call.
func (w *Writer) Warnings() []Warning {
	return append([]Warning(nil), w.warnings...)
}

func (w *Writer) log() *zap.Logger {
	if w.logger != nil {
		return w.logger
	}
	return Logger()
}

// recordOptions vary between the top-level record and nested ones.
type recordOptions struct {
	fold      textenc.FoldingScheme
	addProdID bool
}

// Write appends one serialized record to the sink.
func (w *Writer) Write(rec *vcard.Record) error {
	w.warnings = nil
	if rec == nil {
		return errors.InvalidInput(errors.PhaseWrite, "nil record")
	}
	if w.registry == nil {
		return errors.InvalidConfig("writer has no scribe registry")
	}
	if err := w.cfg.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	opts := recordOptions{fold: w.cfg.Folding.Scheme(), addProdID: w.cfg.AddProdID}
	if err := w.writeRecord(&buf, rec, opts, nil); err != nil {
		return err
	}

	n, err := w.out.Write(buf.Bytes())
	if err != nil {
		return errors.SinkIO(err)
	}

	w.log().Debug("record written",
		zap.Stringer("version", w.cfg.Version),
		zap.Int("properties", rec.Len()),
		zap.Int("warnings", len(w.warnings)),
		zap.Int("bytes", n))
	return nil
}

func (w *Writer) writeRecord(buf *bytes.Buffer, rec *vcard.Record, opts recordOptions, path []string) error {
	if len(path) > w.cfg.MaxNestingDepth {
		return errors.NestingTooDeep(path, w.cfg.MaxNestingDepth)
	}
	if len(path) > 0 {
		w.log().Debug("writing nested record", zap.Strings("path", path))
	}

	v := w.cfg.Version
	prepared, err := Prepare(rec, PrepareOptions{
		Registry:      w.registry,
		ProductID:     w.cfg.ProductID,
		Version:       v,
		AddProdID:     opts.addProdID,
		VersionStrict: w.cfg.VersionStrict,
	})
	if err != nil {
		return withPath(err, path)
	}

	for _, p := range prepared.Unsupported {
		w.warn(path, p, "not supported by vCard "+v.String())
	}
	if len(prepared.Unsupported) > 0 {
		w.log().Debug("properties dropped by version filter",
			zap.Stringer("version", v),
			zap.Int("count", len(prepared.Unsupported)))
	}
	for _, warning := range missingRequired(prepared.Properties, v) {
		warning.Path = path
		w.warnings = append(w.warnings, warning)
	}

	nl := w.cfg.Newline
	buf.WriteString("BEGIN:VCARD" + nl)
	buf.WriteString("VERSION:" + v.String() + nl)

	ctx := &scribe.Context{Record: rec, Version: v}
	for _, p := range prepared.Properties {
		if err := w.writeProperty(buf, p, ctx, opts, path); err != nil {
			return err
		}
	}

	buf.WriteString("END:VCARD" + nl)
	return nil
}

func (w *Writer) writeProperty(buf *bytes.Buffer, p vcard.Property, ctx *scribe.Context, opts recordOptions, path []string) error {
	s, err := w.registry.Resolve(p)
	if err != nil {
		return withPath(err, path)
	}
	v := ctx.Version
	name := s.Name(p, v)

	if g := p.Group(); g != "" && !textenc.ValidName(g) {
		return w.scribeFailure(errors.Skipped(propertyName(p), fmt.Sprintf("invalid group %q", g)), p, path)
	}

	params, err := s.Parameters(p, ctx)
	if err != nil {
		return w.scribeFailure(err, p, path)
	}
	if params == nil {
		params = &vcard.Parameters{}
	}

	var value string
	verbatim := false
	if e, ok := s.(scribe.Embedder); ok && e.Embedded(p) != nil {
		nestedOpts := recordOptions{fold: opts.fold}
		if !e.FoldNested(v) {
			nestedOpts.fold = textenc.NoFolding
		}
		var nested bytes.Buffer
		nestedPath := append(path[:len(path):len(path)], name)
		if err := w.writeRecord(&nested, e.Embedded(p), nestedOpts, nestedPath); err != nil {
			return err
		}
		value, verbatim = e.EmbedValue(nested.String(), v)
	} else {
		value, err = s.Value(p, ctx)
		if err != nil {
			return w.scribeFailure(err, p, path)
		}
	}

	if v == vcard.V21 && !verbatim && textenc.NeedsQuotedPrintable(value) {
		value = w.quotedPrintable(value, params, p, path)
	}

	var line strings.Builder
	if g := p.Group(); g != "" {
		line.WriteString(g)
		line.WriteByte('.')
	}
	line.WriteString(name)
	if writeParams(&line, params, v, w.cfg.CaretEncoding) && w.cfg.WarnParamStripping {
		w.warn(path, p, "characters not allowed in vCard "+v.String()+" parameter values were removed")
	}
	line.WriteByte(':')

	nl := w.cfg.Newline
	if verbatim {
		buf.WriteString(opts.fold.Fold(line.String(), nl))
		buf.WriteString(nl)
		buf.WriteString(value)
		return nil
	}
	line.WriteString(value)
	buf.WriteString(opts.fold.Fold(line.String(), nl))
	buf.WriteString(nl)
	return nil
}

// writeParams appends ";NAME=value" segments and reports whether any
// value lost characters. 2.1 writes TYPE values as bare tokens and
// repeats other multi-valued parameters; 3.0 and 4.0 join values with
// commas.
func writeParams(b *strings.Builder, params *vcard.Parameters, v vcard.Version, caret bool) bool {
	stripped := false
	format := func(value string) string {
		escaped, s := textenc.FormatParamValue(value, v, caret)
		stripped = stripped || s
		return escaped
	}

	params.Each(func(name string, values []string) {
		if v == vcard.V21 {
			bare := strings.EqualFold(name, vcard.ParamType)
			for _, value := range values {
				b.WriteByte(';')
				if bare {
					b.WriteString(strings.ToUpper(format(value)))
					continue
				}
				b.WriteString(name)
				b.WriteByte('=')
				b.WriteString(format(value))
			}
			return
		}

		b.WriteByte(';')
		b.WriteString(name)
		b.WriteByte('=')
		for i, value := range values {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(format(value))
		}
	})
	return stripped
}

// quotedPrintable encodes a 2.1 value and sets ENCODING, plus CHARSET
// for non-ASCII text. A value the named charset cannot hold is written as
// UTF-8 with a warning.
func (w *Writer) quotedPrintable(value string, params *vcard.Parameters, p vcard.Property, path []string) string {
	params.Set(vcard.ParamEncoding, textenc.QuotedPrintableEncoding)
	charset := params.Get(vcard.ParamCharset)
	if charset == "" && !textenc.IsASCII(value) {
		charset = "UTF-8"
		params.Set(vcard.ParamCharset, charset)
	}

	encoded, err := textenc.EncodeQuotedPrintable(value, charset)
	if err != nil {
		w.warn(path, p, "value written as UTF-8: "+err.Error())
		params.Set(vcard.ParamCharset, "UTF-8")
		encoded, _ = textenc.EncodeQuotedPrintable(value, "")
	}
	return encoded
}

// scribeFailure turns a skip into a warning and anything else into a
// fatal error.
func (w *Writer) scribeFailure(err error, p vcard.Property, path []string) error {
	var e *errors.Error
	stderrors.As(err, &e)
	if stderrors.Is(err, errors.ErrSkipped) {
		msg := "skipped"
		if e != nil && e.Detail != "" {
			msg += ": " + e.Detail
		}
		w.warn(path, p, msg)
		return nil
	}
	if e != nil {
		return withPath(e, path)
	}
	return errors.New(errors.PhaseEncode, errors.KindInvalidInput).
		Path(path...).
		Property(propertyName(p)).
		Cause(err).
		Detail("scribe failed").
		Build()
}

func (w *Writer) warn(path []string, p vcard.Property, msg string) {
	w.warnings = append(w.warnings, Warning{Property: p, Message: msg, Path: path})
}

// withPath records the nesting path on library errors that lack one.
func withPath(err error, path []string) error {
	var e *errors.Error
	if len(path) > 0 && stderrors.As(err, &e) && len(e.Path) == 0 {
		e.Path = path
	}
	return err
}

// Marshal serializes rec with cfg and returns the text and warnings.
func Marshal(rec *vcard.Record, cfg Config) (string, []Warning, error) {
	var buf bytes.Buffer
	w, err := NewWithConfig(&buf, cfg)
	if err != nil {
		return "", nil, err
	}
	if err := w.Write(rec); err != nil {
		return "", w.Warnings(), err
	}
	return buf.String(), w.Warnings(), nil
}
