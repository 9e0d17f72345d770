package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/vcard"
	"github.com/wippyai/vcard/textenc"
	"github.com/wippyai/vcard/writer"
)

var (
	warnHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD166"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD166"))
)

type options struct {
	configPath  string
	output      string
	version     string
	indent      string
	newline     string
	fold        int
	noProdID    bool
	lenient     bool
	caret       bool
	verbose     bool
	interactive bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("vcardw", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.configPath, "config", "c", "", "YAML writer config file")
	flagSet.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	flagSet.StringVarP(&opts.version, "target", "t", "3.0", "vCard version to write (2.1, 3.0, 4.0)")
	flagSet.IntVar(&opts.fold, "fold", textenc.DefaultLineLength, "fold lines at this many characters, 0 disables")
	flagSet.StringVar(&opts.indent, "indent", " ", "continuation line indent")
	flagSet.StringVar(&opts.newline, "newline", "crlf", "line terminator: crlf, lf or cr")
	flagSet.BoolVar(&opts.noProdID, "no-prodid", false, "do not write a PRODID property")
	flagSet.BoolVar(&opts.lenient, "lenient", false, "keep properties the target version does not support")
	flagSet.BoolVar(&opts.caret, "caret", false, "caret-encode parameter values (3.0, 4.0)")
	flagSet.BoolVar(&opts.verbose, "verbose", false, "debug logging to stderr")
	flagSet.BoolVarP(&opts.interactive, "interactive", "i", false, "interactive preview")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	files := flagSet.Args()
	if len(files) == 0 {
		fmt.Fprintln(stderr, "Usage: vcardw [flags] <records.yaml|records.jsonc>...")
		fmt.Fprintln(stderr, "       vcardw -i <records.yaml>  (interactive preview)")
		flagSet.PrintDefaults()
		return fmt.Errorf("no input files")
	}

	if opts.verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
		writer.SetLogger(logger)
	}

	cfg, err := buildConfig(flagSet, opts)
	if err != nil {
		return err
	}

	var records []*vcard.Record
	var loadErr error
	for _, path := range files {
		recs, err := loadRecords(path)
		if err != nil {
			loadErr = multierr.Append(loadErr, err)
			continue
		}
		records = append(records, recs...)
	}
	if loadErr != nil {
		return loadErr
	}

	if opts.interactive {
		return runInteractive(records, cfg)
	}
	return writeRecords(records, cfg, opts.output, stdout, stderr)
}

// buildConfig starts from the config file, or the defaults, and applies
// the flags that were set explicitly.
func buildConfig(flagSet *pflag.FlagSet, opts options) (writer.Config, error) {
	cfg := writer.DefaultConfig(vcard.V30)
	if opts.configPath != "" {
		loaded, err := writer.LoadConfig(opts.configPath)
		if err != nil {
			return writer.Config{}, err
		}
		cfg = loaded
	}

	if opts.configPath == "" || flagSet.Changed("target") {
		v, err := vcard.ParseVersion(opts.version)
		if err != nil {
			return writer.Config{}, err
		}
		cfg.Version = v
	}
	if flagSet.Changed("fold") {
		cfg.Folding.LineLength = opts.fold
		cfg.Folding.Disabled = opts.fold <= 0
	}
	if flagSet.Changed("indent") {
		cfg.Folding.Indent = opts.indent
	}
	if opts.configPath == "" || flagSet.Changed("newline") {
		cfg.Newline = writer.ResolveNewline(opts.newline)
	}
	if flagSet.Changed("no-prodid") {
		cfg.AddProdID = !opts.noProdID
	}
	if flagSet.Changed("lenient") {
		cfg.VersionStrict = !opts.lenient
	}
	if flagSet.Changed("caret") {
		cfg.CaretEncoding = opts.caret
	}

	if err := cfg.Validate(); err != nil {
		return writer.Config{}, err
	}
	return cfg, nil
}

// writeRecords streams every record to the output and prints warnings.
// A record that fails does not stop the others.
func writeRecords(records []*vcard.Record, cfg writer.Config, output string, stdout, stderr io.Writer) error {
	var sink io.Writer = struct{ io.Writer }{stdout}
	var file *os.File
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		sink, file = f, f
	}

	stream, err := writer.NewStreamWriter(sink, cfg)
	if err != nil {
		if file != nil {
			err = multierr.Append(err, file.Close())
		}
		return err
	}
	writeErr := stream.WriteAll(records...)
	writeErr = multierr.Append(writeErr, stream.Close())

	printWarnings(stderr, stream.Warnings())
	return writeErr
}

func printWarnings(w io.Writer, warnings []writer.RecordWarnings) {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	render := func(style lipgloss.Style, s string) string {
		if styled {
			return style.Render(s)
		}
		return s
	}

	for _, rw := range warnings {
		fmt.Fprintln(w, render(warnHeaderStyle, fmt.Sprintf("record %d: %d warning(s)", rw.Index+1, len(rw.Warnings))))
		for _, warning := range rw.Warnings {
			fmt.Fprintln(w, render(warnStyle, "  "+warning.String()))
		}
	}
}
