// Package vcard holds the in-memory contact model written by this library.
//
// A Record is an ordered list of properties. Each Property carries an
// optional group, a parameter set, and kind-specific fields. The writer
// packages turn records into the line-oriented vCard text format in any
// of its three revisions (2.1, 3.0, 4.0).
//
// # Architecture Overview
//
//	vcard/            Root package: Version, Parameters, Record, built-in properties
//	├── errors/       Structured error types
//	├── textenc/      Escaping, caret encoding, quoted-printable, line folding
//	├── scribe/       Per-property serializers and the scribe Registry
//	├── writer/       Property preparation, Record Writer, Stream Writer
//	└── cmd/vcardw/   Command-line front-end
//
// # Quick Start
//
//	rec := vcard.New()
//	rec.SetFormattedName("John Doe")
//	rec.AddNote("Met at the conference.\nFollow up in May.")
//
//	w := writer.New(os.Stdout, vcard.V30)
//	if err := w.Write(rec); err != nil {
//	    log.Fatal(err)
//	}
//	for _, warning := range w.Warnings() {
//	    log.Println(warning)
//	}
//
// # Custom Properties
//
// Any type implementing Property can be written once a scribe for its Kind
// is registered with the writer's scribe.Registry. Embedding Base provides
// the group and parameter plumbing:
//
//	type LuckyNumber struct {
//	    vcard.Base
//	    Number int
//	}
//
//	func (*LuckyNumber) Kind() vcard.Kind { return "X-LUCKY-NUM" }
//
// Unknown property names that need no typed fields can use Raw directly.
//
// # Thread Safety
//
// Records and properties are not synchronized. A record must not be
// mutated while a writer is serializing it.
package vcard
