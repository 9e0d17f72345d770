// Package writer serializes vcard.Record values as vCard 2.1, 3.0 or 4.0
// text.
//
// # Pipeline
//
//	Writer.Write(rec)
//	  ├── Prepare          version filter, LABEL synthesis, PRODID placement
//	  ├── scribe.Registry  per-property name, parameters, value
//	  ├── textenc          parameter escaping, quoted-printable, folding
//	  └── sink             one io.Writer call per record
//
// Prepare fails when a property has no scribe; nothing is written for
// that record. Properties the target version does not support, scribe
// skips, missing required properties and altered parameter values are
// reported as warnings instead.
//
// # Nested Records
//
// AGENT may embed a whole record. The embedded record is written with the
// same settings but without a generator id. In 2.1 its lines follow the
// AGENT line verbatim; in 3.0 and 4.0 the whole text, unfolded, becomes
// one escaped value. Embedding deeper than Config.MaxNestingDepth is a
// fatal error, which also stops self-referencing records.
//
// # Configuration
//
//	w := writer.New(os.Stdout, vcard.V30).
//	    WithAddProdID(false).
//	    WithFolding(textenc.FoldingScheme{LineLength: 50, Indent: "  "})
//
// Config can also be loaded from YAML with LoadConfig.
//
// # Streams
//
// StreamWriter writes many records to one sink through a buffer and keeps
// the warnings of each record.
package writer
