// Package textenc converts raw strings into vCard wire text.
//
// Every function here is pure and version-aware; nothing in the package
// knows about properties. The three revisions disagree on almost every
// rule, so each concern is a separate function driven by an immutable
// per-version rule table:
//
//	Concern              2.1                 3.0                 4.0
//	─────────────────────────────────────────────────────────────────────────
//	value newline        quoted-printable    \n                  \n
//	value , ; \          \, \; \\            \, \; \\            \, \; \\
//	param , : = [ ]      stripped            kept, quoted        kept, quoted
//	param newline        space               space               \n
//	param "              kept                '                   '
//	caret encoding       ignored             ^^ ^n ^'            ^^ ^n ^'
//
// FoldLine splits long lines for the legacy 75-character convention. It
// never splits a multi-byte character, a grapheme cluster, or an escape
// sequence, so removing every newline+indent pair restores the input.
package textenc
