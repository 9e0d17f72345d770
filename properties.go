package vcard

var (
	versionsUpTo30 = []Version{V21, V30}
	versionsFrom30 = []Version{V30, V40}
	versionsOnly40 = []Version{V40}
)

// StructuredName is the N property.
type StructuredName struct {
	Base
	Family     string
	Given      string
	Additional []string
	Prefixes   []string
	Suffixes   []string
}

func (*StructuredName) Kind() Kind { return KindStructuredName }

// FormattedName is the FN property.
type FormattedName struct {
	Base
	Value string
}

func NewFormattedName(value string) *FormattedName {
	return &FormattedName{Value: value}
}

func (*FormattedName) Kind() Kind { return KindFormattedName }

// Address is the ADR property. Address types (home, work, dom, parcel, ...)
// are TYPE parameters. A non-empty Label is written as a synthesized LABEL
// property in 2.1/3.0 and as a LABEL parameter in 4.0.
type Address struct {
	Base
	POBox      string
	Extended   string
	Street     string
	Locality   string
	Region     string
	PostalCode string
	Country    string
	Label      string
}

func (*Address) Kind() Kind { return KindAddress }

// Label is the LABEL property (2.1 and 3.0 only).
type Label struct {
	Base
	Value string
}

func NewLabel(value string) *Label {
	return &Label{Value: value}
}

func (*Label) Kind() Kind                   { return KindLabel }
func (*Label) SupportedVersions() []Version { return versionsUpTo30 }

// Note is the NOTE property.
type Note struct {
	Base
	Value string
}

func NewNote(value string) *Note {
	return &Note{Value: value}
}

func (*Note) Kind() Kind { return KindNote }

// ProductID is the PRODID property. 2.1 has no PRODID; the writer uses
// an X-PRODID Raw property there instead.
type ProductID struct {
	Base
	Value string
}

func NewProductID(value string) *ProductID {
	return &ProductID{Value: value}
}

func (*ProductID) Kind() Kind                   { return KindProductID }
func (*ProductID) SupportedVersions() []Version { return versionsFrom30 }

// Entity kinds understood by the KIND property.
const (
	EntityIndividual   = "individual"
	EntityGroup        = "group"
	EntityOrganization = "org"
	EntityLocation     = "location"
)

// EntityKind is the KIND property (4.0 only).
type EntityKind struct {
	Base
	Value string
}

func NewEntityKind(value string) *EntityKind {
	return &EntityKind{Value: value}
}

func (*EntityKind) Kind() Kind                   { return KindEntityKind }
func (*EntityKind) SupportedVersions() []Version { return versionsOnly40 }

// IsGroup reports whether the record describes a group.
func (k *EntityKind) IsGroup() bool { return k != nil && k.Value == EntityGroup }

// Member is the MEMBER property (4.0 only). It is only meaningful when
// the record's KIND is group.
type Member struct {
	Base
	URI string
}

func NewMember(uri string) *Member {
	return &Member{URI: uri}
}

func (*Member) Kind() Kind                   { return KindMember }
func (*Member) SupportedVersions() []Version { return versionsOnly40 }

// Agent is the AGENT property (2.1 and 3.0). It either embeds a complete
// Record or points at one by URL. Record takes precedence when both are set.
type Agent struct {
	Base
	Record *Record
	URL    string
}

func NewAgent(rec *Record) *Agent {
	return &Agent{Record: rec}
}

func (*Agent) Kind() Kind                   { return KindAgent }
func (*Agent) SupportedVersions() []Version { return versionsUpTo30 }

// Mailer is the MAILER property (2.1 and 3.0 only).
type Mailer struct {
	Base
	Value string
}

func NewMailer(value string) *Mailer {
	return &Mailer{Value: value}
}

func (*Mailer) Kind() Kind                   { return KindMailer }
func (*Mailer) SupportedVersions() []Version { return versionsUpTo30 }

// Raw is a property written by name with its value passed through
// unchanged. Only Raw instances match the catch-all raw scribe.
type Raw struct {
	Base
	Name  string
	Value string
}

func NewRaw(name, value string) *Raw {
	return &Raw{Name: name, Value: value}
}

func (*Raw) Kind() Kind { return KindRaw }
