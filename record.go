package vcard

// Record is one vCard: an ordered list of properties. Insertion order is
// preserved so output is deterministic.
type Record struct {
	properties []Property
}

// New returns an empty record.
func New() *Record {
	return &Record{}
}

// Add appends p. A nil property is ignored.
func (r *Record) Add(p Property) {
	if p == nil {
		return
	}
	r.properties = append(r.properties, p)
}

// Set removes every property of p's kind and appends p.
func (r *Record) Set(p Property) {
	if p == nil {
		return
	}
	r.Remove(p.Kind())
	r.properties = append(r.properties, p)
}

// Remove deletes all properties of the given kind and returns how many
// were removed.
func (r *Record) Remove(kind Kind) int {
	kept := r.properties[:0]
	removed := 0
	for _, p := range r.properties {
		if p.Kind() == kind {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(r.properties); i++ {
		r.properties[i] = nil
	}
	r.properties = kept
	return removed
}

// Properties returns the properties in insertion order. The slice is a
// copy; the properties are shared.
func (r *Record) Properties() []Property {
	return append([]Property(nil), r.properties...)
}

// Len returns the number of properties.
func (r *Record) Len() int {
	return len(r.properties)
}

// First returns the first property of kind, or nil.
func (r *Record) First(kind Kind) Property {
	for _, p := range r.properties {
		if p.Kind() == kind {
			return p
		}
	}
	return nil
}

// Has reports whether a property of kind is present.
func (r *Record) Has(kind Kind) bool {
	return r.First(kind) != nil
}

// OfKind returns every property of kind in insertion order.
func (r *Record) OfKind(kind Kind) []Property {
	var out []Property
	for _, p := range r.properties {
		if p.Kind() == kind {
			out = append(out, p)
		}
	}
	return out
}

// SetFormattedName replaces FN.
func (r *Record) SetFormattedName(value string) *FormattedName {
	fn := NewFormattedName(value)
	r.Set(fn)
	return fn
}

// SetStructuredName replaces N.
func (r *Record) SetStructuredName(n *StructuredName) {
	r.Set(n)
}

// AddAddress appends an ADR.
func (r *Record) AddAddress(adr *Address) {
	r.Add(adr)
}

// AddNote appends a NOTE.
func (r *Record) AddNote(value string) *Note {
	note := NewNote(value)
	r.Add(note)
	return note
}

// SetProductID replaces PRODID.
func (r *Record) SetProductID(value string) *ProductID {
	prodID := NewProductID(value)
	r.Set(prodID)
	return prodID
}

// SetEntityKind replaces KIND.
func (r *Record) SetEntityKind(value string) *EntityKind {
	kind := NewEntityKind(value)
	r.Set(kind)
	return kind
}

// EntityKind returns the KIND property, or nil.
func (r *Record) EntityKind() *EntityKind {
	if k, ok := r.First(KindEntityKind).(*EntityKind); ok {
		return k
	}
	return nil
}

// AddMember appends a MEMBER.
func (r *Record) AddMember(uri string) *Member {
	member := NewMember(uri)
	r.Add(member)
	return member
}

// SetAgent replaces AGENT with one embedding rec.
func (r *Record) SetAgent(rec *Record) *Agent {
	agent := NewAgent(rec)
	r.Set(agent)
	return agent
}

// SetMailer replaces MAILER.
func (r *Record) SetMailer(value string) *Mailer {
	mailer := NewMailer(value)
	r.Set(mailer)
	return mailer
}
