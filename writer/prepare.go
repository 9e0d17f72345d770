package writer

import (
	"github.com/wippyai/vcard"
	"github.com/wippyai/vcard/errors"
	"github.com/wippyai/vcard/scribe"
)

// PrepareOptions controls property selection.
type PrepareOptions struct {
	Registry *scribe.Registry
	// ProductID is the generator id written when AddProdID is set.
	ProductID     string
	Version       vcard.Version
	AddProdID     bool
	VersionStrict bool
}

// Prepared is the outcome of Prepare.
type Prepared struct {
	// Properties are the properties to write, in output order.
	Properties []vcard.Property
	// Unsupported are the properties dropped by strict version
	// compliance, in record order.
	Unsupported []vcard.Property
}

// Prepare selects and orders the properties of rec for writing.
//
// Properties that do not support the target version are dropped when
// VersionStrict is set. Addresses with a label get a LABEL property right
// after them in 2.1 and 3.0. The generator id goes first: a fresh one
// when AddProdID is set (X-PRODID in 2.1), otherwise the record's last
// PRODID if it has any.
//
// If any property has no scribe, Prepare fails with an unregistered
// property error naming every such kind and returns no properties.
func Prepare(rec *vcard.Record, opts PrepareOptions) (*Prepared, error) {
	if rec == nil {
		return nil, errors.InvalidInput(errors.PhasePrepare, "nil record")
	}
	if opts.Registry == nil {
		return nil, errors.InvalidInput(errors.PhasePrepare, "nil scribe registry")
	}

	v := opts.Version
	out := &Prepared{}
	var (
		prodID       vcard.Property
		unregistered []string
		seen         = make(map[vcard.Kind]bool)
	)
	markUnregistered := func(p vcard.Property) {
		if !seen[p.Kind()] {
			seen[p.Kind()] = true
			unregistered = append(unregistered, string(p.Kind()))
		}
	}

	props := rec.Properties()
	out.Properties = make([]vcard.Property, 0, len(props)+1)
	for _, p := range props {
		if opts.VersionStrict && !vcard.Supports(p, v) {
			out.Unsupported = append(out.Unsupported, p)
			continue
		}

		if p.Kind() == vcard.KindProductID {
			prodID = p
			continue
		}

		if !opts.Registry.HasScribeFor(p) {
			markUnregistered(p)
			continue
		}
		out.Properties = append(out.Properties, p)

		if label := labelFor(p, v); label != nil {
			if !opts.Registry.HasScribeFor(label) {
				markUnregistered(label)
				continue
			}
			out.Properties = append(out.Properties, label)
		}
	}

	if opts.AddProdID {
		prodID = generatorProperty(opts.ProductID, v)
	}
	if prodID != nil && !opts.Registry.HasScribeFor(prodID) {
		markUnregistered(prodID)
	}

	if len(unregistered) > 0 {
		return nil, errors.UnregisteredProperty(unregistered)
	}

	if prodID != nil {
		out.Properties = append([]vcard.Property{prodID}, out.Properties...)
	}
	return out, nil
}

// labelFor returns the LABEL property derived from an address in 2.1 and
// 3.0, or nil.
func labelFor(p vcard.Property, v vcard.Version) *vcard.Label {
	if v != vcard.V21 && v != vcard.V30 {
		return nil
	}
	adr, ok := p.(*vcard.Address)
	if !ok || adr.Label == "" {
		return nil
	}

	label := vcard.NewLabel(adr.Label)
	label.SetGroup(adr.Group())
	for _, t := range adr.Types() {
		label.AddType(t)
	}
	return label
}

// generatorProperty builds the generator id for v. 2.1 has no PRODID.
func generatorProperty(id string, v vcard.Version) vcard.Property {
	if v == vcard.V21 {
		return vcard.NewRaw("X-PRODID", id)
	}
	return vcard.NewProductID(id)
}
