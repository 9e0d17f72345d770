package writer

import (
	"errors"
	"testing"

	"github.com/wippyai/vcard"
	vcerrors "github.com/wippyai/vcard/errors"
	"github.com/wippyai/vcard/scribe"
)

func kinds(props []vcard.Property) []vcard.Kind {
	out := make([]vcard.Kind, len(props))
	for i, p := range props {
		out[i] = p.Kind()
	}
	return out
}

func equalKinds(a, b []vcard.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPrepareOrder(t *testing.T) {
	rec := vcard.New()
	rec.SetFormattedName("John Doe")
	rec.AddAddress(&vcard.Address{Street: "1 Elm", Label: "1 Elm"})
	rec.AddAddress(&vcard.Address{Street: "2 Oak"})
	rec.SetMailer("Mutt")
	rec.AddNote("note")

	tests := []struct {
		name   string
		opts   PrepareOptions
		want   []vcard.Kind
		unsupp int
	}{
		{
			name: "2.1 strict",
			opts: PrepareOptions{Version: vcard.V21, AddProdID: true, VersionStrict: true},
			want: []vcard.Kind{vcard.KindRaw, vcard.KindFormattedName, vcard.KindAddress, vcard.KindLabel, vcard.KindAddress, vcard.KindMailer, vcard.KindNote},
		},
		{
			name:   "4.0 strict",
			opts:   PrepareOptions{Version: vcard.V40, AddProdID: true, VersionStrict: true},
			want:   []vcard.Kind{vcard.KindProductID, vcard.KindFormattedName, vcard.KindAddress, vcard.KindAddress, vcard.KindNote},
			unsupp: 1,
		},
		{
			name: "4.0 lenient",
			opts: PrepareOptions{Version: vcard.V40},
			want: []vcard.Kind{vcard.KindFormattedName, vcard.KindAddress, vcard.KindAddress, vcard.KindMailer, vcard.KindNote},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Registry = scribe.NewRegistry()
			tt.opts.ProductID = "test 1.0"
			prepared, err := Prepare(rec, tt.opts)
			if err != nil {
				t.Fatalf("Prepare: %v", err)
			}
			if got := kinds(prepared.Properties); !equalKinds(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
			if len(prepared.Unsupported) != tt.unsupp {
				t.Errorf("unsupported = %d, want %d", len(prepared.Unsupported), tt.unsupp)
			}
		})
	}
}

func TestPrepareGeneratorID(t *testing.T) {
	reg := scribe.NewRegistry()

	prepared, err := Prepare(vcard.New(), PrepareOptions{Registry: reg, Version: vcard.V21, AddProdID: true, ProductID: "gen 1"})
	if err != nil {
		t.Fatal(err)
	}
	raw, ok := prepared.Properties[0].(*vcard.Raw)
	if !ok || raw.Name != "X-PRODID" || raw.Value != "gen 1" {
		t.Errorf("2.1 generator id = %#v", prepared.Properties[0])
	}

	prepared, err = Prepare(vcard.New(), PrepareOptions{Registry: reg, Version: vcard.V30})
	if err != nil {
		t.Fatal(err)
	}
	if len(prepared.Properties) != 0 {
		t.Errorf("disabled injection fabricated %v", kinds(prepared.Properties))
	}
}

func TestPrepareSynthesizedLabel(t *testing.T) {
	adr := &vcard.Address{Label: "1 Elm\nSpringfield"}
	adr.SetGroup("home")
	adr.AddType("home")
	adr.AddType("pref")
	adr.SetLanguage("en")
	rec := vcard.New()
	rec.AddAddress(adr)

	prepared, err := Prepare(rec, PrepareOptions{Registry: scribe.NewRegistry(), Version: vcard.V30})
	if err != nil {
		t.Fatal(err)
	}
	if len(prepared.Properties) != 2 {
		t.Fatalf("properties = %v", kinds(prepared.Properties))
	}
	label, ok := prepared.Properties[1].(*vcard.Label)
	if !ok {
		t.Fatalf("second property is %T", prepared.Properties[1])
	}
	if label.Value != adr.Label || label.Group() != "home" {
		t.Errorf("label = %+v", label)
	}
	if types := label.Types(); len(types) != 2 || types[0] != "home" || types[1] != "pref" {
		t.Errorf("label types = %v", types)
	}
	if label.Language() != "" {
		t.Error("only TYPE parameters are copied")
	}
	if rec.Len() != 1 {
		t.Error("Prepare modified the record")
	}
}

func TestPrepareAllOrNothing(t *testing.T) {
	reg := scribe.NewEmptyRegistry()
	reg.MustRegister(scribe.StructuredName{})

	rec := vcard.New()
	rec.SetStructuredName(&vcard.StructuredName{})
	rec.AddNote("a")
	rec.AddNote("b")
	rec.SetFormattedName("x")

	prepared, err := Prepare(rec, PrepareOptions{Registry: reg, Version: vcard.V30})
	if prepared != nil {
		t.Error("partial result returned")
	}
	if !errors.Is(err, vcerrors.ErrUnregisteredProperty) {
		t.Fatalf("err = %v", err)
	}
	var e *vcerrors.Error
	errors.As(err, &e)
	if got, _ := e.Value.([]string); len(got) != 2 || got[0] != "FN" || got[1] != "NOTE" {
		t.Errorf("kinds = %v, want [FN NOTE]", e.Value)
	}
}

func TestPrepareInjectedNeedsScribe(t *testing.T) {
	reg := scribe.NewEmptyRegistry()
	_, err := Prepare(vcard.New(), PrepareOptions{Registry: reg, Version: vcard.V21, AddProdID: true, ProductID: "x"})
	if !errors.Is(err, vcerrors.ErrUnregisteredProperty) {
		t.Fatalf("err = %v", err)
	}
}

func TestPrepareNilInputs(t *testing.T) {
	if _, err := Prepare(nil, PrepareOptions{Registry: scribe.NewRegistry()}); err == nil {
		t.Error("nil record accepted")
	}
	if _, err := Prepare(vcard.New(), PrepareOptions{}); err == nil {
		t.Error("nil registry accepted")
	}
}
