package vcard

import (
	"reflect"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr bool
	}{
		{"2.1", V21, false},
		{"3.0", V30, false},
		{" 4.0 ", V40, false},
		{"4", V40, false},
		{"5.0", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVersion(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVersion(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVersionOrderAndText(t *testing.T) {
	if !(V21 < V30 && V30 < V40) {
		t.Fatal("versions must be totally ordered")
	}
	for _, v := range Versions {
		text, err := v.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", v, err)
		}
		var back Version
		if err := back.UnmarshalText(text); err != nil || back != v {
			t.Errorf("text round trip of %v gave %v, %v", v, back, err)
		}
	}
	if _, err := Version(9).MarshalText(); err == nil {
		t.Error("MarshalText should reject unknown versions")
	}
}

func TestParametersCaseInsensitive(t *testing.T) {
	var p Parameters
	p.Add("Language", "FR")
	p.Add("LANGUAGE", "es")
	p.Add("X-DOORMAN", "true")

	if got := p.Values("language"); !reflect.DeepEqual(got, []string{"FR", "es"}) {
		t.Errorf("Values = %v", got)
	}
	if got := p.Names(); !reflect.DeepEqual(got, []string{"Language", "X-DOORMAN"}) {
		t.Errorf("Names = %v, want first spelling kept in insertion order", got)
	}

	p.Set("x-doorman", "false")
	if p.Get("X-DOORMAN") != "false" || p.Names()[1] != "X-DOORMAN" {
		t.Errorf("Set should replace in place, got %v", p.Names())
	}

	p.Set("LANGUAGE")
	if p.Has("language") || p.Len() != 1 {
		t.Errorf("Set with no values should remove, got %v", p.Names())
	}
}

func TestParametersCloneIsDeep(t *testing.T) {
	p := NewParameters("TYPE", "home", "TYPE", "work")
	clone := p.Clone()
	clone.Add("TYPE", "dom")

	if len(p.Values("TYPE")) != 2 {
		t.Errorf("original changed: %v", p.Values("TYPE"))
	}
	if len(clone.Values("TYPE")) != 3 {
		t.Errorf("clone = %v", clone.Values("TYPE"))
	}

	var nilParams *Parameters
	if nilParams.Len() != 0 || nilParams.Has("TYPE") || nilParams.Get("TYPE") != "" {
		t.Error("nil parameters should read as empty")
	}
}

func TestRecordSetAndRemove(t *testing.T) {
	rec := New()
	rec.AddNote("one")
	rec.SetFormattedName("A")
	rec.AddNote("two")
	rec.SetFormattedName("B")

	if rec.Len() != 3 {
		t.Fatalf("Len = %d, want 3", rec.Len())
	}
	fn := rec.First(KindFormattedName).(*FormattedName)
	if fn.Value != "B" {
		t.Errorf("FN = %q, want B", fn.Value)
	}
	if notes := rec.OfKind(KindNote); len(notes) != 2 {
		t.Errorf("notes = %d, want 2", len(notes))
	}
	if n := rec.Remove(KindNote); n != 2 || rec.Len() != 1 {
		t.Errorf("Remove = %d, Len = %d", n, rec.Len())
	}

	rec.Add(nil)
	if rec.Len() != 1 {
		t.Error("Add(nil) should be ignored")
	}
}

func TestSupportedVersions(t *testing.T) {
	tests := []struct {
		prop Property
		v    Version
		want bool
	}{
		{NewNote("x"), V21, true},
		{NewLabel("x"), V40, false},
		{NewLabel("x"), V30, true},
		{NewProductID("x"), V21, false},
		{NewMember("urn:x"), V30, false},
		{NewEntityKind(EntityGroup), V40, true},
		{NewAgent(New()), V40, false},
		{NewMailer("x"), V40, false},
		{NewRaw("X-FOO", "x"), V21, true},
	}
	for _, tt := range tests {
		if got := Supports(tt.prop, tt.v); got != tt.want {
			t.Errorf("Supports(%s, %v) = %v, want %v", tt.prop.Kind(), tt.v, got, tt.want)
		}
	}
}

func TestBaseTypesAndGroup(t *testing.T) {
	adr := &Address{}
	adr.AddType("work")
	adr.AddType("dom")
	adr.SetGroup("item1")
	adr.SetLanguage("en")

	if got := adr.Types(); !reflect.DeepEqual(got, []string{"work", "dom"}) {
		t.Errorf("Types = %v", got)
	}
	if adr.Group() != "item1" || adr.Language() != "en" {
		t.Errorf("group=%q language=%q", adr.Group(), adr.Language())
	}
	adr.SetLanguage("")
	if adr.Parameters().Has(ParamLanguage) {
		t.Error("SetLanguage(\"\") should remove the parameter")
	}
}

func TestEntityKindIsGroup(t *testing.T) {
	rec := New()
	if rec.EntityKind().IsGroup() {
		t.Error("missing KIND is not a group")
	}
	rec.SetEntityKind(EntityGroup)
	if !rec.EntityKind().IsGroup() {
		t.Error("KIND=group should be a group")
	}
}
