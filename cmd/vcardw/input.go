package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/vcard"
	"github.com/wippyai/vcard/errors"
)

// document is the on-disk form of a list of records.
type document struct {
	Records []recordDoc `yaml:"records" json:"records"`
}

type nameDoc struct {
	Family     string   `yaml:"family" json:"family"`
	Given      string   `yaml:"given" json:"given"`
	Additional []string `yaml:"additional" json:"additional"`
	Prefixes   []string `yaml:"prefixes" json:"prefixes"`
	Suffixes   []string `yaml:"suffixes" json:"suffixes"`
}

type addressDoc struct {
	Group      string   `yaml:"group" json:"group"`
	POBox      string   `yaml:"po_box" json:"po_box"`
	Extended   string   `yaml:"extended" json:"extended"`
	Street     string   `yaml:"street" json:"street"`
	Locality   string   `yaml:"locality" json:"locality"`
	Region     string   `yaml:"region" json:"region"`
	PostalCode string   `yaml:"postal_code" json:"postal_code"`
	Country    string   `yaml:"country" json:"country"`
	Label      string   `yaml:"label" json:"label"`
	Types      []string `yaml:"types" json:"types"`
}

type labelDoc struct {
	Value string   `yaml:"value" json:"value"`
	Types []string `yaml:"types" json:"types"`
}

type extendedDoc struct {
	Params map[string][]string `yaml:"params" json:"params"`
	Group  string              `yaml:"group" json:"group"`
	Name   string              `yaml:"name" json:"name"`
	Value  string              `yaml:"value" json:"value"`
}

type recordDoc struct {
	Name      *nameDoc      `yaml:"n" json:"n"`
	Agent     *recordDoc    `yaml:"agent" json:"agent"`
	FN        string        `yaml:"fn" json:"fn"`
	Kind      string        `yaml:"kind" json:"kind"`
	Mailer    string        `yaml:"mailer" json:"mailer"`
	ProdID    string        `yaml:"prodid" json:"prodid"`
	AgentURL  string        `yaml:"agent_url" json:"agent_url"`
	Notes     []string      `yaml:"notes" json:"notes"`
	Members   []string      `yaml:"members" json:"members"`
	Addresses []addressDoc  `yaml:"addresses" json:"addresses"`
	Labels    []labelDoc    `yaml:"labels" json:"labels"`
	Extended  []extendedDoc `yaml:"extended" json:"extended"`
}

// record builds a vcard.Record. Properties are added in a fixed order.
func (d *recordDoc) record() *vcard.Record {
	rec := vcard.New()
	if d.ProdID != "" {
		rec.SetProductID(d.ProdID)
	}
	if d.Kind != "" {
		rec.SetEntityKind(d.Kind)
	}
	if d.Name != nil {
		rec.SetStructuredName(&vcard.StructuredName{
			Family:     d.Name.Family,
			Given:      d.Name.Given,
			Additional: d.Name.Additional,
			Prefixes:   d.Name.Prefixes,
			Suffixes:   d.Name.Suffixes,
		})
	}
	if d.FN != "" {
		rec.SetFormattedName(d.FN)
	}
	for _, a := range d.Addresses {
		adr := &vcard.Address{
			POBox:      a.POBox,
			Extended:   a.Extended,
			Street:     a.Street,
			Locality:   a.Locality,
			Region:     a.Region,
			PostalCode: a.PostalCode,
			Country:    a.Country,
			Label:      a.Label,
		}
		adr.SetGroup(a.Group)
		for _, t := range a.Types {
			adr.AddType(t)
		}
		rec.AddAddress(adr)
	}
	for _, l := range d.Labels {
		label := vcard.NewLabel(l.Value)
		for _, t := range l.Types {
			label.AddType(t)
		}
		rec.Add(label)
	}
	for _, note := range d.Notes {
		rec.AddNote(note)
	}
	for _, m := range d.Members {
		rec.AddMember(m)
	}
	if d.Mailer != "" {
		rec.SetMailer(d.Mailer)
	}
	switch {
	case d.Agent != nil:
		rec.SetAgent(d.Agent.record())
	case d.AgentURL != "":
		rec.Set(&vcard.Agent{URL: d.AgentURL})
	}
	for _, x := range d.Extended {
		raw := vcard.NewRaw(x.Name, x.Value)
		raw.SetGroup(x.Group)
		names := make([]string, 0, len(x.Params))
		for name := range x.Params {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			raw.Parameters().Set(name, x.Params[name]...)
		}
		rec.Add(raw)
	}
	return rec
}

// loadRecords reads a YAML (.yaml, .yml) or JSON-with-comments (.json,
// .jsonc) document.
func loadRecords(path string) ([]*vcard.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("read "+path, err)
	}
	return parseRecords(data, filepath.Ext(path))
}

func parseRecords(data []byte, ext string) ([]*vcard.Record, error) {
	var doc document
	switch strings.ToLower(ext) {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return nil, errors.Load("decode JSON document", err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Load("decode YAML document", err)
		}
	default:
		return nil, errors.Unsupported(errors.PhaseLoad, "input format "+ext)
	}

	records := make([]*vcard.Record, len(doc.Records))
	for i := range doc.Records {
		records[i] = doc.Records[i].record()
	}
	return records, nil
}
