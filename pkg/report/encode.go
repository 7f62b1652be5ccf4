package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/endorse/pkg/audit"
)

const yamlIndent = 2

// document is the machine-readable form of a Summary. Touched and Ignored are
// only present in exclusive reports, NoInteraction only in additive ones.
type document struct {
	Repository    string         `json:"repository"               yaml:"repository"`
	Title         string         `json:"title"                    yaml:"title"`
	Targets       []string       `json:"targets"                  yaml:"targets"`
	Match         string         `json:"match"                    yaml:"match"`
	Since         string         `json:"since,omitempty"          yaml:"since,omitempty"`
	Mode          string         `json:"mode"                     yaml:"mode"`
	Scanned       int            `json:"scanned"                  yaml:"scanned"`
	Authored      int            `json:"authored"                 yaml:"authored"`
	Touched       *int           `json:"touched,omitempty"        yaml:"touched,omitempty"`
	Ignored       *int           `json:"ignored,omitempty"        yaml:"ignored,omitempty"`
	NoInteraction *int           `json:"no_interaction,omitempty" yaml:"no_interaction,omitempty"`
	Trailers      map[string]int `json:"trailers"                 yaml:"trailers"`
	Categories    []Entry        `json:"categories"               yaml:"categories"`
}

func (s Summary) document() document {
	doc := document{
		Repository: s.header.Repository,
		Title:      s.Title(),
		Targets:    s.header.Targets,
		Match:      s.header.Match.String(),
		Since:      s.header.Since,
		Mode:       s.mode.String(),
		Scanned:    s.totals.Scanned,
		Authored:   s.totals.Authored,
		Trailers:   make(map[string]int, audit.NumKinds),
		Categories: s.Table(),
	}

	for _, k := range audit.AllKinds() {
		doc.Trailers[k.String()] = s.totals.Trailer(k)
	}

	if s.mode == audit.ReportExclusive {
		touched, ignored := s.totals.Touched, s.totals.Ignored
		doc.Touched, doc.Ignored = &touched, &ignored
	} else {
		residual := s.totals.NoInteraction()
		doc.NoInteraction = &residual
	}

	return doc
}

// WriteJSON writes the report as indented JSON.
func (s Summary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	err := enc.Encode(s.document())
	if err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}

	return nil
}

// WriteYAML writes the report as YAML.
func (s Summary) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)

	err := enc.Encode(s.document())
	if err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("flush yaml report: %w", err)
	}

	return nil
}
