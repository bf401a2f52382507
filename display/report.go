package display

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/crillab/gopherlogic/truth"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format string

// Available output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat returns the format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected text, json or yaml)", s)
	}
}

// A Report is the machine-readable form of an analyzed formula.
type Report struct {
	Formula     string   `json:"formula" yaml:"formula"`
	Symbolic    string   `json:"symbolic" yaml:"symbolic"`
	Header      []string `json:"header" yaml:"header"`
	Rows        [][]bool `json:"rows" yaml:"rows,flow"`
	Class       string   `json:"class" yaml:"class"`
	Description string   `json:"description" yaml:"description"`
	Satisfiable bool     `json:"satisfiable" yaml:"satisfiable"`
}

// NewReport summarizes t.
func NewReport(t *truth.Table) *Report {
	class := t.Class()
	return &Report{
		Formula:     t.Source,
		Symbolic:    Symbolize(t.Source),
		Header:      t.Header,
		Rows:        t.Rows,
		Class:       class.String(),
		Description: class.Description(),
		Satisfiable: class.Satisfiable(),
	}
}

// EncodeJSON writes the report on w as indented JSON.
func (rep *Report) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("could not write JSON report: %w", err)
	}
	return nil
}

// EncodeYAML writes the report on w as a YAML document.
func (rep *Report) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("could not write YAML report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("could not write YAML report: %w", err)
	}
	return nil
}

// Write outputs t on w in the given format.
// The text format renders the table followed by the classification sentence.
func Write(w io.Writer, t *truth.Table, format Format, text Text) error {
	switch format {
	case FormatText:
		if err := text.Render(w, t); err != nil {
			return fmt.Errorf("could not write table: %w", err)
		}
		if _, err := fmt.Fprintf(w, "\nThe proposition is: %s.\n", t.Class().Description()); err != nil {
			return fmt.Errorf("could not write table: %w", err)
		}
		return nil
	case FormatJSON:
		return NewReport(t).EncodeJSON(w)
	case FormatYAML:
		return NewReport(t).EncodeYAML(w)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
