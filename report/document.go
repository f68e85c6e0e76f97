package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Document is the machine-readable form of a Report.
type Document struct {
	Sources      []string    `yaml:"sources"            json:"sources"`
	Destinations []string    `yaml:"destinations"       json:"destinations"`
	Allocation   [][]float64 `yaml:"allocation"         json:"allocation"`
	TotalCost    string      `yaml:"total_cost"         json:"total_cost"`
	TotalSupply  string      `yaml:"total_supply"       json:"total_supply"`
	TotalDemand  string      `yaml:"total_demand"       json:"total_demand"`
	Imbalance    string      `yaml:"imbalance"          json:"imbalance"`
	Balanced     bool        `yaml:"balanced"           json:"balanced"`
	BasicCells   int         `yaml:"basic_cells"        json:"basic_cells"`
	Degenerate   bool        `yaml:"degenerate"         json:"degenerate"`
	Warning      string      `yaml:"warning,omitempty"  json:"warning,omitempty"`
	Steps        []StepDoc   `yaml:"steps"              json:"steps"`
}

// StepDoc is one visited cell of the north-west corner path.
type StepDoc struct {
	Source      string  `yaml:"source"      json:"source"`
	Destination string  `yaml:"destination" json:"destination"`
	Amount      float64 `yaml:"amount"      json:"amount"`
	Move        string  `yaml:"move"        json:"move"`
}

// Document builds the machine-readable form of r.
func (r Report) Document() Document {
	p := r.Problem
	doc := Document{
		Sources:      make([]string, p.Rows()),
		Destinations: make([]string, p.Cols()),
		Allocation:   r.Result.AllocationRows(),
		TotalCost:    r.Result.ExactCost.String(),
		TotalSupply:  r.TotalSupply.String(),
		TotalDemand:  r.TotalDemand.String(),
		Imbalance:    r.Imbalance.String(),
		Balanced:     r.Balanced(),
		BasicCells:   r.Result.BasicCells(),
		Degenerate:   r.Result.IsDegenerate(),
		Warning:      r.Warning(),
		Steps:        make([]StepDoc, len(r.Result.Steps)),
	}
	for i := range doc.Sources {
		doc.Sources[i] = p.SourceLabel(i)
	}
	for j := range doc.Destinations {
		doc.Destinations[j] = p.DestinationLabel(j)
	}
	for k, s := range r.Result.Steps {
		doc.Steps[k] = StepDoc{
			Source:      p.SourceLabel(s.Row),
			Destination: p.DestinationLabel(s.Col),
			Amount:      s.Amount,
			Move:        s.Move.String(),
		}
	}

	return doc
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: yaml: %w", err)
	}

	return enc.Close()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: json: %w", err)
	}

	return nil
}
