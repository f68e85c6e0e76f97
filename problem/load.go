package problem

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Load reads a problem document from path. The format (yaml, yml, json, toml)
// is taken from the extension. The decoded problem is validated before it is
// returned.
func Load(path string) (Problem, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Problem{}, fmt.Errorf("problem: read %s: %w", path, err)
	}

	var p Problem
	if err := v.Unmarshal(&p); err != nil {
		return Problem{}, fmt.Errorf("problem: decode %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Problem{}, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Encode writes p as a "yaml" or "json" document.
// YAML output keeps every numeric row on one line.
func Encode(w io.Writer, p Problem, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case "yaml", "yml", "":
		var doc yaml.Node
		if err := doc.Encode(p); err != nil {
			return fmt.Errorf("problem: encode: %w", err)
		}
		flowLeaves(&doc)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&doc); err != nil {
			return fmt.Errorf("problem: encode: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("problem: unsupported format %q", format)
	}
}

// flowLeaves switches sequences of scalars to flow style: [1, 2, 3].
func flowLeaves(n *yaml.Node) {
	if n.Kind == yaml.SequenceNode && len(n.Content) > 0 {
		leaf := true
		for _, c := range n.Content {
			if c.Kind != yaml.ScalarNode {
				leaf = false
				break
			}
		}
		if leaf {
			n.Style = yaml.FlowStyle
			return
		}
	}
	for _, c := range n.Content {
		flowLeaves(c)
	}
}

// ParseVector reads a comma-separated list of numbers, e.g. "10, 15, 20".
func ParseVector(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("problem: empty vector")
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("problem: entry %d %q: %w", i+1, strings.TrimSpace(part), err)
		}
		out[i] = v
	}

	return out, nil
}

// ParseGrid reads rows separated by ';' of comma-separated numbers,
// e.g. "4,6;3,2". Rows are not required to have equal length here;
// Validate reports ragged grids.
func ParseGrid(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("problem: empty grid")
	}
	rows := strings.Split(s, ";")
	out := make([][]float64, len(rows))
	for i, row := range rows {
		vals, err := ParseVector(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out[i] = vals
	}

	return out, nil
}
