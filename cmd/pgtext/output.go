package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type checkResult struct {
	Input     string `json:"input" yaml:"input"`
	Valid     bool   `json:"valid" yaml:"valid"`
	Canonical string `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Issue     string `json:"issue,omitempty" yaml:"issue,omitempty"`
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
}

func (r checkResult) String() string {
	if r.Valid {
		return r.Canonical
	}
	return fmt.Sprintf("%s: %s: %s", r.Input, r.Issue, r.Message)
}

// write encodes v to w in format. Text output writes one line per element of lines.
func write(w io.Writer, format string, v any, lines []string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}
}
