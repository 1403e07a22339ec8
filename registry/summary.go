package registry

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// Summary aggregates one run.
type Summary struct {
	Total   int      `json:"total" yaml:"total"`
	Passed  int      `json:"passed" yaml:"passed"`
	Failed  int      `json:"failed" yaml:"failed"`
	Results []Result `json:"results" yaml:"results"`
}

// NewSummary counts passes and failures over results, keeping their order.
func NewSummary(results []Result) Summary {
	s := Summary{Total: len(results), Results: results}
	for _, r := range results {
		if r.Passed() {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// OK reports whether every result passed.
func (s Summary) OK() bool { return s.Failed == 0 }

// JSON renders the summary as indented JSON.
func (s Summary) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// YAML renders the summary as YAML.
func (s Summary) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}

// Table renders one row per result followed by a totals line.
func (s Summary) Table() string {
	header := lipgloss.NewStyle().Bold(true)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "STATUS", "FAILURES").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, r := range s.Results {
		status := "PASS"
		if !r.Passed() {
			status = "FAIL"
		}
		t.Row(r.Name, status, strings.Join(r.Failures, "; "))
	}

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")
	fmt.Fprintf(&b, "total %d, passed %d, failed %d", s.Total, s.Passed, s.Failed)
	return b.String()
}
