package validation

import (
	"fmt"
	"strings"
)

const (
	// SectionCounts holds aggregate count verdicts.
	SectionCounts = "counts"
	// SectionSamples holds per-record verdicts keyed by source identifier.
	SectionSamples = "samples"

	passMarker = "✅"
	failMarker = "❌"
)

// Verdict is a single comparison outcome that can be rendered as a row.
type Verdict interface {
	Passed() bool
	Describe() string
}

// Report maps section → row key → rendered message.
type Report map[string]map[string]string

// Assemble renders every verdict into a message prefixed with a pass or
// fail marker. It does not modify its input and holds no state.
func Assemble(sections map[string]map[string]Verdict) Report {
	report := make(Report, len(sections))
	for section, rows := range sections {
		rendered := make(map[string]string, len(rows))
		for key, v := range rows {
			rendered[key] = render(v)
		}
		report[section] = rendered
	}
	return report
}

func render(v Verdict) string {
	marker := failMarker
	if v.Passed() {
		marker = passMarker
	}
	return fmt.Sprintf("%s %s", marker, v.Describe())
}

// Comparison is the pure comparison section of a validation result.
type Comparison struct {
	Counts  CountComparison `json:"counts"`
	Samples []SampleRow     `json:"samples"`
}

// Sections adapts the comparison for Assemble. Count rows are keyed by
// CountKey; sample rows by source identifier.
func (c Comparison) Sections() map[string]map[string]Verdict {
	counts := make(map[string]Verdict)
	for group, subs := range c.Counts {
		for key, diff := range subs {
			counts[CountKey(group, key)] = diff
		}
	}
	samples := make(map[string]Verdict, len(c.Samples))
	for _, row := range c.Samples {
		samples[row.ID] = row
	}
	return map[string]map[string]Verdict{
		SectionCounts:  counts,
		SectionSamples: samples,
	}
}

var countKeyEscaper = strings.NewReplacer(`\`, `\\`, `.`, `\.`)

// CountKey joins a count group and sub-key as "group.key". Dots and
// backslashes inside either part are escaped so distinct pairs never
// share a row key.
func CountKey(group, key string) string {
	return countKeyEscaper.Replace(group) + "." + countKeyEscaper.Replace(key)
}

// Summary tallies passing and failing rows.
type Summary struct {
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// OK reports whether nothing failed.
func (s Summary) OK() bool { return s.Failed == 0 }

// Summarize counts passing and failing verdicts of c.
func (c Comparison) Summarize() Summary {
	var s Summary
	for _, rows := range c.Sections() {
		for _, v := range rows {
			if v.Passed() {
				s.Passed++
			} else {
				s.Failed++
			}
		}
	}
	return s
}
