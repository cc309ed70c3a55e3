package validation

import (
	"fmt"
	"sort"
	"strings"
)

// FieldComparator decides whether one field of a source record matches the
// destination record.
type FieldComparator struct {
	// IDField is excluded from comparison and copied into the row instead.
	IDField string
}

// Equal compares key between src and dst. A nil destination never matches.
// The meta field uses MetaEqual; every other field requires strict equality
// and a field missing on the destination is a mismatch.
func (c FieldComparator) Equal(key string, src, dst *SampleRecord) bool {
	if dst == nil || src == nil {
		return false
	}
	if key == MetaField {
		if src.Meta == nil {
			return dst.Meta == nil
		}
		if dst.Meta == nil {
			return len(src.Meta) == 0
		}
		return MetaEqual(src.Meta, dst.Meta)
	}
	sv, ok := src.Fields[key]
	if !ok {
		return !dst.Has(key)
	}
	dv, ok := dst.Fields[key]
	if !ok {
		return false
	}
	return sv.Equal(dv)
}

// MetaEqual treats src as ground truth: every key in src must exist in dst
// with an identical value list. Keys only present in dst are ignored.
func MetaEqual(src, dst Meta) bool {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		dv, ok := dst[k]
		if !ok {
			return false
		}
		sv := src[k]
		if len(sv) != len(dv) {
			return false
		}
		for i := range sv {
			if sv[i] != dv[i] {
				return false
			}
		}
	}
	return true
}

// SampleRow is the comparison outcome for one source sample record.
type SampleRow struct {
	// ID is the source identifier, copied verbatim.
	ID string `json:"id"`

	// Label is a human readable name for the record (title, name, login).
	Label string `json:"label,omitempty"`

	// Noun names the content type in rendered messages ("post", "term").
	Noun string `json:"-"`

	// Absent is set when the destination has no record with this ID.
	Absent bool `json:"absent"`

	// Fields maps each compared field to its pass/fail flag.
	Fields map[string]bool `json:"fields"`
}

// Passed implements Verdict.
func (r SampleRow) Passed() bool {
	if r.Absent {
		return false
	}
	for _, ok := range r.Fields {
		if !ok {
			return false
		}
	}
	return true
}

// Failed returns the failing field names in sorted order.
func (r SampleRow) Failed() []string {
	var failed []string
	for k, ok := range r.Fields {
		if !ok {
			failed = append(failed, k)
		}
	}
	sort.Strings(failed)
	return failed
}

// Describe implements Verdict.
func (r SampleRow) Describe() string {
	subject := r.subject()
	switch {
	case r.Absent:
		return fmt.Sprintf("%s is missing on the destination site.", subject)
	case r.Passed():
		return fmt.Sprintf("%s matches 1:1 with the destination site.", subject)
	default:
		return fmt.Sprintf("%s differs between source and destination: %s.", subject, strings.Join(r.Failed(), ", "))
	}
}

func (r SampleRow) subject() string {
	noun := r.Noun
	if noun == "" {
		noun = "record"
	}
	noun = strings.ToUpper(noun[:1]) + noun[1:]
	if r.Label != "" {
		return fmt.Sprintf("%s %s %q", noun, r.ID, r.Label)
	}
	return fmt.Sprintf("%s %s", noun, r.ID)
}

// CompareSamples builds one row per source record, matched to the
// destination strictly by identifier. Destination records that were not
// requested are never consulted.
func (c FieldComparator) CompareSamples(source, destination []SampleRecord) []SampleRow {
	index := make(map[string]*SampleRecord, len(destination))
	for i := range destination {
		if destination[i].ID != "" {
			index[destination[i].ID] = &destination[i]
		}
	}

	rows := make([]SampleRow, 0, len(source))
	for i := range source {
		src := &source[i]
		dst := index[src.ID]

		row := SampleRow{
			ID:     src.ID,
			Absent: dst == nil,
			Fields: make(map[string]bool, len(src.Fields)+1),
		}
		for _, key := range src.Keys() {
			if key == c.IDField {
				continue
			}
			row.Fields[key] = c.Equal(key, src, dst)
		}
		rows = append(rows, row)
	}
	return rows
}

// CountDiff retains both raw counts for one grouping/sub-key pair.
type CountDiff struct {
	Group       string `json:"group"`
	Key         string `json:"key"`
	Source      int    `json:"source"`
	Destination int    `json:"destination"`
}

// Diff is the signed difference source minus destination.
func (d CountDiff) Diff() int { return d.Source - d.Destination }

// Passed implements Verdict.
func (d CountDiff) Passed() bool { return d.Diff() == 0 }

// Describe implements Verdict.
func (d CountDiff) Describe() string {
	if d.Passed() {
		return fmt.Sprintf("%s %s count is %d vs %d.", d.Group, d.Key, d.Source, d.Destination)
	}
	return fmt.Sprintf("%s %s count is %d vs %d (diff %d).", d.Group, d.Key, d.Source, d.Destination, d.Diff())
}

// CountComparison maps grouping → sub-key → diff.
type CountComparison map[string]map[string]CountDiff

// CompareCounts walks every grouping/sub-key present in source. A sub-key
// missing on the destination counts as zero. Destination-only keys are not
// visited.
func CompareCounts(source, destination Counts) CountComparison {
	out := make(CountComparison, len(source))
	for group, subs := range source {
		row := make(map[string]CountDiff, len(subs))
		for key, n := range subs {
			dst := 0
			if d, ok := destination[group]; ok {
				dst = d[key]
			}
			row[key] = CountDiff{Group: group, Key: key, Source: n, Destination: dst}
		}
		out[group] = row
	}
	return out
}
