package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// MetaField is the field name under which a record carries its metadata map.
const MetaField = "meta"

// Counts maps a grouping key (e.g. post type) to sub-key (e.g. status) counts.
type Counts map[string]map[string]int

// Meta is a multi-valued metadata map: every key holds an ordered list of values.
type Meta map[string][]string

// Relations maps a record identifier to its taxonomy → term slugs map.
type Relations map[string]Meta

// SampleRecord is one record selected for field-level comparison.
type SampleRecord struct {
	// ID is the stable identifier. Empty when the record carried none.
	ID string

	// Fields holds every scalar field, including the identifier field.
	Fields map[string]Value

	// Meta is nil when the record has no metadata field at all.
	Meta Meta
}

// NewRecord builds a record whose identifier is read from fields[idField].
func NewRecord(idField string, fields map[string]Value, meta Meta) SampleRecord {
	rec := SampleRecord{Fields: fields, Meta: meta}
	if v, ok := fields[idField]; ok && !v.IsNull() {
		rec.ID = v.Text()
	}
	return rec
}

// Has reports whether the record carries the named field.
func (r SampleRecord) Has(key string) bool {
	if key == MetaField {
		return r.Meta != nil
	}
	_, ok := r.Fields[key]
	return ok
}

// Keys returns the record's field names in sorted order, meta last.
func (r SampleRecord) Keys() []string {
	keys := make([]string, 0, len(r.Fields)+1)
	for k := range r.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if r.Meta != nil {
		keys = append(keys, MetaField)
	}
	return keys
}

// MarshalJSON flattens fields and meta into a single JSON object.
func (r SampleRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+1)
	for k, v := range r.Fields {
		out[k] = v
	}
	if r.Meta != nil {
		out[MetaField] = r.Meta
	}
	return json.Marshal(out)
}

// DecodeRecord decodes one JSON object into a record.
func DecodeRecord(data []byte, idField string) (SampleRecord, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return SampleRecord{}, err
	}

	fields := make(map[string]Value, len(raw))
	var meta Meta
	for key, msg := range raw {
		if key == MetaField {
			if isJSONNull(msg) {
				continue
			}
			decoded, err := decodeMeta(msg)
			if err != nil {
				return SampleRecord{}, fmt.Errorf("field %s: %w", key, err)
			}
			meta = decoded
			continue
		}
		var v Value
		if err := json.Unmarshal(msg, &v); err != nil {
			return SampleRecord{}, fmt.Errorf("field %s: %w", key, err)
		}
		fields[key] = v
	}
	return NewRecord(idField, fields, meta), nil
}

// DecodeRecords decodes a JSON array of record objects, preserving order.
func DecodeRecords(data []byte, idField string) ([]SampleRecord, error) {
	if isJSONNull(data) {
		return []SampleRecord{}, nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	records := make([]SampleRecord, 0, len(raws))
	for i, msg := range raws {
		rec, err := DecodeRecord(msg, idField)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// decodeMeta accepts either a list or a single string per key.
// WordPress emits empty meta as [] rather than {}.
func decodeMeta(data []byte) (Meta, error) {
	if isEmptyArray(data) {
		return Meta{}, nil
	}
	trimmed := bytes.TrimSpace(data)
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, err
	}
	meta := make(Meta, len(raw))
	for key, msg := range raw {
		var values []string
		if err := json.Unmarshal(msg, &values); err == nil {
			meta[key] = values
			continue
		}
		var single string
		if err := json.Unmarshal(msg, &single); err != nil {
			return nil, fmt.Errorf("%w: meta %s", ErrUnsupportedValue, key)
		}
		meta[key] = []string{single}
	}
	return meta, nil
}

// isEmptyArray reports whether data is the [] PHP emits for an empty map.
func isEmptyArray(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("[]"))
}

// UnmarshalJSON accepts an object of lists, single strings per key, or [].
func (m *Meta) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	meta, err := decodeMeta(data)
	if err != nil {
		return err
	}
	*m = meta
	return nil
}

// UnmarshalJSON accepts [] for an empty count set or an empty group.
func (c *Counts) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	counts := Counts{}
	if isEmptyArray(data) {
		*c = counts
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for group, msg := range raw {
		sub := map[string]int{}
		if !isEmptyArray(msg) && !isJSONNull(msg) {
			if err := json.Unmarshal(msg, &sub); err != nil {
				return fmt.Errorf("counts %s: %w", group, err)
			}
		}
		counts[group] = sub
	}
	*c = counts
	return nil
}

// UnmarshalJSON accepts [] for a response without relations.
func (r *Relations) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	relations := Relations{}
	if isEmptyArray(data) {
		*r = relations
		return nil
	}
	var raw map[string]Meta
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for id, meta := range raw {
		if meta == nil {
			meta = Meta{}
		}
		relations[id] = meta
	}
	*r = relations
	return nil
}

func isJSONNull(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Dataset is everything one side contributes to a validation run.
type Dataset struct {
	Counts    Counts         `json:"counts"`
	Sample    []SampleRecord `json:"sample"`
	Relations Relations      `json:"relations,omitempty"`
}

// UnmarshalJSON decodes a record without resolving its identifier; see AssignIDs.
func (r *SampleRecord) UnmarshalJSON(data []byte) error {
	rec, err := DecodeRecord(data, "")
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// AssignIDs resolves every record identifier from idField in place.
// Records without that field keep an empty ID.
func AssignIDs(records []SampleRecord, idField string) {
	for i := range records {
		records[i].ID = ""
		if v, ok := records[i].Fields[idField]; ok && !v.IsNull() {
			records[i].ID = v.Text()
		}
	}
}
