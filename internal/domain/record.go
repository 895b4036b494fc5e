package domain

// Record is a single decoded event: a set of named fields with values.
// Values are the usual decoded JSON kinds (string, float64, bool, nil,
// map[string]any, []any). Keys preserves the top-level field order of the
// source document so rule evaluation is order-stable.
type Record struct {
	Keys   []string       `json:"keys"`
	Fields map[string]any `json:"fields"`
}

// NewRecord builds a Record from ordered keys and their values.
func NewRecord(keys []string, fields map[string]any) Record {
	return Record{Keys: keys, Fields: fields}
}

// Get returns the value for a field and whether the field is present.
func (r Record) Get(name string) (any, bool) {
	v, ok := r.Fields[name]
	return v, ok
}

// Has reports whether the field is present in the record.
func (r Record) Has(name string) bool {
	_, ok := r.Fields[name]
	return ok
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.Fields)
}
