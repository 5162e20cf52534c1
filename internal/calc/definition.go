package calc

import (
	"fmt"
	"sort"
)

// ComputeFunc runs coercion output through a formula and projects the result.
// A returned error is a *ValidationError; every other input yields a Result.
type ComputeFunc func(Values) (Result, error)

// Definition is one calculator of the catalog.
type Definition struct {
	Slug        string      `json:"slug"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Fields      []FieldSpec `json:"fields"`
	Compute     ComputeFunc `json:"-"`
}

// Field returns the spec for name.
func (d *Definition) Field(name string) (FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// DefaultFields returns fresh input fields holding the spec defaults.
func (d *Definition) DefaultFields() []InputField {
	fields := make([]InputField, len(d.Fields))
	for i, f := range d.Fields {
		fields[i] = InputField{Name: f.Name, RawValue: f.Default, Unit: f.Unit}
	}
	return fields
}

// Run snapshots fields and computes the result.
func (d *Definition) Run(fields []InputField) (Result, error) {
	return d.Compute(Snapshot(d.Fields, fields))
}

// RunMap is Run for a name→raw map.
func (d *Definition) RunMap(raw map[string]string) (Result, error) {
	return d.Compute(SnapshotMap(d.Fields, raw))
}

// Registry indexes definitions by slug.
type Registry struct {
	defs map[string]*Definition
}

// NewRegistry builds a registry, rejecting empty and duplicate slugs.
func NewRegistry(defs ...*Definition) (*Registry, error) {
	r := &Registry{defs: make(map[string]*Definition, len(defs))}
	for _, d := range defs {
		if d.Slug == "" {
			return nil, fmt.Errorf("definition %q has no slug", d.Title)
		}
		if d.Compute == nil {
			return nil, fmt.Errorf("definition %q has no compute func", d.Slug)
		}
		if _, dup := r.defs[d.Slug]; dup {
			return nil, fmt.Errorf("duplicate calculator slug %q", d.Slug)
		}
		r.defs[d.Slug] = d
	}
	return r, nil
}

// Get looks a definition up by slug.
func (r *Registry) Get(slug string) (*Definition, bool) {
	d, ok := r.defs[slug]
	return d, ok
}

// All returns every definition sorted by slug.
func (r *Registry) All() []*Definition {
	out := make([]*Definition, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}
