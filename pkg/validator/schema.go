package validator

import (
	"errors"
	"fmt"
	"slices"
)

type schemaField struct {
	name        string
	descriptors []Descriptor
}

// Schema maps the fields of one record type to their descriptors.
// It is read-only once built and safe for concurrent use.
type Schema struct {
	name   string
	fields []schemaField
	index  map[string]int
}

// SchemaBuilder collects field declarations for a Schema.
type SchemaBuilder struct {
	name   string
	fields []schemaField
	index  map[string]int
}

// NewSchema starts a schema declaration for the record type called name.
func NewSchema(name string) *SchemaBuilder {
	return &SchemaBuilder{name: name, index: make(map[string]int)}
}

// Field declares name with its descriptors. Declaring a field again replaces
// its descriptors and keeps its original position. A field declared without
// descriptors is part of the schema but never checked.
func (b *SchemaBuilder) Field(name string, descriptors ...Descriptor) *SchemaBuilder {
	ds := slices.Clone(descriptors)
	if i, ok := b.index[name]; ok {
		b.fields[i].descriptors = ds
		return b
	}
	b.index[name] = len(b.fields)
	b.fields = append(b.fields, schemaField{name: name, descriptors: ds})
	return b
}

// Build checks every declaration and returns the schema, or all problems
// joined into one error matching ErrInvalidSchema.
func (b *SchemaBuilder) Build() (*Schema, error) {
	var errs []error
	if b.name == "" {
		errs = append(errs, fmt.Errorf("%w: schema name is empty", ErrInvalidSchema))
	}

	for _, f := range b.fields {
		if f.name == "" {
			errs = append(errs, fmt.Errorf("%w: %s: empty field name", ErrInvalidSchema, b.name))
			continue
		}
		for _, d := range f.descriptors {
			if err := d.Err(); err != nil {
				errs = append(errs, fmt.Errorf("%w: %s.%s: %w", ErrInvalidSchema, b.name, f.name, err))
			}
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	s := &Schema{
		name:   b.name,
		fields: make([]schemaField, len(b.fields)),
		index:  make(map[string]int, len(b.fields)),
	}
	for i, f := range b.fields {
		s.fields[i] = schemaField{name: f.name, descriptors: slices.Clone(f.descriptors)}
		s.index[f.name] = i
	}
	return s, nil
}

// MustBuild is like Build but panics on error. Intended for package-level
// schema declarations.
func (b *SchemaBuilder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Extend returns a builder seeded with the schema's declarations.
func (s *Schema) Extend() *SchemaBuilder {
	b := NewSchema(s.name)
	for _, f := range s.fields {
		b.Field(f.name, f.descriptors...)
	}
	return b
}

func (s *Schema) Name() string { return s.name }

// Fields returns declared field names in field-walk order.
func (s *Schema) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

func (s *Schema) Has(field string) bool {
	_, ok := s.index[field]
	return ok
}

func (s *Schema) Descriptors(field string) []Descriptor {
	i, ok := s.index[field]
	if !ok {
		return nil
	}
	return slices.Clone(s.fields[i].descriptors)
}
