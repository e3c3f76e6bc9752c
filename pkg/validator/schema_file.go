package validator

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// SchemaFile is the document layout read by LoadSchemas:
//
//	schemas:
//	  - name: person
//	    fields:
//	      - name: age
//	        rules:
//	          - kind: range
//	            message: age must be in [10, 60)
//	            min: {value: 10, inclusive: true}
//	            max: {value: 60}
//
// JSON documents with the same shape are accepted too.
type SchemaFile struct {
	Schemas []SchemaSpec `yaml:"schemas" json:"schemas"`
}

// SchemaSpec declares one schema. Field order is field-walk order.
type SchemaSpec struct {
	Name   string      `yaml:"name" json:"name"`
	Fields []FieldSpec `yaml:"fields" json:"fields"`
}

type FieldSpec struct {
	Name  string           `yaml:"name" json:"name"`
	Rules []DescriptorSpec `yaml:"rules" json:"rules"`
}

// DescriptorSpec is the data form of a Descriptor.
type DescriptorSpec struct {
	Kind    string     `yaml:"kind" json:"kind"`
	Message string     `yaml:"message" json:"message"`
	Min     *BoundSpec `yaml:"min,omitempty" json:"min,omitempty"`
	Max     *BoundSpec `yaml:"max,omitempty" json:"max,omitempty"`
	Pattern string     `yaml:"pattern,omitempty" json:"pattern,omitempty"`
}

type BoundSpec struct {
	Value     int64 `yaml:"value" json:"value"`
	Inclusive bool  `yaml:"inclusive" json:"inclusive"`
}

// ToDescriptor converts the declaration, failing on unknown kinds and on
// parameters that do not belong to the kind.
func (s DescriptorSpec) ToDescriptor() (Descriptor, error) {
	kind, err := ParseKind(s.Kind)
	if err != nil {
		return Descriptor{}, err
	}

	switch kind {
	case KindNotNull:
		if s.Min != nil || s.Max != nil || s.Pattern != "" {
			return Descriptor{}, fmt.Errorf("%w: notnull takes no parameters", ErrInvalidDescriptor)
		}
		return NotNull(s.Message), nil

	case KindRange, KindLength:
		if s.Min == nil || s.Max == nil {
			return Descriptor{}, fmt.Errorf("%w: %s requires min and max", ErrInvalidDescriptor, kind)
		}
		if s.Pattern != "" {
			return Descriptor{}, fmt.Errorf("%w: %s takes no pattern", ErrInvalidDescriptor, kind)
		}
		lower := Bound{Value: s.Min.Value, Inclusive: s.Min.Inclusive}
		upper := Bound{Value: s.Max.Value, Inclusive: s.Max.Inclusive}
		if kind == KindRange {
			return Range(s.Message, lower, upper), nil
		}
		return Length(s.Message, lower, upper), nil

	default:
		if s.Pattern == "" {
			return Descriptor{}, fmt.Errorf("%w: pattern requires an expression", ErrInvalidDescriptor)
		}
		if s.Min != nil || s.Max != nil {
			return Descriptor{}, fmt.Errorf("%w: pattern takes no bounds", ErrInvalidDescriptor)
		}
		return Pattern(s.Message, s.Pattern), nil
	}
}

// Build converts the declaration into a Schema.
func (s SchemaSpec) Build() (*Schema, error) {
	b := NewSchema(s.Name)
	var errs []error
	for _, f := range s.Fields {
		ds := make([]Descriptor, 0, len(f.Rules))
		for i, r := range f.Rules {
			d, err := r.ToDescriptor()
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s.%s rule %d: %w", ErrInvalidSchema, s.Name, f.Name, i, err))
				continue
			}
			ds = append(ds, d)
		}
		b.Field(f.Name, ds...)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return b.Build()
}

// LoadSchemas decodes a schema file and builds every schema in it.
// Unknown document keys are rejected.
func LoadSchemas(r io.Reader) ([]*Schema, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file SchemaFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	schemas := make([]*Schema, 0, len(file.Schemas))
	seen := make(map[string]bool, len(file.Schemas))
	for _, decl := range file.Schemas {
		if seen[decl.Name] {
			return nil, fmt.Errorf("%w: duplicate schema %q", ErrInvalidSchema, decl.Name)
		}
		seen[decl.Name] = true

		s, err := decl.Build()
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

// LoadSchemaFile is LoadSchemas on the file at path.
func LoadSchemaFile(path string) ([]*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema file: %w", err)
	}
	defer f.Close()
	return LoadSchemas(f)
}
