package validator

import (
	"encoding/json"
	"maps"
)

// Record exposes field values by declared name. The second result is false
// when the record has no such field; such fields are not validated.
type Record interface {
	Field(name string) (any, bool)
}

// Identified is implemented by records whose registry identifier is not
// derived from their Go type.
type Identified interface {
	RecordType() string
}

// Fields is a key/value record. It is also the input handed to constructors.
type Fields map[string]any

func (f Fields) Field(name string) (any, bool) {
	v, ok := f[name]
	return v, ok
}

// Clone returns a shallow copy.
func (f Fields) Clone() Fields {
	if f == nil {
		return Fields{}
	}
	return maps.Clone(f)
}

// Document is the record produced for schemas registered without a Go type.
type Document struct {
	Type   string
	Values Fields
}

func (d *Document) Field(name string) (any, bool) {
	if d == nil {
		return nil, false
	}
	return d.Values.Field(name)
}

func (d *Document) RecordType() string {
	if d == nil {
		return ""
	}
	return d.Type
}

func (d *Document) MarshalJSON() ([]byte, error) {
	if d.Values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d.Values)
}
