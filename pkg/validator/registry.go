package validator

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// Constructor builds a record from a complete field map: every declared
// field is present, absent ones hold nil.
type Constructor func(values Fields) (Record, error)

// Registration is a schema together with the constructor for its records.
type Registration struct {
	ID        string
	Schema    *Schema
	construct Constructor
}

// New builds a record through the registered constructor.
func (r *Registration) New(values Fields) (Record, error) {
	return r.construct(values)
}

// Registry resolves schemas by record type identifier. Registration is
// expected to finish during initialization; lookups are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Registration
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Registration)}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by the package-level helpers.
func DefaultRegistry() *Registry { return defaultRegistry }

// Add registers schema and construct under id, replacing any previous entry.
func (r *Registry) Add(id string, schema *Schema, construct Constructor) error {
	switch {
	case id == "":
		return fmt.Errorf("%w: empty type identifier", ErrInvalidSchema)
	case schema == nil:
		return fmt.Errorf("%w: %s: nil schema", ErrInvalidSchema, id)
	case construct == nil:
		return fmt.Errorf("%w: %s: nil constructor", ErrInvalidSchema, id)
	}

	r.mu.Lock()
	r.entries[id] = &Registration{ID: id, Schema: schema, construct: construct}
	r.mu.Unlock()
	return nil
}

// RegisterSchema registers a schema without a Go record type under its name.
// Its records are *Document values.
func (r *Registry) RegisterSchema(schema *Schema) error {
	if schema == nil {
		return fmt.Errorf("%w: nil schema", ErrInvalidSchema)
	}
	id := schema.Name()
	return r.Add(id, schema, func(values Fields) (Record, error) {
		return &Document{Type: id, Values: values}, nil
	})
}

// Register registers schema for record type T under TypeID[T].
func Register[T Record](r *Registry, schema *Schema, construct func(Fields) (T, error)) error {
	if construct == nil {
		return r.Add(TypeID[T](), schema, nil)
	}
	return r.Add(TypeID[T](), schema, func(values Fields) (Record, error) {
		return construct(values)
	})
}

// MustRegister is like Register but panics on error.
func MustRegister[T Record](r *Registry, schema *Schema, construct func(Fields) (T, error)) {
	if err := Register(r, schema, construct); err != nil {
		panic(err)
	}
}

// Lookup returns the registration for id or an error matching ErrSchemaNotFound.
func (r *Registry) Lookup(id string) (*Registration, error) {
	r.mu.RLock()
	reg, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, id)
	}
	return reg, nil
}

func (r *Registry) Schema(id string) (*Schema, bool) {
	reg, err := r.Lookup(id)
	if err != nil {
		return nil, false
	}
	return reg.Schema, true
}

// IDs returns the registered identifiers in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// Validate resolves the schema for rec and fails on its first violation.
func (r *Registry) Validate(rec Record) error {
	reg, err := r.Lookup(IDOf(rec))
	if err != nil {
		return err
	}
	return reg.Schema.Validate(rec)
}

// ValidateAll resolves the schema for rec and collects every failing field.
// The error is only set when no schema is registered.
func (r *Registry) ValidateAll(rec Record) (Result, error) {
	reg, err := r.Lookup(IDOf(rec))
	if err != nil {
		return Result{}, err
	}
	return reg.Schema.ValidateAll(rec), nil
}

// Validate is Registry.Validate on the default registry.
func Validate(rec Record) error { return defaultRegistry.Validate(rec) }

// ValidateAll is Registry.ValidateAll on the default registry.
func ValidateAll(rec Record) (Result, error) { return defaultRegistry.ValidateAll(rec) }

// TypeID returns the registry identifier of record type T. Pointer and value
// types share an identifier.
func TypeID[T any]() string {
	return typeName(reflect.TypeFor[T]())
}

// IDOf returns the registry identifier of rec.
func IDOf(rec Record) string {
	if rec == nil {
		return ""
	}
	if id, ok := rec.(Identified); ok {
		return id.RecordType()
	}
	return typeName(reflect.TypeOf(rec))
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}
