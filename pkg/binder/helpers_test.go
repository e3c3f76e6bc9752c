package binder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validated/pkg/validator"
)

const (
	nameMsg      = "name must have 2-4 characters"
	ageMsg       = "age must be in [10, 60)"
	phoneMsg     = "invalid phone number"
	phonePattern = `1[3-9]\d{9}$`
)

type person struct {
	Name  any
	Age   any
	Phone any
}

func (p *person) Field(name string) (any, bool) {
	switch name {
	case "name":
		return p.Name, true
	case "age":
		return p.Age, true
	case "phone":
		return p.Phone, true
	}
	return nil, false
}

var errBrokenConstructor = errors.New("constructor exploded")

func newPerson(f validator.Fields) (*person, error) {
	return &person{Name: f["name"], Age: f["age"], Phone: f["phone"]}, nil
}

func personSchema(t *testing.T) *validator.Schema {
	t.Helper()
	s, err := validator.NewSchema("person").
		Field("name", validator.Length(nameMsg, validator.Incl(2), validator.Excl(5))).
		Field("age", validator.Range(ageMsg, validator.Incl(10), validator.Excl(60))).
		Field("phone", validator.Pattern(phoneMsg, phonePattern)).
		Build()
	require.NoError(t, err)
	return s
}

// newRegistry returns a registry holding the person record type and an
// untyped "tag" schema.
func newRegistry(t *testing.T) *validator.Registry {
	t.Helper()
	reg := validator.NewRegistry()
	require.NoError(t, validator.Register(reg, personSchema(t), newPerson))

	tag, err := validator.NewSchema("tag").
		Field("label").
		Field("slug", validator.Pattern("slug must be lowercase", `[a-z0-9-]+$`)).
		Build()
	require.NoError(t, err)
	require.NoError(t, reg.RegisterSchema(tag))
	return reg
}
