package main

import "github.com/dmitrymomot/validated/pkg/validator"

const personType = "person"

// Person is the record type served out of the box.
type Person struct {
	Name  any `json:"name"`
	Age   any `json:"age"`
	Phone any `json:"phone"`
}

func (p *Person) Field(name string) (any, bool) {
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

func (p *Person) RecordType() string { return personType }

func newPerson(values validator.Fields) (validator.Record, error) {
	return &Person{Name: values["name"], Age: values["age"], Phone: values["phone"]}, nil
}

func personSchema() *validator.Schema {
	return validator.NewSchema(personType).
		Field("name", validator.Length("name must have 2-4 characters", validator.Incl(2), validator.Excl(5))).
		Field("age", validator.Range("age must be in [10, 60)", validator.Incl(10), validator.Excl(60))).
		Field("phone", validator.Pattern("invalid phone number", `1[3-9]\d{9}$`)).
		MustBuild()
}
