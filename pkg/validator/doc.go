// Package validator validates records against declarative per-field
// constraints.
//
// A Schema maps the fields of one record type to Constraint Descriptors. Four
// constraint kinds are supported:
//
//   - NotNull  – the field must not hold the null placeholder (nil)
//   - Range    – the field, coerced to an integer, lies within two bounds
//   - Length   – the length of the field lies within two bounds
//   - Pattern  – a regular expression matches the start of the field
//
// Range and Length bounds are inclusive or exclusive independently, so all of
// [a,b], [a,b), (a,b] and (a,b) can be expressed.
//
// # Usage
//
//	var personSchema = validator.NewSchema("person").
//	    Field("name", validator.Length("name must have 2-4 characters", validator.Incl(2), validator.Excl(5))).
//	    Field("age", validator.Range("age must be in [10, 60)", validator.Incl(10), validator.Excl(60))).
//	    Field("phone", validator.Pattern("invalid phone number", `^1[3-9]\d{9}$`)).
//	    MustBuild()
//
//	func init() {
//	    validator.MustRegister(validator.DefaultRegistry(), personSchema, newPerson)
//	}
//
//	// Fail on the first violation:
//	if err := validator.Validate(p); err != nil { ... }
//
//	// Or collect every failing field:
//	res, err := validator.ValidateAll(p)
//	if !res.OK {
//	    for i, field := range res.FailedFields {
//	        fmt.Println(field, res.Messages[i])
//	    }
//	}
//
// Records expose their values through the Record interface. Fields and
// Document are ready-made implementations for map-shaped data.
//
// # Error Handling
//
// Validate returns a *FieldError. It matches ErrValidationFailed and unwraps
// to ErrConstraintViolation, or to ErrCoercion when the value could not be
// converted to what the constraint compares (a non-numeric string checked by
// Range, a nil checked by Length). ValidateAll records both the same way.
// Schema declaration problems, including unknown constraint kinds, are
// reported by SchemaBuilder.Build as errors matching ErrInvalidSchema.
//
// Schemas can also be declared in YAML or JSON files, see LoadSchemas.
package validator
