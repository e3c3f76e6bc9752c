package validator

// Result is the outcome of collecting validation. FailedFields and Messages
// are index-aligned and in field-walk order; both are nil when OK is true.
type Result struct {
	OK           bool     `json:"ok"`
	FailedFields []string `json:"failed_fields"`
	Messages     []string `json:"messages"`

	kinds []Kind
}

// Message returns the failure message recorded for field.
func (r Result) Message(field string) (string, bool) {
	for i, f := range r.FailedFields {
		if f == field {
			return r.Messages[i], true
		}
	}
	return "", false
}

// Err returns the failures as ValidationErrors, or nil when OK.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	errs := make(ValidationErrors, 0, len(r.FailedFields))
	for i, field := range r.FailedFields {
		fe := FieldError{Field: field, Message: r.Messages[i]}
		if i < len(r.kinds) {
			fe.Kind = r.kinds[i]
		}
		errs.Add(fe.validationError())
	}
	return errs
}

func (r *Result) add(fe *FieldError) {
	r.FailedFields = append(r.FailedFields, fe.Field)
	r.Messages = append(r.Messages, fe.Message)
	r.kinds = append(r.kinds, fe.Kind)
}

// Validate walks the declared fields of rec and returns the first failure as
// a *FieldError. Fields after the first failure are not checked.
func (s *Schema) Validate(rec Record) error {
	if rec == nil {
		return nil
	}
	for _, f := range s.fields {
		value, ok := rec.Field(f.name)
		if !ok {
			continue
		}
		if fe := f.check(value); fe != nil {
			return fe
		}
	}
	return nil
}

// ValidateAll checks every declared field of rec and records one entry per
// failing field. Coercion failures are recorded like any other violation.
func (s *Schema) ValidateAll(rec Record) Result {
	var res Result
	if rec != nil {
		for _, f := range s.fields {
			value, ok := rec.Field(f.name)
			if !ok {
				continue
			}
			if fe := f.check(value); fe != nil {
				res.add(fe)
			}
		}
	}
	res.OK = len(res.FailedFields) == 0
	return res
}

// Rules returns one Rule per descriptor of every field rec exposes, for use
// with Apply. Unlike ValidateAll, a field may contribute several errors.
func (s *Schema) Rules(rec Record) []Rule {
	if rec == nil {
		return nil
	}
	var rules []Rule
	for _, f := range s.fields {
		value, ok := rec.Field(f.name)
		if !ok {
			continue
		}
		for _, d := range f.descriptors {
			rules = append(rules, d.rule(f.name, value))
		}
	}
	return rules
}

// check evaluates descriptors in order and stops at the first failure.
func (f schemaField) check(value any) *FieldError {
	for _, d := range f.descriptors {
		err := d.Validate(f.name, value)
		if err == nil {
			continue
		}
		if fe, ok := err.(*FieldError); ok {
			return fe
		}
		return &FieldError{Field: f.name, Kind: d.kind, Message: d.message, Err: err}
	}
	return nil
}
