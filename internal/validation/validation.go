package validation

import "regexp"

// ErrorKind names why a field failed, so the screen can render the right
// inline message without the validator knowing about presentation.
type ErrorKind string

const (
	KindRequired      ErrorKind = "required"
	KindInvalidFormat ErrorKind = "invalid_format"
	KindOutOfRange    ErrorKind = "out_of_range"
	KindTooShort      ErrorKind = "too_short"
	KindMismatch      ErrorKind = "mismatch"
	KindInvalidValue  ErrorKind = "invalid_value"
	KindInvalidRange  ErrorKind = "invalid_range"
)

// Result maps field names to their first failure. No entries means the
// draft may go to the network.
type Result struct {
	FieldErrors map[string]ErrorKind `json:"fieldErrors"`
}

func (r Result) Valid() bool {
	return len(r.FieldErrors) == 0
}

// Validator accumulates per-field checks in declaration order; only the
// first failure per field is kept.
type Validator struct {
	errs map[string]ErrorKind
}

func New() *Validator {
	return &Validator{errs: make(map[string]ErrorKind)}
}

func (v *Validator) fail(field string, kind ErrorKind) {
	if _, seen := v.errs[field]; !seen {
		v.errs[field] = kind
	}
}

func (v *Validator) RequireString(field, value string) *Validator {
	if value == "" {
		v.fail(field, KindRequired)
	}
	return v
}

func (v *Validator) RequireID(field string, value int64) *Validator {
	if value <= 0 {
		v.fail(field, KindRequired)
	}
	return v
}

func (v *Validator) Matches(field, value string, re *regexp.Regexp) *Validator {
	if !re.MatchString(value) {
		v.fail(field, KindInvalidFormat)
	}
	return v
}

func (v *Validator) MinLength(field, value string, min int) *Validator {
	if len(value) < min {
		v.fail(field, KindTooShort)
	}
	return v
}

func (v *Validator) Positive(field string, value float64) *Validator {
	if value <= 0 {
		v.fail(field, KindOutOfRange)
	}
	return v
}

func (v *Validator) Equal(field, value, expected string) *Validator {
	if value != expected {
		v.fail(field, KindMismatch)
	}
	return v
}

func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.fail(field, KindInvalidValue)
	return v
}

// Check records an arbitrary predicate failure against a field.
func (v *Validator) Check(field string, ok bool, kind ErrorKind) *Validator {
	if !ok {
		v.fail(field, kind)
	}
	return v
}

func (v *Validator) Result() Result {
	return Result{FieldErrors: v.errs}
}
