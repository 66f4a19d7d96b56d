package validation

import "strings"

// Violations maps a field name to a message code understood by the i18n
// catalog. An empty map means the value passed validation.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Fields returns the violated field names, for error messages that name them.
func (v Violations) Fields() []string {
	out := make([]string, 0, len(v))
	for f := range v {
		out = append(out, f)
	}
	return out
}

// Basic validators

func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func NonNegativeFloat(field string, val float64, v Violations) {
	if val < 0 {
		v[field] = "must_not_be_negative"
	}
}

// AtMostFloat flags val when it exceeds maxVal.
func AtMostFloat(field string, val, maxVal float64, v Violations) {
	if val > maxVal {
		v[field] = "exceeds_maximum"
	}
}

func NotEmptySlice[T any](field string, s []T, v Violations) {
	if len(s) == 0 {
		v[field] = "required"
	}
}
