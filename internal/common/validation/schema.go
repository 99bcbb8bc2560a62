package validation

import (
	"fmt"
	"math"
	"strings"
)

// Kind is the semantic type of a form field.
type Kind string

const (
	KindFloat Kind = "float"
	KindInt   Kind = "int"
	KindEnum  Kind = "enum"
)

// Control names the input widget an external front-end should render.
type Control string

const (
	ControlNumber Control = "number"
	ControlSlider Control = "slider"
	ControlRadio  Control = "radio"
	ControlSelect Control = "select"
)

// Option is one selectable value of an enum field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// FieldSpec declares one labeled input control: its bounds, default and,
// for enum fields, the allowed options.
type FieldSpec struct {
	Name      string      `json:"name"`
	Label     string      `json:"label"`
	Help      string      `json:"help,omitempty"`
	Kind      Kind        `json:"kind"`
	Control   Control     `json:"control"`
	Min       float64     `json:"min,omitempty"`
	Max       float64     `json:"max,omitempty"`
	Step      float64     `json:"step,omitempty"`
	Default   interface{} `json:"default"`
	Options   []Option    `json:"options,omitempty"`
	Lowercase bool        `json:"-"` // normalize casing to what the artifact expects
}

// Form is the ordered control set of one predictor app.
type Form struct {
	Fields []FieldSpec
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorString flattens all validation errors into one details line.
func (r *ValidationResult) ErrorString() string {
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(parts, "; ")
}

// Collect builds the complete one-row record from submitted values: absent
// fields take their declared defaults, enum casing is normalized, and every
// value must sit inside its declared bounds. The input map is never
// mutated; the returned record is fresh.
func (f Form) Collect(values map[string]interface{}) (map[string]interface{}, *ValidationResult) {
	record := make(map[string]interface{}, len(f.Fields))
	errors := []ValidationError{}

	known := make(map[string]bool, len(f.Fields))
	for _, spec := range f.Fields {
		known[spec.Name] = true
	}
	for name := range values {
		if !known[name] {
			errors = append(errors, ValidationError{
				Field:   name,
				Message: "field not allowed in schema",
				Code:    "EXTRA_FIELD",
			})
		}
	}

	for _, spec := range f.Fields {
		raw, present := values[spec.Name]
		if !present {
			raw = spec.Default
		}
		value, fieldErrors := validateField(spec, raw)
		if len(fieldErrors) > 0 {
			errors = append(errors, fieldErrors...)
			continue
		}
		record[spec.Name] = value
	}

	if len(errors) > 0 {
		return nil, &ValidationResult{Valid: false, Errors: errors}
	}
	return record, &ValidationResult{Valid: true}
}

func validateField(spec FieldSpec, raw interface{}) (interface{}, []ValidationError) {
	switch spec.Kind {
	case KindFloat, KindInt:
		num, ok := toFloat(raw)
		if !ok {
			return nil, []ValidationError{{
				Field:   spec.Name,
				Message: "value must be a number",
				Code:    "INVALID_TYPE",
			}}
		}
		if spec.Kind == KindInt && num != math.Trunc(num) {
			return nil, []ValidationError{{
				Field:   spec.Name,
				Message: "value must be an integer",
				Code:    "INVALID_TYPE",
			}}
		}
		if num < spec.Min || num > spec.Max {
			return nil, []ValidationError{{
				Field:   spec.Name,
				Message: fmt.Sprintf("value must be between %g and %g", spec.Min, spec.Max),
				Code:    "OUT_OF_RANGE",
			}}
		}
		return num, nil

	case KindEnum:
		str, ok := raw.(string)
		if !ok {
			return nil, []ValidationError{{
				Field:   spec.Name,
				Message: "value must be a string",
				Code:    "INVALID_TYPE",
			}}
		}
		if spec.Lowercase {
			str = strings.ToLower(str)
		}
		for _, opt := range spec.Options {
			candidate := opt.Value
			if spec.Lowercase {
				candidate = strings.ToLower(candidate)
			}
			if str == candidate {
				return candidate, nil
			}
		}
		return nil, []ValidationError{{
			Field:   spec.Name,
			Message: fmt.Sprintf("value must be one of %v", optionValues(spec.Options)),
			Code:    "INVALID_ENUM_VALUE",
		}}

	default:
		return nil, []ValidationError{{
			Field:   spec.Name,
			Message: fmt.Sprintf("unsupported field kind %q", spec.Kind),
			Code:    "INVALID_TYPE",
		}}
	}
}

func toFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func optionValues(options []Option) []string {
	out := make([]string, 0, len(options))
	for _, opt := range options {
		out = append(out, opt.Value)
	}
	return out
}

// JSONSchema renders the form as a JSON schema object, used both by the
// registry payloads and for request-body validation.
func (f Form) JSONSchema() map[string]interface{} {
	properties := make(map[string]interface{}, len(f.Fields))

	for _, spec := range f.Fields {
		prop := map[string]interface{}{}
		switch spec.Kind {
		case KindFloat:
			prop["type"] = "number"
			prop["minimum"] = spec.Min
			prop["maximum"] = spec.Max
		case KindInt:
			prop["type"] = "integer"
			prop["minimum"] = spec.Min
			prop["maximum"] = spec.Max
		case KindEnum:
			// enum membership is checked after casing normalization in
			// Collect, so the schema only pins the type here
			prop["type"] = "string"
		}
		if spec.Help != "" {
			prop["description"] = spec.Help
		}
		if spec.Default != nil {
			prop["default"] = spec.Default
		}
		properties[spec.Name] = prop
	}

	return map[string]interface{}{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
}
