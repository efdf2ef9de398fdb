package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError collects messages per field. It surfaces as an
// InvalidArgument *Error whose "validation_errors" metadata holds Fields.
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

// Error lists every field in name order so messages are stable
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(v.Fields))
	for name := range v.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, strings.Join(v.Fields[name], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v *ValidationError) add(field, message string) {
	if v.Fields == nil {
		v.Fields = make(map[string][]string)
	}
	v.Fields[field] = append(v.Fields[field], message)
}

// ToError returns nil when no field failed
func (v *ValidationError) ToError() *Error {
	if len(v.Fields) == 0 {
		return nil
	}
	return InvalidArgument(v.Error()).WithMeta("validation_errors", v.Fields)
}

// ValidationBuilder accumulates field errors while checking an input
type ValidationBuilder struct {
	err ValidationError
}

func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{}
}

func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.add(field, message)
	return vb
}

func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns nil or an InvalidArgument error describing every field
func (vb *ValidationBuilder) Build() error {
	if err := vb.err.ToError(); err != nil {
		return err
	}
	return nil
}
