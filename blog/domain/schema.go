package domain

import "fmt"

// Schema selects which post fields are mandatory. Every post carries the full
// four-field shape either way; the schema only decides whether author and
// date must be filled in.
type Schema string

const (
	// SchemaMinimal requires title and content; author and date are optional.
	SchemaMinimal Schema = "minimal"
	// SchemaExtended requires all four fields.
	SchemaExtended Schema = "extended"
)

// ParseSchema converts a configuration value into a Schema.
func ParseSchema(s string) (Schema, error) {
	switch Schema(s) {
	case SchemaMinimal, SchemaExtended:
		return Schema(s), nil
	}
	return "", fmt.Errorf("unknown post schema %q", s)
}

// Requires reports whether the named field must be non-empty under this
// schema. Unknown field names are never required.
func (s Schema) Requires(field string) bool {
	switch field {
	case FieldTitle, FieldContent:
		return true
	case FieldAuthor, FieldDate:
		return s == SchemaExtended
	}
	return false
}
