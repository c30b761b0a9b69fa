package core

import "fmt"

// RawRow maps a header column name to the trimmed cell text.
type RawRow map[string]string

// TypedRow maps a declared column name to its transformed value.
type TypedRow map[string]any

// ValidateRow checks one row against specs.
//
// A missing cell is treated as the empty string. Every spec is evaluated so
// that all invalid fields of the row are reported together. Columns that no
// spec declares are dropped from the result.
func ValidateRow(row RawRow, specs []ColumnSpec) (TypedRow, []string) {
	typed := make(TypedRow, len(specs))
	var problems []string
	for _, spec := range specs {
		raw := row[spec.Name]
		var value any = raw
		if spec.Transform != nil {
			value = spec.Transform(raw)
		}
		if spec.Validate != nil {
			if err := spec.Validate(value); err != nil {
				problems = append(problems, fmt.Sprintf("%q %v", spec.Name, err))
				continue
			}
		}
		typed[spec.Name] = value
	}
	if len(problems) > 0 {
		return nil, problems
	}
	return typed, nil
}
