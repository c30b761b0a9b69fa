package core

import (
	"errors"
	"strconv"

	"github.com/huangsam/awardgap/schema"
)

// Rule checks a transformed cell value and describes why it is invalid.
// The message is prefixed with the quoted column name when reported.
type Rule func(value any) error

// ColumnSpec declares one required column: its name, an optional transform
// applied to the raw string, and the rule the transformed value must satisfy.
type ColumnSpec struct {
	Name      string
	Transform func(raw string) any
	Validate  Rule
}

// Rule failures.
var (
	errNotNumber  = errors.New("must be a number")
	errNotString  = errors.New("must be a string")
	errNotBoolean = errors.New("must be a boolean")
	errEmpty      = errors.New("is not allowed to be empty")
)

// IntegerRule accepts int values only.
func IntegerRule(value any) error {
	if _, ok := value.(int); !ok {
		return errNotNumber
	}
	return nil
}

// StringRule accepts any string, including the empty one.
func StringRule(value any) error {
	if _, ok := value.(string); !ok {
		return errNotString
	}
	return nil
}

// NonEmptyStringRule accepts strings with at least one character.
func NonEmptyStringRule(value any) error {
	s, ok := value.(string)
	if !ok {
		return errNotString
	}
	if s == "" {
		return errEmpty
	}
	return nil
}

// BooleanRule accepts bool values only.
func BooleanRule(value any) error {
	if _, ok := value.(bool); !ok {
		return errNotBoolean
	}
	return nil
}

// ParseInteger converts digits to an int and leaves anything else as the raw
// string so that IntegerRule reports it.
func ParseInteger(raw string) any {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return raw
	}
	return n
}

// ParseWinner maps the winner token to true and anything else to false.
func ParseWinner(raw string) any {
	return raw == schema.WinnerToken
}

// MovieColumns returns the column set of the movie list.
func MovieColumns() []ColumnSpec {
	return []ColumnSpec{
		{Name: schema.ColumnYear, Transform: ParseInteger, Validate: IntegerRule},
		{Name: schema.ColumnTitle, Validate: NonEmptyStringRule},
		{Name: schema.ColumnStudios, Validate: StringRule},
		{Name: schema.ColumnProducers, Validate: StringRule},
		{Name: schema.ColumnWinner, Transform: ParseWinner, Validate: BooleanRule},
	}
}
