// Package filter translates client filter descriptors into a parameterized
// predicate over the electric_cars table.
package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tair/electric-cars/internal/car/domain"
)

// Operator names a comparison understood by the translator
type Operator string

const (
	Contains           Operator = "contains"
	Equals             Operator = "equals"
	StartsWith         Operator = "startsWith"
	EndsWith           Operator = "endsWith"
	IsEmpty            Operator = "isEmpty"
	GreaterThan        Operator = "greaterThan"
	LessThan           Operator = "lessThan"
	GreaterThanOrEqual Operator = "greaterThanOrEqual"
	LessThanOrEqual    Operator = "lessThanOrEqual"
)

// Descriptor is one client supplied filter
type Descriptor struct {
	Field    string   `json:"field"`
	Operator Operator `json:"operator"`
	Value    Value    `json:"value"`
}

// FieldError is returned when a descriptor names a column outside the allow-list
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid filter field: %q", e.Field)
}

type clauseBuilder func(field, value string) (string, []interface{})

func like(prefix, suffix string) clauseBuilder {
	return func(field, value string) (string, []interface{}) {
		return fmt.Sprintf("%s LIKE ?", field), []interface{}{prefix + value + suffix}
	}
}

func compare(op string) clauseBuilder {
	return func(field, value string) (string, []interface{}) {
		return fmt.Sprintf("%s %s ?", field, op), []interface{}{value}
	}
}

func empty(field, _ string) (string, []interface{}) {
	return fmt.Sprintf("(%s IS NULL OR %s = '')", field, field), nil
}

var builders = map[Operator]clauseBuilder{
	Contains:           like("%", "%"),
	Equals:             compare("="),
	StartsWith:         like("", "%"),
	EndsWith:           like("%", ""),
	IsEmpty:            empty,
	GreaterThan:        compare(">"),
	LessThan:           compare("<"),
	GreaterThanOrEqual: compare(">="),
	LessThanOrEqual:    compare("<="),
}

// SupportedOperators returns the recognized operators in lexical order.
func SupportedOperators() []Operator {
	ops := make([]Operator, 0, len(builders))
	for op := range builders {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// Translator turns descriptors into a domain.Predicate
type Translator struct {
	fields map[string]struct{}
}

// NewTranslator creates a translator accepting only the given column names.
func NewTranslator(fields []string) *Translator {
	allowed := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		allowed[f] = struct{}{}
	}
	return &Translator{fields: allowed}
}

// NewCarTranslator creates a translator bound to the electric_cars columns.
func NewCarTranslator() *Translator {
	return NewTranslator(domain.FilterableColumns)
}

// Translate builds the predicate. Fragments are joined with AND in input
// order and descriptors with an unrecognized operator are skipped. Any
// descriptor naming a field outside the allow-list fails the whole call
// with a *FieldError.
func (t *Translator) Translate(descriptors []Descriptor) (domain.Predicate, error) {
	var (
		fragments []string
		args      []interface{}
	)
	for _, d := range descriptors {
		if _, ok := t.fields[d.Field]; !ok {
			return domain.Predicate{}, &FieldError{Field: d.Field}
		}
		build, ok := builders[d.Operator]
		if !ok {
			continue
		}
		clause, params := build(d.Field, d.Value.String())
		fragments = append(fragments, clause)
		args = append(args, params...)
	}
	return domain.Predicate{
		Clause: strings.Join(fragments, " AND "),
		Args:   args,
	}, nil
}
