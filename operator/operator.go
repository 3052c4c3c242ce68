// Package operator holds the symbol lookups shared by the converter and
// the suggestion builder: api names, descriptions, and the canonical
// display order. Build one Table up front and pass it by reference;
// nothing mutates it after construction.
package operator

import (
	nt "filterbar/entity"
)

// Table is an immutable set of operator lookups.
type Table struct {
	order        []nt.Operator
	apiNames     map[nt.Operator]string
	symbols      map[string]nt.Operator
	descriptions map[nt.Operator]string
}

// NewTable builds the lookups for the ten recognized operators.
func NewTable() *Table {

	tbl := &Table{
		order: []nt.Operator{
			nt.Eq, nt.Ne, nt.Contains, nt.NotContains,
			nt.StartsWith, nt.NotStartsWith,
			nt.Gte, nt.Lte, nt.Lt, nt.Gt,
		},
		apiNames: map[nt.Operator]string{
			nt.Eq:            "equals",
			nt.Ne:            "does-not-equal",
			nt.Contains:      "contains",
			nt.NotContains:   "does-not-contain",
			nt.StartsWith:    "starts-with",
			nt.NotStartsWith: "does-not-start-with",
			nt.Gt:            "greater-than",
			nt.Lt:            "less-than",
			nt.Gte:           "greater-than-or-equal",
			nt.Lte:           "less-than-or-equal",
		},
		descriptions: map[nt.Operator]string{
			nt.Eq:            "Equals",
			nt.Ne:            "Does not equal",
			nt.Contains:      "Contains",
			nt.NotContains:   "Does not contain",
			nt.StartsWith:    "Starts with",
			nt.NotStartsWith: "Does not start with",
			nt.Gt:            "Greater than",
			nt.Lt:            "Less than",
			nt.Gte:           "Greater than or equal",
			nt.Lte:           "Less than or equal",
		},
	}

	tbl.symbols = make(map[string]nt.Operator, len(tbl.apiNames))
	for sym, name := range tbl.apiNames {
		tbl.symbols[name] = sym
	}

	return tbl
}

// ApiName returns the wire name for a symbol, unknown symbols pass through.
func (tbl *Table) ApiName(op nt.Operator) string {

	name, ok := tbl.apiNames[op]
	if !ok {
		return string(op)
	}
	return name
}

// Symbol returns the symbol for a wire name, unknown names pass through.
func (tbl *Table) Symbol(name string) nt.Operator {

	sym, ok := tbl.symbols[name]
	if !ok {
		return nt.Operator(name)
	}
	return sym
}

// Description returns a human-readable name for a symbol.
func (tbl *Table) Description(op nt.Operator) string {
	return tbl.descriptions[op]
}

// Allowed returns a property's configured operators plus its default,
// deduplicated and ordered canonically so configuration order never leaks
// into display order.
func (tbl *Table) Allowed(prop nt.Property) (allowed []nt.Operator) {

	set := map[nt.Operator]bool{}
	for _, op := range prop.Operators {
		set[op] = true
	}
	if prop.DefaultOperator != "" {
		set[prop.DefaultOperator] = true
	}

	for _, op := range tbl.order {
		if set[op] {
			allowed = append(allowed, op)
		}
	}

	return
}
