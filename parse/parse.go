// Package parse classifies partial filter-bar input. The whole line is
// reclassified from scratch on every call; no parser state is carried
// between keystrokes.
package parse

import (
	"strings"

	nt "filterbar/entity"
	"filterbar/match"
	"filterbar/operator"
)

// Step names the stage of filter composition the input is in.
type Step int

const (
	StepFreeText Step = iota
	StepProperty
	StepOperator
)

func (stp Step) String() string {

	switch stp {
	case StepProperty:
		return "property"
	case StepOperator:
		return "operator"
	}
	return "free-text"
}

// Result is the classifier's verdict for one input string.
//
//   - StepProperty: Property, Operator, and Value are set
//   - StepOperator: Property and the partial (possibly empty) Prefix are set
//   - StepFreeText: Value is set, Operator only when HasOperator
type Result struct {
	Step        Step
	Property    nt.Property
	Operator    nt.Operator
	HasOperator bool
	Prefix      string
	Value       string
}

// Parser classifies input against a fixed filter configuration.
type Parser struct {
	properties []nt.Property
	freeText   nt.FreeText
	table      *operator.Table
}

// New creates a Parser sharing the given operator table.
func New(properties []nt.Property, freeText nt.FreeText, tbl *operator.Table) *Parser {

	return &Parser{
		properties: properties,
		freeText:   freeText,
		table:      tbl,
	}
}

// Text classifies the input. Every string lands in one of the three
// steps; free text is the universal fallback.
func (psr *Parser) Text(text string) Result {

	prop, found := match.Property(psr.properties, text)
	if !found {
		return psr.freeTextResult(text)
	}

	// Strip the matched label, then any leading spaces.
	rest := strings.TrimLeft(text[len(prop.Label):], " ")
	allowed := psr.table.Allowed(prop)

	op, found := match.Operator(allowed, rest)
	if found {
		return Result{
			Step:        StepProperty,
			Property:    prop,
			Operator:    op,
			HasOperator: true,
			Value:       stripSeparator(rest[len(op):]),
		}
	}

	prefix, ok := match.OperatorPrefix(allowed, rest)
	if ok {
		return Result{Step: StepOperator, Property: prop, Prefix: prefix}
	}

	// Property name followed by something that cannot start an operator.
	return Result{Step: StepFreeText, Value: text}
}

// freeTextResult classifies input with no matching property name. A bare
// "!" aliases "!:" when the latter is configured.
func (psr *Parser) freeTextResult(text string) Result {

	if psr.freeText.Disabled {
		return Result{Step: StepFreeText, Value: text}
	}

	ops := psr.freeText.Operators
	for _, op := range psr.freeText.Operators {
		if op == nt.NotContains {
			ops = append(append([]nt.Operator{}, psr.freeText.Operators...), "!")
			break
		}
	}

	op, found := match.Operator(ops, text)
	if !found {
		return Result{Step: StepFreeText, Value: text}
	}

	value := stripSeparator(text[len(op):])
	if op == "!" {
		op = nt.NotContains
	}

	return Result{Step: StepFreeText, Operator: op, HasOperator: true, Value: value}
}

// stripSeparator removes at most one space after an operator; any further
// spaces belong to the value.
func stripSeparator(text string) string {

	if strings.HasPrefix(text, " ") {
		return text[1:]
	}
	return text
}
