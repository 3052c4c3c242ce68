// Package suggest builds the grouped suggestion lists a host renders
// under the bar. Which groups appear follows the parse step.
package suggest

import (
	"fmt"
	"strings"

	nt "filterbar/entity"
	"filterbar/operator"
	"filterbar/parse"
)

// Suggestion is one selectable entry. Value is the composite string the
// host feeds back into the bar on selection; KeepOpen asks the host to
// leave the suggestion surface up afterward.
type Suggestion struct {
	Value       string
	Label       string
	LabelPrefix string
	Description string
	KeepOpen    bool
	Nested      *nt.NestedSet
}

// Group is a labeled, ordered run of suggestions.
type Group struct {
	Label   string
	Options []Suggestion
}

// Labels overrides the default group labels.
type Labels struct {
	Properties string `yaml:"properties,omitempty"`
	Operators  string `yaml:"operators,omitempty"`
	Values     string `yaml:"values,omitempty"`
}

// Builder derives suggestion groups from a parse result.
type Builder struct {
	table  *operator.Table
	labels Labels
}

// NewBuilder creates a Builder sharing the given operator table.
func NewBuilder(tbl *operator.Table, labels Labels) *Builder {

	if labels.Properties == "" {
		labels.Properties = "Properties"
	}
	if labels.Operators == "" {
		labels.Operators = "Operators"
	}
	if labels.Values == "" {
		labels.Values = "Values"
	}

	return &Builder{table: tbl, labels: labels}
}

// Build produces the groups for the given parse result. Hidden
// properties are excluded from every path.
func (bld *Builder) Build(res parse.Result, properties []nt.Property, options []nt.Option) []Group {

	switch res.Step {
	case parse.StepProperty:
		return bld.propertyStage(res, options)
	case parse.StepOperator:
		return bld.operatorStage(res, properties)
	}
	return bld.freeTextStage(res, properties, options)
}

// propertyStage offers the matched property's own values.
func (bld *Builder) propertyStage(res parse.Result, options []nt.Option) []Group {

	label := res.Property.ValuesLabel
	if label == "" {
		label = bld.labels.Values
	}

	grp := Group{Label: label}
	for _, opt := range options {
		if opt.PropertyKey != res.Property.Key {
			continue
		}
		grp.Options = append(grp.Options, bld.optionSuggestion(res.Property, res.Operator, opt))
	}

	return []Group{grp}
}

// operatorStage offers the other properties and the matched property's
// allowed operators; either way the user still has typing to do, so
// everything keeps the surface open.
func (bld *Builder) operatorStage(res parse.Result, properties []nt.Property) []Group {

	props := Group{Label: bld.labels.Properties}
	for _, prop := range properties {
		if prop.Hidden || prop.Key == res.Property.Key {
			continue
		}
		props.Options = append(props.Options, Suggestion{
			Value:    prop.Label,
			Label:    prop.Label,
			KeepOpen: true,
		})
	}

	ops := Group{Label: bld.labels.Operators}
	for _, op := range bld.table.Allowed(res.Property) {
		ops.Options = append(ops.Options, Suggestion{
			Value:       fmt.Sprintf("%s %s", res.Property.Label, op),
			Label:       string(op),
			Description: bld.table.Description(op),
			KeepOpen:    true,
		})
	}

	return []Group{props, ops}
}

// freeTextStage offers properties (unless the user explicitly asked for
// "does not contain") and, once a value has been typed, matching values
// across all properties.
func (bld *Builder) freeTextStage(res parse.Result, properties []nt.Property, options []nt.Option) (groups []Group) {

	if !(res.HasOperator && res.Operator == nt.NotContains) {
		props := Group{Label: bld.labels.Properties}
		for _, prop := range properties {
			if prop.Hidden {
				continue
			}
			props.Options = append(props.Options, Suggestion{
				Value:    prop.Label,
				Label:    prop.Label,
				KeepOpen: true,
			})
		}
		groups = append(groups, props)
	}

	if res.Value == "" {
		return
	}

	requested := nt.Eq
	if res.HasOperator {
		requested = res.Operator
	}

	byKey := map[string]nt.Property{}
	for _, prop := range properties {
		byKey[prop.Key] = prop
	}

	values := Group{Label: bld.labels.Values}
	for _, opt := range options {
		prop, found := byKey[opt.PropertyKey]
		if !found || prop.Hidden {
			continue
		}
		if !containsFold(opt.Display(), res.Value) {
			continue
		}

		op, supported := pickOperator(bld.table.Allowed(prop), requested)
		if !supported {
			continue
		}
		values.Options = append(values.Options, bld.optionSuggestion(prop, op, opt))
	}
	groups = append(groups, values)

	return
}

// optionSuggestion renders one option as a composite "label op value"
// entry. An option with a nested choice keeps the surface open so the
// follow-up can be offered right away.
func (bld *Builder) optionSuggestion(prop nt.Property, op nt.Operator, opt nt.Option) Suggestion {

	display := opt.Display()
	if format := prop.Formatters[op]; format != nil {
		display = format(display)
	}

	return Suggestion{
		Value:       fmt.Sprintf("%s %s %s", prop.Label, op, opt.Value),
		Label:       display,
		LabelPrefix: fmt.Sprintf("%s %s", prop.Label, op),
		Nested:      opt.Nested,
		KeepOpen:    opt.Nested != nil,
	}
}

// pickOperator takes the requested operator when the property supports
// it, falling back to equals.
func pickOperator(allowed []nt.Operator, requested nt.Operator) (nt.Operator, bool) {

	hasEq := false
	for _, op := range allowed {
		if op == requested {
			return requested, true
		}
		if op == nt.Eq {
			hasEq = true
		}
	}
	if hasEq {
		return nt.Eq, true
	}

	return "", false
}

func containsFold(text, sub string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(sub))
}
