// Package convert maps between the bar's token model and the and/or wire
// shape used for persistence and backend submission.
package convert

import (
	nt "filterbar/entity"
	"filterbar/operator"
)

// Entry is one condition on the wire. Field is null for free text.
type Entry struct {
	Field *string `json:"field"`
	Op    string  `json:"op"`
	Value string  `json:"value"`
}

// Filter groups entries by boolean operation. This engine's writer only
// ever populates one of the two lists; the reader tolerates either, or
// both empty.
type Filter struct {
	And []Entry `json:"and"`
	Or  []Entry `json:"or"`
}

// ApiQuery is the wire envelope.
type ApiQuery struct {
	Filter Filter `json:"filter"`
}

// Converter translates queries using a shared operator table.
type Converter struct {
	table *operator.Table
}

// New creates a Converter over the given table.
func New(tbl *operator.Table) *Converter {
	return &Converter{table: tbl}
}

// ToApi lands every token in the list matching the query's operation,
// leaving the other list empty.
func (cnv *Converter) ToApi(qry nt.Query) ApiQuery {

	entries := make([]Entry, 0, len(qry.Tokens))
	for _, tkn := range qry.Tokens {
		entry := Entry{
			Op:    cnv.table.ApiName(tkn.Operator),
			Value: tkn.Value,
		}
		if tkn.PropertyKey != "" {
			key := tkn.PropertyKey
			entry.Field = &key
		}
		entries = append(entries, entry)
	}

	if qry.Operation == nt.Or {
		return ApiQuery{Filter: Filter{And: []Entry{}, Or: entries}}
	}
	return ApiQuery{Filter: Filter{And: entries, Or: []Entry{}}}
}

// FromApi rebuilds the token form. The operation is or only when the or
// list is non-empty; an all-empty filter is an empty and-query.
func (cnv *Converter) FromApi(api ApiQuery) nt.Query {

	operation := nt.And
	entries := api.Filter.And
	if len(api.Filter.Or) > 0 {
		operation = nt.Or
		entries = api.Filter.Or
	}

	tokens := make([]nt.Token, 0, len(entries))
	for _, entry := range entries {
		tkn := nt.Token{
			Operator: cnv.table.Symbol(entry.Op),
			Value:    entry.Value,
		}
		if entry.Field != nil {
			tkn.PropertyKey = *entry.Field
		}
		tokens = append(tokens, tkn)
	}

	return nt.Query{Tokens: tokens, Operation: operation}
}

// Flatten extracts simple tokens from a mixed node list. Groups
// contribute only their directly nested tokens; the group's own operation
// is dropped and deeper nesting does not exist in the node shape.
func Flatten(nodes []nt.TokenNode) []nt.Token {

	tokens := make([]nt.Token, 0, len(nodes))
	for _, node := range nodes {
		switch node.Kind {
		case nt.GroupNode:
			tokens = append(tokens, node.Tokens...)
		default:
			tokens = append(tokens, node.Token)
		}
	}

	return tokens
}
