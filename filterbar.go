// Package filterbar is an incremental parsing and query-normalization
// engine for a property filter bar. A host feeds it the raw input text on
// every change and renders the parse result and suggestions it gets back;
// query mutations go through the action methods, which return the rebuilt
// query in both the token and wire forms.
package filterbar

import (
	"context"

	"github.com/pkg/errors"

	"filterbar/convert"
	nt "filterbar/entity"
	"filterbar/match"
	"filterbar/operator"
	"filterbar/parse"
	"filterbar/suggest"
	"filterbar/validate"
)

// Config carries the read-only configuration for a filter session.
type Config struct {
	Properties []nt.Property  `yaml:"properties"`
	Options    []nt.Option    `yaml:"options"`
	FreeText   nt.FreeText    `yaml:"free_text"`
	Labels     suggest.Labels `yaml:"labels,omitempty"`
}

// Bar is one filter session: fixed configuration plus the accumulating
// token list. All methods are synchronous; the zero query is and with no
// tokens.
type Bar struct {
	config    Config
	table     *operator.Table
	parser    *parse.Parser
	builder   *suggest.Builder
	converter *convert.Converter

	tokens    []nt.Token
	operation nt.Operation

	logger nt.Logger
}

// New validates cfg and creates a session with an empty and-query.
func (cfg *Config) New(lgr nt.Logger) (bar *Bar, err error) {

	tbl := operator.NewTable()

	for _, prop := range cfg.Properties {
		if prop.Key == "" || prop.Label == "" {
			err = errors.Errorf("property needs a key and a label: %+v", prop)
			return
		}
		if len(tbl.Allowed(prop)) == 0 {
			err = errors.Errorf("property %s has no recognized operators", prop.Key)
			return
		}
	}

	bar = &Bar{
		config:    *cfg,
		table:     tbl,
		parser:    parse.New(cfg.Properties, cfg.FreeText, tbl),
		builder:   suggest.NewBuilder(tbl, cfg.Labels),
		converter: convert.New(tbl),
		operation: nt.And,
		logger:    lgr,
	}

	return
}

// Parse classifies the current input text.
func (bar *Bar) Parse(text string) parse.Result {
	return bar.parser.Text(text)
}

// Suggest classifies text and builds grouped suggestions for it.
func (bar *Bar) Suggest(text string) []suggest.Group {
	return bar.builder.Build(bar.parser.Text(text), bar.config.Properties, bar.config.Options)
}

// Validate checks a token's value against its property's grammar. Tokens
// for unknown properties, including free text, always pass.
func (bar *Bar) Validate(tkn nt.Token) validate.Result {

	for _, prop := range bar.config.Properties {
		if prop.Key == tkn.PropertyKey {
			return validate.TokenValue(tkn.Value, prop)
		}
	}

	return validate.Result{Valid: true}
}

// Query returns a copy of the current query.
func (bar *Bar) Query() nt.Query {

	tokens := make([]nt.Token, len(bar.tokens))
	copy(tokens, bar.tokens)

	return nt.Query{Tokens: tokens, Operation: bar.operation}
}

// Api returns the current query in wire form.
func (bar *Bar) Api() convert.ApiQuery {
	return bar.converter.ToApi(bar.Query())
}

// AddToken appends one token.
func (bar *Bar) AddToken(ctx context.Context, tkn nt.Token) (nt.Query, convert.ApiQuery) {

	bar.tokens = append(bar.tokens, tkn)
	return bar.rebuild(ctx, "token added", "token", tkn)
}

// AddNodes appends multiple tokens atomically, accepting legacy grouped
// shapes. Features that co-create tokens (a value selection implying a
// companion token) use this so back-to-back adds cannot interleave.
func (bar *Bar) AddNodes(ctx context.Context, nodes []nt.TokenNode) (nt.Query, convert.ApiQuery) {

	tokens := convert.Flatten(nodes)
	bar.tokens = append(bar.tokens, tokens...)
	return bar.rebuild(ctx, "tokens added", "count", len(tokens))
}

// UpdateToken replaces the token at idx. Out-of-range indexes leave the
// query untouched.
func (bar *Bar) UpdateToken(ctx context.Context, idx int, tkn nt.Token) (nt.Query, convert.ApiQuery) {

	if idx < 0 || idx >= len(bar.tokens) {
		return bar.rebuild(ctx, "token update ignored", "index", idx)
	}

	bar.tokens[idx] = tkn
	return bar.rebuild(ctx, "token updated", "index", idx, "token", tkn)
}

// RemoveToken deletes the token at idx. Out-of-range indexes leave the
// query untouched.
func (bar *Bar) RemoveToken(ctx context.Context, idx int) (nt.Query, convert.ApiQuery) {

	if idx < 0 || idx >= len(bar.tokens) {
		return bar.rebuild(ctx, "token removal ignored", "index", idx)
	}

	bar.tokens = append(bar.tokens[:idx], bar.tokens[idx+1:]...)
	return bar.rebuild(ctx, "token removed", "index", idx)
}

// RemoveAll clears the token list, keeping the operation.
func (bar *Bar) RemoveAll(ctx context.Context) (nt.Query, convert.ApiQuery) {

	bar.tokens = nil
	return bar.rebuild(ctx, "tokens cleared")
}

// SetOperation switches the boolean operation for the whole query.
func (bar *Bar) SetOperation(ctx context.Context, op nt.Operation) (nt.Query, convert.ApiQuery) {

	bar.operation = op
	return bar.rebuild(ctx, "operation set", "operation", op)
}

// Restore replaces the session's query from the wire shape, e.g. when a
// host reloads a persisted filter.
func (bar *Bar) Restore(ctx context.Context, api convert.ApiQuery) (nt.Query, convert.ApiQuery) {

	qry := bar.converter.FromApi(api)
	bar.tokens = qry.Tokens
	bar.operation = qry.Operation
	return bar.rebuild(ctx, "query restored", "count", len(qry.Tokens))
}

// rebuild resolves every token against the configured options, re-emits
// the full query in both forms, and logs the mutation. Every action is a
// full reconstruction; there is no incremental diffing.
func (bar *Bar) rebuild(ctx context.Context, msg string, kv ...any) (nt.Query, convert.ApiQuery) {

	for i, tkn := range bar.tokens {
		bar.tokens[i] = match.ValueOption(tkn, bar.config.Options)
	}

	qry := bar.Query()
	bar.logger.Info(ctx, msg, kv...)

	return qry, bar.converter.ToApi(qry)
}
