// Package match holds the primitive string matchers the classifier and
// suggestion builder are built on. All of them are pure functions.
package match

import (
	"strings"

	nt "filterbar/entity"
)

// Property finds the property whose label is the longest prefix of text.
// Case-sensitive candidates are scanned first; a case-insensitive
// candidate wins only when it is strictly longer than the best
// case-sensitive one. Ties keep the first found.
func Property(properties []nt.Property, text string) (prop nt.Property, found bool) {

	best := 0
	for _, candidate := range properties {
		if len(candidate.Label) > best && strings.HasPrefix(text, candidate.Label) {
			prop = candidate
			best = len(candidate.Label)
			found = true
		}
	}

	for _, candidate := range properties {
		if len(candidate.Label) > best && hasPrefixFold(text, candidate.Label) {
			prop = candidate
			best = len(candidate.Label)
			found = true
		}
	}

	return
}

// Operator finds the longest operator symbol prefixing text, compared
// case-insensitively. Equal-length candidates keep the first found.
func Operator(operators []nt.Operator, text string) (op nt.Operator, found bool) {

	best := 0
	for _, candidate := range operators {
		if len(candidate) > best && hasPrefixFold(text, string(candidate)) {
			op = candidate
			best = len(candidate)
			found = true
		}
	}

	return
}

// OperatorPrefix reports whether text could be the start of one of the
// operators, returning text unchanged when it could. Blank text counts as
// an empty prefix: the position is plausible, nothing typed yet.
func OperatorPrefix(operators []nt.Operator, text string) (prefix string, ok bool) {

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", true
	}

	for _, candidate := range operators {
		if hasPrefixFold(string(candidate), trimmed) {
			return text, true
		}
	}

	return "", false
}

// ValueOption resolves a token's typed value against the options for its
// property. An exact match on an option's label (or value when unlabeled)
// returns immediately; a case-insensitive match is recorded and applied
// only after the whole list has been scanned without an exact hit.
// Unmatched values pass through unchanged.
func ValueOption(tkn nt.Token, options []nt.Option) nt.Token {

	fallback := ""
	haveFallback := false

	for _, opt := range options {
		if opt.PropertyKey != tkn.PropertyKey {
			continue
		}

		if opt.Display() == tkn.Value {
			tkn.Value = opt.Value
			return tkn
		}

		if !haveFallback && strings.EqualFold(opt.Display(), tkn.Value) {
			fallback = opt.Value
			haveFallback = true
		}
	}

	if haveFallback {
		tkn.Value = fallback
	}

	return tkn
}

func hasPrefixFold(text, prefix string) bool {
	return len(text) >= len(prefix) && strings.EqualFold(text[:len(prefix)], prefix)
}
