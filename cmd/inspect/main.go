package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"filterbar"
	nt "filterbar/entity"
	"filterbar/parse"
	"filterbar/util"
)

// Simple logger that prints to stdout
type simpleLogger struct{}

func (l *simpleLogger) Info(ctx context.Context, msg string, kv ...any) {
	fmt.Printf("[INFO] %s %v\n", msg, kv)
}

func (l *simpleLogger) Error(ctx context.Context, msg string, err error, kv ...any) {
	fmt.Printf("[ERROR] %s: %v %v\n", msg, err, kv)
}

func main() {

	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <config.yml> <filter text> [more filter text ...]\n", os.Args[0])
		os.Exit(1)
	}

	cfg := &filterbar.Config{}
	if err := util.LoadConfig(cfg, os.Args[1]); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	bar, err := cfg.New(&simpleLogger{})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	for _, text := range os.Args[2:] {
		inspect(ctx, bar, text)
	}

	api := bar.Api()
	data, err := json.MarshalIndent(api, "", "  ")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nwire format:\n%s\n", data)
}

// inspect classifies one input, reporting the verdict and adding a token
// when one can be materialized.
func inspect(ctx context.Context, bar *filterbar.Bar, text string) {

	res := bar.Parse(text)
	fmt.Printf("%-24q -> %s", text, res.Step)

	switch res.Step {

	case parse.StepProperty:
		fmt.Printf("  property=%s operator=%q value=%q\n", res.Property.Key, res.Operator, res.Value)

		tkn := nt.Token{PropertyKey: res.Property.Key, Operator: res.Operator, Value: res.Value}
		verdict := bar.Validate(tkn)
		if !verdict.Valid {
			fmt.Printf("  invalid value: %s\n", verdict.Message)
			return
		}
		if verdict.Normalized != "" {
			tkn.Value = verdict.Normalized
		}
		bar.AddToken(ctx, tkn)

	case parse.StepOperator:
		fmt.Printf("  property=%s prefix=%q\n", res.Property.Key, res.Prefix)

	default:
		if res.HasOperator {
			fmt.Printf("  operator=%q value=%q\n", res.Operator, res.Value)
		} else {
			fmt.Printf("  value=%q\n", res.Value)
		}
		if res.Value != "" {
			op := res.Operator
			if !res.HasOperator {
				op = nt.Contains
			}
			bar.AddToken(ctx, nt.Token{Operator: op, Value: res.Value})
		}
	}
}
