package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	nt "filterbar/entity"
	"filterbar/operator"
)

func newParser(freeText nt.FreeText) *Parser {

	properties := []nt.Property{
		{Key: "status", Label: "Status", Operators: []nt.Operator{"=", "!="}, DefaultOperator: "="},
		{Key: "name", Label: "Name", Operators: []nt.Operator{"=", "!="}, DefaultOperator: "="},
		{Key: "source", Label: "Source", Operators: []nt.Operator{"="}, DefaultOperator: "="},
		{Key: "source_ip", Label: "Source IP", Operators: []nt.Operator{"=", "!="}, DefaultOperator: "="},
	}

	return New(properties, freeText, operator.NewTable())
}

func TestText(t *testing.T) {

	freeText := nt.FreeText{Operators: []nt.Operator{":", "!:"}, DefaultOperator: ":"}
	psr := newParser(freeText)

	tests := []struct {
		name     string
		text     string
		expected Result
	}{
		{
			name: "property operator value",
			text: "Status = active",
			expected: Result{
				Step:        StepProperty,
				Operator:    "=",
				HasOperator: true,
				Value:       "active",
			},
		},
		{
			name: "longest property label wins",
			text: "Source IP = 10.0.0.1",
			expected: Result{
				Step:        StepProperty,
				Operator:    "=",
				HasOperator: true,
				Value:       "10.0.0.1",
			},
		},
		{
			name: "only one separator space stripped",
			text: "Status =  padded  value",
			expected: Result{
				Step:        StepProperty,
				Operator:    "=",
				HasOperator: true,
				Value:       " padded  value",
			},
		},
		{
			name: "no space after operator",
			text: "Status =active",
			expected: Result{
				Step:        StepProperty,
				Operator:    "=",
				HasOperator: true,
				Value:       "active",
			},
		},
		{
			name: "empty value",
			text: "Status = ",
			expected: Result{
				Step:        StepProperty,
				Operator:    "=",
				HasOperator: true,
				Value:       "",
			},
		},
		{
			name:     "partial operator",
			text:     "Name !",
			expected: Result{Step: StepOperator, Prefix: "!"},
		},
		{
			name:     "property alone waits for operator",
			text:     "Status",
			expected: Result{Step: StepOperator, Prefix: ""},
		},
		{
			name:     "property and spaces wait for operator",
			text:     "Status   ",
			expected: Result{Step: StepOperator, Prefix: ""},
		},
		{
			name:     "property then garbage falls back to free text",
			text:     "Status xyz",
			expected: Result{Step: StepFreeText, Value: "Status xyz"},
		},
		{
			name:     "plain free text",
			text:     "random text",
			expected: Result{Step: StepFreeText, Value: "random text"},
		},
		{
			name: "free text contains operator",
			text: ": foo",
			expected: Result{
				Step:        StepFreeText,
				Operator:    ":",
				HasOperator: true,
				Value:       "foo",
			},
		},
		{
			name: "free text does-not-contain operator",
			text: "!:baz",
			expected: Result{
				Step:        StepFreeText,
				Operator:    "!:",
				HasOperator: true,
				Value:       "baz",
			},
		},
		{
			name: "bang aliases does-not-contain",
			text: "!bar",
			expected: Result{
				Step:        StepFreeText,
				Operator:    "!:",
				HasOperator: true,
				Value:       "bar",
			},
		},
		{
			name: "bang with separator space",
			text: "! bar",
			expected: Result{
				Step:        StepFreeText,
				Operator:    "!:",
				HasOperator: true,
				Value:       "bar",
			},
		},
		{
			name:     "empty input",
			text:     "",
			expected: Result{Step: StepFreeText, Value: ""},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := psr.Text(tc.text)
			assert.Equal(t, tc.expected.Step, res.Step)
			assert.Equal(t, tc.expected.Operator, res.Operator)
			assert.Equal(t, tc.expected.HasOperator, res.HasOperator)
			assert.Equal(t, tc.expected.Prefix, res.Prefix)
			assert.Equal(t, tc.expected.Value, res.Value)
		})
	}
}

func TestTextPropertyIdentity(t *testing.T) {

	psr := newParser(nt.FreeText{Operators: []nt.Operator{":"}, DefaultOperator: ":"})

	res := psr.Text("Status = active")
	assert.Equal(t, StepProperty, res.Step)
	assert.Equal(t, "status", res.Property.Key)

	res = psr.Text("Name !")
	assert.Equal(t, StepOperator, res.Step)
	assert.Equal(t, "name", res.Property.Key)
}

func TestTextFreeTextDisabled(t *testing.T) {

	psr := newParser(nt.FreeText{Disabled: true, Operators: []nt.Operator{":", "!:"}})

	res := psr.Text("!bar")
	assert.Equal(t, StepFreeText, res.Step)
	assert.False(t, res.HasOperator)
	assert.Equal(t, "!bar", res.Value)
}

func TestTextBangWithoutNotContains(t *testing.T) {

	// bare bang only aliases when "!:" is configured
	psr := newParser(nt.FreeText{Operators: []nt.Operator{":"}, DefaultOperator: ":"})

	res := psr.Text("!bar")
	assert.Equal(t, StepFreeText, res.Step)
	assert.False(t, res.HasOperator)
	assert.Equal(t, "!bar", res.Value)
}

func TestStepString(t *testing.T) {

	assert.Equal(t, "property", StepProperty.String())
	assert.Equal(t, "operator", StepOperator.String())
	assert.Equal(t, "free-text", StepFreeText.String())
}
