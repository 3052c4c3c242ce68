package entity

// Operator is a comparison operator symbol as typed in the bar.
type Operator string

const (
	Eq            Operator = "="
	Ne            Operator = "!="
	Contains      Operator = ":"
	NotContains   Operator = "!:"
	StartsWith    Operator = "^"
	NotStartsWith Operator = "!^"
	Gte           Operator = ">="
	Lte           Operator = "<="
	Lt            Operator = "<"
	Gt            Operator = ">"
)

// Operation combines all tokens of a query.
type Operation string

const (
	And Operation = "and"
	Or  Operation = "or"
)
