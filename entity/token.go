package entity

// Token is one atomic filter condition. An empty PropertyKey means free
// text searched across all fields, in which case the operator comes from
// the free-text set. Tokens are replaced at an index, never edited.
type Token struct {
	PropertyKey string
	Operator    Operator
	Value       string
}

// NodeKind discriminates TokenNode variants.
type NodeKind int

const (
	SimpleNode NodeKind = iota
	GroupNode
)

// TokenNode is either a simple token or a legacy one-level group carrying
// its own operation. Groups survive only long enough to be flattened.
type TokenNode struct {
	Kind      NodeKind
	Token     Token
	Tokens    []Token
	Operation Operation
}

// NewSimpleNode wraps a token.
func NewSimpleNode(tkn Token) TokenNode {
	return TokenNode{Kind: SimpleNode, Token: tkn}
}

// NewGroupNode wraps a token list with its operation.
func NewGroupNode(op Operation, tkns []Token) TokenNode {
	return TokenNode{Kind: GroupNode, Tokens: tkns, Operation: op}
}

// Query is the internal form: an ordered token list with one operation
// applying uniformly to every token.
type Query struct {
	Tokens    []Token
	Operation Operation
}
