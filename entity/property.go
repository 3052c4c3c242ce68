package entity

// Property describes one filterable field.
// Hidden properties never show up in suggestions; they can only enter a
// query as a token constructed by the host.
type Property struct {
	Key             string     `yaml:"key"`
	Label           string     `yaml:"label"`
	Operators       []Operator `yaml:"operators"`
	DefaultOperator Operator   `yaml:"default_operator,omitempty"`
	Validation      string     `yaml:"validation,omitempty"`
	ValuesLabel     string     `yaml:"values_label,omitempty"`
	Hidden          bool       `yaml:"hidden,omitempty"`

	// Formatters render a suggested value for display, keyed by operator.
	Formatters map[Operator]func(string) string `yaml:"-"`
}

// FreeText configures filtering without a property name.
type FreeText struct {
	Disabled        bool       `yaml:"disabled,omitempty"`
	Operators       []Operator `yaml:"operators"`
	DefaultOperator Operator   `yaml:"default_operator,omitempty"`
}
