package entity

// Option is a concrete suggested value for a property.
type Option struct {
	PropertyKey string     `yaml:"property"`
	Value       string     `yaml:"value"`
	Label       string     `yaml:"label,omitempty"`
	Nested      *NestedSet `yaml:"nested,omitempty"`
}

// Display is the option's label when it has one, else its raw value.
func (opt Option) Display() string {

	if opt.Label != "" {
		return opt.Label
	}
	return opt.Value
}

// NestedSet is a follow-up choice offered immediately after an option is
// selected, e.g. a protocol value that branches into sub-types.
type NestedSet struct {
	Label   string   `yaml:"label"`
	Options []Option `yaml:"options"`
}
