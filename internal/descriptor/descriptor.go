package descriptor

// MemberKind classifies a documented member of a component type.
type MemberKind string

const (
	KindProperty      MemberKind = "property"
	KindMethod        MemberKind = "method"
	KindField         MemberKind = "field"
	KindEvent         MemberKind = "event"
	KindGlobalSetting MemberKind = "globalSetting"
)

// Member is one documented member of a component type.
// Category is a curator-assigned label used when a section is rendered as a
// grouped table; it carries no meaning for global settings.
type Member struct {
	Name          string     `json:"name" yaml:"name"`
	Kind          MemberKind `json:"kind" yaml:"kind"`
	Category      string     `json:"category,omitempty" yaml:"category,omitempty"`
	DeclaringType string     `json:"declaring_type,omitempty" yaml:"declaringType,omitempty"`
	Type          string     `json:"type,omitempty" yaml:"type,omitempty"`
	Summary       string     `json:"summary,omitempty" yaml:"summary,omitempty"`
	Default       string     `json:"default,omitempty" yaml:"default,omitempty"`
}

// SeeAlsoLink is a name-based cross reference to another documented type.
// Targets are resolved lazily by the page layer and are not validated here.
type SeeAlsoLink struct {
	Target string `json:"target" yaml:"target"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty"`
}

// TypeDescriptor is the metadata record for one documented component type.
// It is built once per catalog load and never mutated afterwards, so
// concurrent page renders may share instances freely.
//
// BaseChain lists ancestor type names nearest-ancestor-first: index 0 is the
// direct base type, the root-most ancestor is last.
type TypeDescriptor struct {
	TypeName       string            `json:"type_name" yaml:"typeName"`
	Summary        string            `json:"summary,omitempty" yaml:"summary,omitempty"`
	Properties     []Member          `json:"properties,omitempty" yaml:"properties,omitempty"`
	Methods        []Member          `json:"methods,omitempty" yaml:"methods,omitempty"`
	Fields         []Member          `json:"fields,omitempty" yaml:"fields,omitempty"`
	Events         []Member          `json:"events,omitempty" yaml:"events,omitempty"`
	GlobalSettings []Member          `json:"global_settings,omitempty" yaml:"globalSettings,omitempty"`
	Children       []*TypeDescriptor `json:"-" yaml:"-"`
	Links          []SeeAlsoLink     `json:"links,omitempty" yaml:"links,omitempty"`
	BaseChain      []string          `json:"base_chain,omitempty" yaml:"baseChain,omitempty"`
}

// HasInheritance reports whether the type participates in inheritance at all.
// A leaf type with no ancestors and no known subtypes does not.
func (d *TypeDescriptor) HasInheritance() bool {
	return len(d.BaseChain) > 0 || len(d.Children) > 0
}
