package model

import (
	"strconv"
	"strings"
)

// Inheritance is the access kind of a parent class.
type Inheritance int

const (
	InheritancePublic    Inheritance = iota // +
	InheritanceProtected                    // =
	InheritancePrivate                      // -
)

// Keyword returns the C++ access specifier for the inheritance kind.
func (i Inheritance) Keyword() string {
	switch i {
	case InheritancePublic:
		return "public"
	case InheritanceProtected:
		return "protected"
	case InheritancePrivate:
		return "private"
	}
	return ""
}

func (i Inheritance) String() string {
	if k := i.Keyword(); k != "" {
		return k
	}
	return "Inheritance(" + strconv.Itoa(int(i)) + ")"
}

// InheritanceFromSymbol maps a parent-spec symbol to its inheritance kind.
func InheritanceFromSymbol(r rune) (Inheritance, bool) {
	switch r {
	case '+':
		return InheritancePublic, true
	case '=':
		return InheritanceProtected, true
	case '-':
		return InheritancePrivate, true
	}
	return 0, false
}

// Parent is one inherited class, in declaration order.
type Parent struct {
	Name        string // identifier with every '?' removed
	Virtual     bool
	Inheritance Inheritance
	Position    int // ordinal among all parents of the declaration
}

// Attribute is one private data member. Accessor flags are shared by every
// attribute of the same attribute set.
type Attribute struct {
	Type   string // literal type token, unvalidated
	Getter bool
	Setter bool
	Index  int // unique across the whole class, assigned in creation order
}

// Name returns the member identifier: attr<index>, then _g and _s when the
// attribute has a getter and a setter.
func (a Attribute) Name() string {
	var sb strings.Builder
	sb.WriteString("attr")
	sb.WriteString(strconv.Itoa(a.Index))
	if a.Getter {
		sb.WriteString("_g")
	}
	if a.Setter {
		sb.WriteString("_s")
	}
	return sb.String()
}

// GetterName is the accessor name for the attribute.
func (a Attribute) GetterName() string { return "get_" + a.Name() }

// SetterName is the mutator name for the attribute.
func (a Attribute) SetterName() string { return "set_" + a.Name() }

// ParamName is the mutator parameter name for the attribute.
func (a Attribute) ParamName() string { return "new" + a.Name() }

// Class is the structured form of a shorthand description. It is built once
// by the parser and only read afterwards.
type Class struct {
	Name           string
	Template       bool
	Specialisation *string // set only for explicit specialisations
	Parents        []Parent
	Attributes     []Attribute
}

// IsSpecialisation reports whether the class is an explicit template specialisation.
func (c *Class) IsSpecialisation() bool {
	return c.Template && c.Specialisation != nil
}

// HeaderFile is the artifact name of the class header.
func (c *Class) HeaderFile() string { return c.Name + ".hpp" }

// SourceFile is the artifact name of the class source unit.
func (c *Class) SourceFile() string { return c.Name + ".cpp" }

// HasSource reports whether a separate source unit is produced for the class.
func (c *Class) HasSource() bool { return !c.Template }

// RequiresStdInclude reports whether any attribute type needs a standard
// library include.
func (c *Class) RequiresStdInclude() bool {
	for _, a := range c.Attributes {
		if _, ok := StdIncludes[a.Type]; ok {
			return true
		}
	}
	return false
}

// StdInclude describes the directives a recognised attribute type requires.
type StdInclude struct {
	Include string // e.g. #include <string>
	Using   string // e.g. using std::string;
}

// StdIncludes maps recognised attribute type spellings to their directives.
var StdIncludes = map[string]StdInclude{
	"string":      {Include: "#include <string>", Using: "using std::string;"},
	"std::string": {Include: "#include <string>", Using: "using std::string;"},
	"vector":      {Include: "#include <vector>", Using: "using std::vector;"},
	"std::vector": {Include: "#include <vector>", Using: "using std::vector;"},
}
