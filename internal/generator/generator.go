// Package generator renders a class model into C++ header and source text.
//
// Generation is deterministic and never mutates the model. Template classes
// produce a header with include guards and inline accessor definitions and no
// source unit; other classes produce a header with declarations only and a
// source unit holding the qualified definitions.
package generator

import (
	"strings"

	"github.com/cmmoran/emmetcpp/internal/fault"
	"github.com/cmmoran/emmetcpp/internal/model"
)

type Generator struct {
	Class *model.Class
}

func New(c *model.Class) *Generator {
	return &Generator{Class: c}
}

// Generate renders both artifacts of c. Nothing is returned unless every
// artifact rendered completely.
func Generate(c *model.Class) (*Output, error) {
	g := New(c)
	header, err := g.Header()
	if err != nil {
		return nil, err
	}
	source, err := g.Source()
	if err != nil {
		return nil, err
	}
	return &Output{Header: header, Source: source}, nil
}

// Header renders <Name>.hpp.
func (g *Generator) Header() (*Artifact, error) {
	c := g.Class
	templateLine, classLines, err := g.classDeclaration()
	if err != nil {
		return nil, err
	}
	methods, err := g.methodDeclarations(g.methodDefinitions())
	if err != nil {
		return nil, err
	}
	includes, usings := inclusions(c)

	lines := make([]string, 0, 16+len(c.Attributes)*2+len(methods))
	if c.Template {
		guard := includeGuardName(c)
		lines = append(lines, "#ifndef "+guard, "#define "+guard, "")
	}
	lines = append(lines, includes...)
	lines = append(lines, usings...)
	lines = append(lines, "")
	if templateLine != "" {
		lines = append(lines, templateLine)
	}
	lines = append(lines, classLines...)

	lines = append(lines, "private:")
	lines = append(lines, g.attributeDeclarations()...)
	lines = append(lines, "", "public:")
	lines = append(lines, methods...)
	lines = append(lines, "};", "")
	if c.Template {
		lines = append(lines, "#endif")
	} else {
		lines = append(lines, "")
	}

	return &Artifact{Name: c.HeaderFile(), Lines: lines}, nil
}

// Source renders <Name>.cpp. Template classes have no source unit and
// return a nil artifact.
func (g *Generator) Source() (*Artifact, error) {
	c := g.Class
	if !c.HasSource() {
		return nil, nil
	}
	definitions, err := g.sourceDefinitions(g.methodDefinitions())
	if err != nil {
		return nil, err
	}
	_, usings := inclusions(c)

	lines := []string{`#include "` + c.HeaderFile() + `"`, ""}
	lines = append(lines, usings...)
	lines = append(lines, "")
	for _, def := range definitions {
		lines = append(lines, def...)
		lines = append(lines, "")
	}
	lines = append(lines, "")

	return &Artifact{Name: c.SourceFile(), Lines: lines}, nil
}

func includeGuardName(c *model.Class) string {
	return strings.ToUpper(c.Name) + "_HPP"
}

// classDeclaration returns the template line (empty for non-templates) and
// the class line followed by its opening brace. Parent positions are checked
// against their order on every call.
func (g *Generator) classDeclaration() (string, []string, error) {
	c := g.Class
	var templateLine string
	if c.Template {
		if c.Specialisation != nil {
			templateLine = "template <>"
		} else {
			templateLine = "template <typename T>"
		}
	}

	var sb strings.Builder
	sb.WriteString("class ")
	sb.WriteString(c.Name)
	if c.IsSpecialisation() {
		sb.WriteString("<" + *c.Specialisation + ">")
	}
	if len(c.Parents) > 0 {
		sb.WriteString(" : ")
		for i, p := range c.Parents {
			if p.Position != i {
				return "", nil, fault.Integrityf("parent class %s is declared at position %d but found at index %d", p.Name, p.Position, i)
			}
			keyword := p.Inheritance.Keyword()
			if keyword == "" {
				return "", nil, fault.Integrityf("parent class %s has unknown inheritance %s", p.Name, p.Inheritance)
			}
			if i > 0 {
				sb.WriteString(", ")
			}
			if p.Virtual {
				sb.WriteString("virtual ")
			}
			sb.WriteString(keyword + " " + p.Name)
		}
	}

	return templateLine, []string{sb.String(), "{"}, nil
}

func (g *Generator) attributeDeclarations() []string {
	lines := make([]string, 0, len(g.Class.Attributes))
	for _, a := range g.Class.Attributes {
		lines = append(lines, "\t"+a.Type+" "+a.Name()+";")
	}
	return lines
}

// methodDefinitions returns the body of every accessor keyed by method name,
// braces included.
func (g *Generator) methodDefinitions() map[string][]string {
	defs := make(map[string][]string)
	for _, a := range g.Class.Attributes {
		name := a.Name()
		if a.Getter {
			defs[a.GetterName()] = []string{"{", "\treturn " + name + ";", "}"}
		}
		if a.Setter {
			defs[a.SetterName()] = []string{"{", "\t" + name + " = " + a.ParamName() + ";", "}"}
		}
	}
	return defs
}

// accessor is one getter or setter signature.
type accessor struct {
	name      string
	signature func(qualifier string) string
}

func accessorsOf(a model.Attribute) []accessor {
	out := make([]accessor, 0, 2)
	if a.Getter {
		out = append(out, accessor{
			name: a.GetterName(),
			signature: func(q string) string {
				return a.Type + " " + q + a.GetterName() + "() const"
			},
		})
	}
	if a.Setter {
		out = append(out, accessor{
			name: a.SetterName(),
			signature: func(q string) string {
				return "void " + q + a.SetterName() + "(const " + a.Type + " &" + a.ParamName() + ")"
			},
		})
	}
	return out
}

// methodDeclarations renders the public section. Templates get their
// definitions from defs inline; other classes get declarations only.
func (g *Generator) methodDeclarations(defs map[string][]string) ([]string, error) {
	c := g.Class

	lines := make([]string, 0, len(c.Attributes)*2)
	for _, a := range c.Attributes {
		for _, acc := range accessorsOf(a) {
			decl := "\t" + acc.signature("")
			if !c.Template {
				lines = append(lines, decl+";")
				continue
			}
			body, ok := defs[acc.name]
			if !ok {
				return nil, fault.Integrityf("method definition for %s not found", acc.name)
			}
			lines = append(lines, decl)
			for i, l := range body {
				if i == len(body)-1 {
					l += ";"
				}
				lines = append(lines, "\t"+l)
			}
		}
	}
	return lines, nil
}

// sourceDefinitions renders one qualified definition per accessor, taking
// the bodies from defs.
func (g *Generator) sourceDefinitions(defs map[string][]string) ([][]string, error) {
	c := g.Class
	qualifier := c.Name + "::"

	out := make([][]string, 0, len(defs))
	for _, a := range c.Attributes {
		for _, acc := range accessorsOf(a) {
			body, ok := defs[acc.name]
			if !ok {
				return nil, fault.Integrityf("method definition for %s not found", acc.name)
			}
			def := make([]string, 0, len(body)+1)
			def = append(def, acc.signature(qualifier))
			def = append(def, body...)
			def[len(def)-1] += ";"
			out = append(out, def)
		}
	}
	return out, nil
}
