// Package cppgen turns an emmet-style shorthand description into the text of
// a C++ class: a header and, for non-template classes, a source unit.
//
//	Animal:2int:gs1string      class Animal with two ints and a string with accessors
//	Shape+Base=?Interface      public Base, virtual protected Interface
//	Box<>:1int                 template <typename T>
//	Box<Foo>:1int              template <> class Box<Foo>
package cppgen

import (
	"github.com/cmmoran/emmetcpp/internal/generator"
	"github.com/cmmoran/emmetcpp/internal/model"
	"github.com/cmmoran/emmetcpp/internal/parser"
)

type (
	Class    = model.Class
	Artifact = generator.Artifact
	Output   = generator.Output
)

// Result is a parsed class and its rendered artifacts.
type Result struct {
	Description string
	Class       *Class
	Output      *Output
}

// Render parses description and renders its artifacts in memory. Grammar and
// integrity faults are returned unchanged.
func Render(description string) (*Result, error) {
	c, err := parser.Parse(description)
	if err != nil {
		return nil, err
	}
	out, err := generator.Generate(c)
	if err != nil {
		return nil, err
	}
	return &Result{Description: description, Class: c, Output: out}, nil
}
