package parser

import (
	"strings"

	"github.com/cmmoran/emmetcpp/internal/fault"
	"github.com/cmmoran/emmetcpp/internal/model"
)

// Parser holds the state of a single description parse.
type Parser struct {
	Description string

	// nextIndex is the attribute sequence counter. It is shared by every
	// attribute-set segment of the description and never reset.
	nextIndex int
}

// New creates a parser for one shorthand description.
func New(description string) *Parser {
	return &Parser{Description: description}
}

// Parse is shorthand for New(description).Parse().
func Parse(description string) (*model.Class, error) {
	return New(description).Parse()
}

// Parse turns the description into a class model. Any grammar fault aborts
// the parse; no partial model is returned.
func (p *Parser) Parse() (*model.Class, error) {
	if p.Description == "" {
		return nil, fault.Grammarf("empty description")
	}
	p.nextIndex = 0

	segments := splitSegments(p.Description)
	declaration, attributeSets := segments[0], segments[1:]

	c := &model.Class{}
	var err error
	if c.Name, err = parseName(declaration); err != nil {
		return nil, err
	}
	if c.Template, c.Specialisation, err = parseTemplate(declaration); err != nil {
		return nil, err
	}
	if c.Parents, err = parseParents(declaration, c.Name, c.Template); err != nil {
		return nil, err
	}
	for _, set := range attributeSets {
		if c.Attributes, err = p.parseAttributeSet(set, c.Attributes); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// splitSegments splits the description on single colons. A doubled colon is
// a scope operator inside an attribute type (std::string) and is kept.
func splitSegments(desc string) []string {
	segments := make([]string, 0, strings.Count(desc, ":")+1)
	start := 0
	for i := 0; i < len(desc); i++ {
		if desc[i] != ':' {
			continue
		}
		if i+1 < len(desc) && desc[i+1] == ':' {
			i++
			continue
		}
		segments = append(segments, desc[start:i])
		start = i + 1
	}
	return append(segments, desc[start:])
}

func isIdentByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// parseName returns the maximal leading run of identifier characters.
func parseName(declaration string) (string, error) {
	end := 0
	for end < len(declaration) && isIdentByte(declaration[end]) {
		end++
	}
	if end == 0 {
		return "", fault.Grammarf("declaration %q does not start with a class name", declaration)
	}
	return declaration[:end], nil
}

// parseTemplate detects template brackets by presence alone. The text between
// the first '<' and the first '>' is the specialisation; blank means generic.
func parseTemplate(declaration string) (bool, *string, error) {
	open := strings.IndexByte(declaration, '<')
	closing := strings.IndexByte(declaration, '>')
	if open < 0 || closing < 0 {
		return false, nil, nil
	}
	if closing < open {
		return false, nil, fault.Grammarf("template brackets in %q are out of order", declaration)
	}
	spec := strings.TrimSpace(declaration[open+1 : closing])
	if spec == "" {
		return true, nil, nil
	}
	return true, &spec, nil
}

const parentSymbols = "+=-"

// parseParents reads the parent specs that follow the class name and an
// optional template bracket. Each spec runs from its symbol to the next
// symbol or the end of the declaration.
func parseParents(declaration, name string, template bool) ([]model.Parent, error) {
	// whitespace around the template bracket and before the first parent is ignored
	rest := strings.TrimLeft(declaration[len(name):], " \t")
	if template && strings.HasPrefix(rest, "<") {
		rest = strings.TrimLeft(declaration[strings.IndexByte(declaration, '>')+1:], " \t")
	}
	if rest == "" {
		return nil, nil
	}
	if !strings.ContainsRune(parentSymbols, rune(rest[0])) {
		return nil, fault.Grammarf("unrecognized inheritance symbol %q in %q", rest[0], declaration)
	}

	starts := make([]int, 0, 4)
	for i := 0; i < len(rest); i++ {
		if strings.IndexByte(parentSymbols, rest[i]) >= 0 {
			starts = append(starts, i)
		}
	}

	parents := make([]model.Parent, 0, len(starts))
	for i, start := range starts {
		end := len(rest)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		inheritance, ok := model.InheritanceFromSymbol(rune(rest[start]))
		if !ok {
			return nil, fault.Grammarf("unrecognized inheritance symbol %q in %q", rest[start], declaration)
		}
		section := rest[start+1 : end]
		parentName := strings.ReplaceAll(section, "?", "")
		if parentName == "" {
			return nil, fault.Grammarf("parent %d in %q has no name", i, declaration)
		}
		parents = append(parents, model.Parent{
			Name:        parentName,
			Virtual:     strings.Contains(section, "?"),
			Inheritance: inheritance,
			Position:    i,
		})
	}

	return parents, nil
}
