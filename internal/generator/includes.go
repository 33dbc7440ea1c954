package generator

import (
	"slices"

	"github.com/cmmoran/emmetcpp/internal/model"
)

// inclusions returns the include and using directives required by the class
// attributes, each once, in order of first use.
func inclusions(c *model.Class) (includes []string, usings []string) {
	if !c.RequiresStdInclude() {
		return nil, nil
	}
	for _, a := range c.Attributes {
		inc, ok := model.StdIncludes[a.Type]
		if !ok {
			continue
		}
		if !slices.Contains(includes, inc.Include) {
			includes = append(includes, inc.Include)
		}
		if !slices.Contains(usings, inc.Using) {
			usings = append(usings, inc.Using)
		}
	}
	return includes, usings
}
