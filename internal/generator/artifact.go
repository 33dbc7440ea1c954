package generator

import "strings"

// Artifact is one generated file: its name and its lines. The text is the
// lines joined by newlines, so a trailing empty line ends the text with a newline.
type Artifact struct {
	Name  string
	Lines []string
}

func (a *Artifact) Text() string {
	return strings.Join(a.Lines, "\n")
}

func (a *Artifact) Bytes() []byte {
	return []byte(a.Text())
}

// Output is the result of generating one class.
type Output struct {
	Header *Artifact
	Source *Artifact // nil for template classes
}

// Artifacts returns the produced artifacts in write order.
func (o *Output) Artifacts() []*Artifact {
	if o.Source == nil {
		return []*Artifact{o.Header}
	}
	return []*Artifact{o.Header, o.Source}
}
