package diff

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"

	"github.com/cmmoran/emmetcpp/pkg/cppgen"
	"github.com/cmmoran/emmetcpp/pkg/manifest"
)

// FileDiff is the difference between an artifact on disk and its freshly
// generated text. A missing file compares as empty.
type FileDiff struct {
	Path    string
	Missing bool
	Diff    string // cmp.Diff(existing, generated); "" when identical
}

func (d FileDiff) Changed() bool {
	return d.Diff != ""
}

// Report is the outcome of a diff run.
type Report struct {
	Class string
	// Previous is the description recorded in the manifest for Class, "" when
	// the class was never recorded or the manifest is disabled.
	Previous string
	Files    []FileDiff
}

// Generate renders description in memory and diffs every artifact against
// the matching file in opts.OutDir. Nothing is written.
func Generate(description string, opts *cppgen.Options) (*Report, error) {
	if err := opts.Normalize(); err != nil {
		return nil, err
	}
	res, err := cppgen.Render(description)
	if err != nil {
		return nil, err
	}

	report := &Report{Class: res.Class.Name}
	if mp := opts.ManifestPath(); mp != "" {
		m, err := manifest.Load(mp)
		if err != nil {
			return nil, err
		}
		if e, ok := m.Find(res.Class.Name); ok {
			report.Previous = e.Description
		}
	}

	artifacts := res.Output.Artifacts()
	report.Files = make([]FileDiff, 0, len(artifacts))
	for _, a := range artifacts {
		path := filepath.Join(opts.OutDir, a.Name)
		d := FileDiff{Path: path}

		existing, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			d.Missing = true
		case err != nil:
			return nil, errors.Wrapf(err, "read %s", path)
		}

		d.Diff = cmp.Diff(string(existing), a.Text())
		report.Files = append(report.Files, d)
	}

	return report, nil
}
