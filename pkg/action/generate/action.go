package generate

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/cmmoran/emmetcpp/pkg/cppgen"
	"github.com/cmmoran/emmetcpp/pkg/manifest"
)

// ErrExists is returned in create mode when an artifact is already on disk.
var ErrExists = errors.New("artifact already exists")

// Report lists what a Generate call wrote.
type Report struct {
	Result   *cppgen.Result
	Files    []string
	Manifest string // "" when no manifest was written
}

// Generate renders description and writes its artifacts to opts.OutDir.
// Both artifacts are rendered before anything is written, and in create mode
// every target is checked before the first write.
func Generate(description string, opts *cppgen.Options) (*Report, error) {
	if err := opts.Normalize(); err != nil {
		return nil, err
	}

	res, err := cppgen.Render(description)
	if err != nil {
		return nil, err
	}
	artifacts := res.Output.Artifacts()

	if err = os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create output directory %s", opts.OutDir)
	}

	mode := opts.Mode()
	if mode == cppgen.ModeCreate {
		for _, a := range artifacts {
			path := filepath.Join(opts.OutDir, a.Name)
			if _, err := os.Stat(path); err == nil {
				return nil, errors.WithHint(errors.Wrap(ErrExists, path), "use --override to replace it or --append to add to it")
			}
		}
	}

	report := &Report{Result: res}
	for _, a := range artifacts {
		path := filepath.Join(opts.OutDir, a.Name)
		if err = write(path, a.Bytes(), mode); err != nil {
			return report, err
		}
		slog.Debug("wrote artifact", "file", path, "mode", mode, "bytes", len(a.Bytes()))
		report.Files = append(report.Files, path)
	}

	if mp := opts.ManifestPath(); mp != "" {
		m, err := manifest.Load(mp)
		if err != nil {
			return report, err
		}
		entry := manifest.Entry{
			Name:        res.Class.Name,
			Description: description,
			Header:      res.Output.Header.Name,
			Template:    res.Class.Template,
		}
		if res.Output.Source != nil {
			entry.Source = res.Output.Source.Name
		}
		m.Record(entry)
		if err = m.Save(mp); err != nil {
			return report, err
		}
		report.Manifest = mp
	}

	slog.Info("generated class", "class", res.Class.Name, "files", report.Files)
	return report, nil
}

func write(path string, data []byte, mode cppgen.Mode) error {
	flags := os.O_CREATE | os.O_WRONLY
	switch mode {
	case cppgen.ModeAppend:
		flags |= os.O_APPEND
	case cppgen.ModeOverride:
		flags |= os.O_TRUNC
	default:
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
