package cppgen

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// Mode controls how existing artifacts are treated when writing.
type Mode string

const (
	ModeCreate   Mode = "create"   // refuse to touch existing files
	ModeOverride Mode = "override" // truncate and rewrite existing files
	ModeAppend   Mode = "append"   // append to existing files
)

// DefaultManifest is the manifest file name, relative to OutDir.
const DefaultManifest = ".emmetcpp.yaml"

// Options control where and how generated artifacts are written.
//
// OutDir    – directory the artifacts are written to.
// Override  – truncate existing artifacts.
// Append    – append to existing artifacts.
// Manifest  – manifest file, relative to OutDir unless absolute; "-" disables it.
// Note: Override and Append are mutually exclusive.
type Options struct {
	OutDir   string `json:"out_dir,omitempty" yaml:"out_dir,omitempty" toml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	Override bool   `json:"override,omitempty" yaml:"override,omitempty" toml:"override,omitempty" mapstructure:"override,omitempty"`
	Append   bool   `json:"append,omitempty" yaml:"append,omitempty" toml:"append,omitempty" mapstructure:"append,omitempty"`
	Manifest string `json:"manifest,omitempty" yaml:"manifest,omitempty" toml:"manifest,omitempty" mapstructure:"manifest,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		OutDir:   ".",
		Manifest: DefaultManifest,
	}
}

// ErrConflictingModes is returned by Normalize when both Override and Append are set.
var ErrConflictingModes = errors.New("override and append are mutually exclusive")

func (o *Options) Normalize() error {
	if o.Override && o.Append {
		return errors.WithHint(ErrConflictingModes, "pass at most one of --override and --append")
	}
	if len(o.OutDir) == 0 {
		o.OutDir = "."
	}
	o.OutDir = filepath.Clean(o.OutDir)
	if len(o.Manifest) == 0 {
		o.Manifest = DefaultManifest
	}
	return nil
}

// Mode reports the write mode selected by the flags.
func (o *Options) Mode() Mode {
	switch {
	case o.Override:
		return ModeOverride
	case o.Append:
		return ModeAppend
	}
	return ModeCreate
}

// ManifestPath is the resolved manifest location, or "" when disabled.
func (o *Options) ManifestPath() string {
	if o.Manifest == "-" {
		return ""
	}
	if filepath.IsAbs(o.Manifest) {
		return o.Manifest
	}
	return filepath.Join(o.OutDir, o.Manifest)
}

// ParseMode converts a configured mode name into flag values.
func ParseMode(s string) (override, appendMode bool, err error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeCreate:
		return false, false, nil
	case ModeOverride:
		return true, false, nil
	case ModeAppend:
		return false, true, nil
	}
	return false, false, errors.Newf("unknown write mode %q", s)
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithOutDir(d string) Option   { return func(o *Options) { o.OutDir = d } }
func WithManifest(f string) Option { return func(o *Options) { o.Manifest = f } }
func WithoutManifest() Option      { return func(o *Options) { o.Manifest = "-" } }
func WithOverride() Option {
	return func(o *Options) { o.Override = true }
}
func WithAppend() Option {
	return func(o *Options) { o.Append = true }
}
