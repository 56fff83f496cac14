// File: lixenwraith/parseit/builder.go
package parseit

import (
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Builder provides a fluent interface for building resolvers
type Builder struct {
	opts Options
}

// NewBuilder creates a new resolver builder starting from DefaultOptions
func NewBuilder() *Builder {
	return &Builder{
		opts: DefaultOptions(),
	}
}

// WithPriority sets the lookup order for configuration sources.
// Calling it with no sources leaves nothing to search: every key resolves
// to its default.
func (b *Builder) WithPriority(sources ...Source) *Builder {
	b.opts.Priority = append([]Source{}, sources...)
	return b
}

// WithGlobalDefault sets the value returned for keys nothing defines
func (b *Builder) WithGlobalDefault(v any) *Builder {
	b.opts.GlobalDefault = v
	return b
}

// WithTypeEstimate toggles conversion of string values to scalars
func (b *Builder) WithTypeEstimate(enabled bool) *Builder {
	b.opts.TypeEstimate = enabled
	return b
}

// WithRecurse toggles scanning subfolders of the config folder
func (b *Builder) WithRecurse(enabled bool) *Builder {
	b.opts.Recurse = enabled
	return b
}

// WithForceEnvUppercase toggles uppercasing of env var names
func (b *Builder) WithForceEnvUppercase(enabled bool) *Builder {
	b.opts.ForceEnvUppercase = enabled
	return b
}

// WithFolder sets the folder scanned for config files
func (b *Builder) WithFolder(path string) *Builder {
	b.opts.Folder = path
	return b
}

// WithEnvPrefix sets the environment variable prefix
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.opts.EnvPrefix = prefix
	return b
}

// WithArgs sets the command-line arguments
func (b *Builder) WithArgs(args []string) *Builder {
	b.opts.Args = args
	return b
}

// WithFs sets the filesystem used for discovery and reads
func (b *Builder) WithFs(fs afero.Fs) *Builder {
	b.opts.Fs = fs
	return b
}

// WithLogger sets the logger for discovery and resolution debug output
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.opts.Logger = logger
	return b
}

// WithFileCache toggles caching of parsed file contents
func (b *Builder) WithFileCache(enabled bool) *Builder {
	b.opts.CacheFiles = enabled
	return b
}

// Options returns the options collected so far
func (b *Builder) Options() Options {
	return b.opts
}

// Build creates the Resolver with all specified options
func (b *Builder) Build() (*Resolver, error) {
	return New(b.opts)
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Resolver {
	r, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("resolver build failed: %v", err))
	}
	return r
}
