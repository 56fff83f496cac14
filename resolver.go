// FILE: lixenwraith/parseit/resolver.go
package parseit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Resolver looks up flat configuration keys across command-line arguments,
// environment variables and config files, in priority order.
// Files are discovered once in New and read again on every lookup unless
// file caching is enabled. A Resolver is safe for concurrent use.
type Resolver struct {
	opts     Options
	priority []Source
	files    FileIndex
	args     cliArgs
	fs       afero.Fs
	logger   *zap.Logger
	cache    *fileCache
}

// Result describes where a key was found
type Result struct {
	// Value is the raw value as the source reported it, before type estimation
	Value any
	// Source is the priority entry that supplied the value
	Source Source
	// Origin is the flag name, env var name, or file path relative to the folder
	Origin string
	// Found is false when no source defines the key
	Found bool
}

// New creates a Resolver and scans the config folder for files of every
// file type named in the priority list.
func New(opts Options) (*Resolver, error) {
	if opts.Priority == nil {
		opts.Priority = DefaultPriority()
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Args == nil {
		opts.Args = os.Args[1:]
	}
	if opts.Folder == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("%w: cannot determine working directory: %w", ErrFolderNotFound, err)
		}
		opts.Folder = cwd
	}

	// Detach from caller-owned slices
	opts.Priority = slices.Clone(opts.Priority)
	opts.Args = slices.Clone(opts.Args)

	args, skipped := parseArgs(opts.Args)

	var fileTypes []Source
	for _, src := range opts.Priority {
		if src.IsFile() && !slices.Contains(fileTypes, src) {
			fileTypes = append(fileTypes, src)
		}
	}

	files, err := discoverFiles(opts.Fs, opts.Folder, fileTypes, opts.Recurse)
	if err != nil {
		return nil, err
	}

	r := &Resolver{
		opts:     opts,
		priority: opts.Priority,
		files:    files,
		args:     args,
		fs:       opts.Fs,
		logger:   opts.Logger,
	}
	if opts.CacheFiles {
		r.cache = newFileCache()
	}

	if len(skipped) > 0 {
		r.logger.Debug("command-line flags ignored",
			zap.Strings("args", skipped),
		)
	}

	r.logger.Debug("config files discovered",
		zap.String("folder", opts.Folder),
		zap.Bool("recurse", opts.Recurse),
		zap.Int("files", files.Count()),
		zap.Int("cli_flags", len(args)),
	)

	return r, nil
}

// resolveConfig holds per-call resolution settings
type resolveConfig struct {
	defaultValue any
	required     bool
}

// ResolveOption adjusts a single Resolve call
type ResolveOption func(*resolveConfig)

// WithDefault sets the value returned when no source defines the key.
// A nil default is the same as none: the global default applies.
func WithDefault(v any) ResolveOption {
	return func(c *resolveConfig) {
		c.defaultValue = v
	}
}

// Required makes a missing key an error. Defaults are ignored.
func Required() ResolveOption {
	return func(c *resolveConfig) {
		c.required = true
	}
}

// Resolve returns the value of key from the highest priority source that
// defines it. Missing keys fall back to the call default, then the global
// default, unless Required is given. With type estimation enabled the
// result passes through EstimateType, defaults included.
func (r *Resolver) Resolve(key string, opts ...ResolveOption) (any, error) {
	var rc resolveConfig
	for _, opt := range opts {
		opt(&rc)
	}

	res, err := r.Lookup(key)
	if err != nil {
		return nil, err
	}

	value := res.Value
	if !res.Found {
		if rc.required {
			return nil, fmt.Errorf("%w: %q", ErrMissingRequired, key)
		}
		if rc.defaultValue != nil {
			value = rc.defaultValue
		} else {
			value = r.opts.GlobalDefault
		}
	}

	if r.opts.TypeEstimate {
		value = EstimateType(value)
	}

	return value, nil
}

// MustResolve is like Resolve but panics on error
func (r *Resolver) MustResolve(key string, opts ...ResolveOption) any {
	v, err := r.Resolve(key, opts...)
	if err != nil {
		panic(fmt.Sprintf("config resolve failed: %v", err))
	}
	return v
}

// Lookup walks the priority list and reports the first source defining key.
// The value is raw: no defaults and no type estimation. A key present with
// an empty or null value counts as found.
func (r *Resolver) Lookup(key string) (Result, error) {
	var res Result
	err := r.walk(key, func(found Result) bool {
		res = found
		return false
	})
	if err != nil {
		return Result{}, err
	}

	if res.Found {
		r.logger.Debug("config key resolved",
			zap.String("key", key),
			zap.String("source", string(res.Source)),
			zap.String("origin", res.Origin),
		)
	} else {
		r.logger.Debug("config key not found", zap.String("key", key))
	}
	return res, nil
}

// walk visits every source defining key in priority order until visit
// returns false. Within one file type, files are visited in index order.
func (r *Resolver) walk(key string, visit func(Result) bool) error {
	if key == "" {
		return fmt.Errorf("%w: key cannot be empty", ErrInvalidKey)
	}

	for _, src := range r.priority {
		switch {
		case src == SourceCLI:
			if v, ok := r.args.lookup(key); ok {
				if !visit(Result{Value: v, Source: SourceCLI, Origin: key, Found: true}) {
					return nil
				}
			}

		case src.isEnv():
			name, v, ok := lookupEnv(r.opts.EnvPrefix, key, r.opts.ForceEnvUppercase)
			if ok {
				if !visit(Result{Value: v, Source: SourceEnv, Origin: name, Found: true}) {
					return nil
				}
			}

		case src.IsFile():
			for _, rel := range r.files[src] {
				data, err := r.readFile(src, rel)
				if err != nil {
					return err
				}
				if v, ok := data[key]; ok {
					if r.cache != nil {
						// Cached contents are shared across calls
						v = cloneValue(v)
					}
					if !visit(Result{Value: v, Source: src, Origin: rel, Found: true}) {
						return nil
					}
				}
			}

		default:
			return fmt.Errorf("%w: %q", ErrUnsupportedSource, src)
		}
	}

	return nil
}

// readFile reads and parses one discovered file
func (r *Resolver) readFile(kind Source, rel string) (map[string]any, error) {
	path := filepath.Join(r.opts.Folder, rel)

	var state fileState
	if r.cache != nil {
		info, err := r.fs.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("%w '%s': %w", ErrFileRead, path, err)
		}
		state = fileState{modTime: info.ModTime(), size: info.Size()}
		if data, ok := r.cache.get(path, state); ok {
			return data, nil
		}
	}

	raw, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrFileRead, path, err)
	}

	data, err := parseFormat(kind, raw)
	if err != nil {
		return nil, fmt.Errorf("config file '%s': %w", path, err)
	}

	if r.cache != nil {
		r.cache.put(path, state, data)
	}
	return data, nil
}

// Priority returns a copy of the lookup order
func (r *Resolver) Priority() []Source {
	return slices.Clone(r.priority)
}

// Files returns a copy of the discovered file index
func (r *Resolver) Files() FileIndex {
	return r.files.clone()
}

// Folder returns the scanned config folder
func (r *Resolver) Folder() string {
	return r.opts.Folder
}

// IsMissing reports whether err came from a required key that no source defined
func IsMissing(err error) bool {
	return errors.Is(err, ErrMissingRequired)
}
