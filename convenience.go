// File: lixenwraith/parseit/convenience.go
package parseit

import (
	"fmt"
	"slices"
	"strings"
)

// Quick creates a Resolver with default options over folder and envPrefix.
// An empty folder means the working directory.
func Quick(folder, envPrefix string) (*Resolver, error) {
	opts := DefaultOptions()
	if folder != "" {
		opts.Folder = folder
	}
	opts.EnvPrefix = envPrefix
	return New(opts)
}

// MustQuick is like Quick but panics on error
func MustQuick(folder, envPrefix string) *Resolver {
	r, err := Quick(folder, envPrefix)
	if err != nil {
		panic(fmt.Sprintf("resolver initialization failed: %v", err))
	}
	return r
}

// Trace returns every source defining key, highest priority first.
// The first entry is what Lookup reports.
func (r *Resolver) Trace(key string) ([]Result, error) {
	var results []Result
	err := r.walk(key, func(found Result) bool {
		results = append(results, found)
		return true
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Explain returns a human-readable account of where key is defined
func (r *Resolver) Explain(key string) string {
	results, err := r.Trace(key)
	if err != nil {
		return fmt.Sprintf("%s: error: %v\n", key, err)
	}
	if len(results) == 0 {
		return fmt.Sprintf("%s: not defined in any source\n", key)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", key)
	for i, res := range results {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		fmt.Fprintf(&b, "  %s %s (%s): %v\n", marker, res.Source, res.Origin, res.Value)
	}
	return b.String()
}

// Debug returns a formatted string showing the resolver setup and discovered files
func (r *Resolver) Debug() string {
	var b strings.Builder
	b.WriteString("Resolver Debug Info:\n")
	fmt.Fprintf(&b, "Priority: %v\n", r.priority)
	fmt.Fprintf(&b, "Folder: %s (recurse: %t)\n", r.opts.Folder, r.opts.Recurse)
	fmt.Fprintf(&b, "Env prefix: %q (uppercase: %t)\n", r.opts.EnvPrefix, r.opts.ForceEnvUppercase)
	fmt.Fprintf(&b, "Type estimate: %t\n", r.opts.TypeEstimate)
	fmt.Fprintf(&b, "Global default: %v\n", r.opts.GlobalDefault)

	flags := make([]string, 0, len(r.args))
	for name := range r.args {
		flags = append(flags, name)
	}
	slices.Sort(flags)
	fmt.Fprintf(&b, "CLI flags: %v\n", flags)

	b.WriteString("Files:\n")
	seen := make(map[Source]bool)
	for _, src := range r.priority {
		files, ok := r.files[src]
		if !ok || seen[src] {
			continue
		}
		seen[src] = true
		fmt.Fprintf(&b, "  %s: %d\n", src, len(files))
		for _, f := range files {
			fmt.Fprintf(&b, "    %s\n", f)
		}
	}

	return b.String()
}
