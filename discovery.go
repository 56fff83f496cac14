// FILE: lixenwraith/parseit/discovery.go
package parseit

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
)

// FileIndex groups discovered config files by file type.
// Paths are relative to the config folder and sorted within each bucket.
type FileIndex map[Source][]string

// Count returns the total number of indexed files
func (idx FileIndex) Count() int {
	n := 0
	for _, files := range idx {
		n += len(files)
	}
	return n
}

// clone returns a deep copy safe to hand to callers
func (idx FileIndex) clone() FileIndex {
	out := make(FileIndex, len(idx))
	for src, files := range idx {
		out[src] = slices.Clone(files)
	}
	return out
}

// discoverFiles scans root once and buckets every regular file whose extension
// matches one of types. Subfolders are only visited when recurse is set.
// Every requested type gets a bucket, empty if nothing matched.
func discoverFiles(fs afero.Fs, root string, types []Source, recurse bool) (FileIndex, error) {
	info, err := fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFolderNotFound, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrFolderNotFound, root)
	}

	index := make(FileIndex, len(types))
	wanted := make(map[Source]bool, len(types))
	for _, t := range types {
		if t.IsFile() {
			wanted[t] = true
			index[t] = []string{}
		}
	}

	add := func(path string, fi os.FileInfo) error {
		if !fi.Mode().IsRegular() {
			return nil
		}
		src, ok := sourceForExt(filepath.Ext(fi.Name()))
		if !ok || !wanted[src] {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		index[src] = append(index[src], rel)
		return nil
	}

	if recurse {
		err = afero.Walk(fs, root, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			return add(path, fi)
		})
	} else {
		var entries []os.FileInfo
		entries, err = afero.ReadDir(fs, root)
		for _, fi := range entries {
			if err = add(filepath.Join(root, fi.Name()), fi); err != nil {
				break
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan config folder '%s': %w", root, err)
	}

	for src := range index {
		slices.Sort(index[src])
	}

	return index, nil
}
