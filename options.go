// FILE: lixenwraith/parseit/options.go
package parseit

import (
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Options configures a Resolver. It is copied at construction and never
// changes afterwards. Start from DefaultOptions: the zero value disables
// type estimation, recursion and env uppercasing.
type Options struct {
	// Priority defines the lookup order (first = highest priority).
	// Entries are SourceCLI, SourceEnv or any file type from FileTypes.
	// nil means DefaultPriority(). An empty list searches nothing, so every
	// key resolves to its default.
	Priority []Source

	// GlobalDefault is returned for keys no source defines when the call
	// itself supplies no default
	GlobalDefault any

	// TypeEstimate converts string values into bool, int64, float64 or nil
	// where they spell one (see EstimateType)
	TypeEstimate bool

	// Recurse includes files in subfolders of Folder
	Recurse bool

	// ForceEnvUppercase uppercases the full env var name, prefix included
	ForceEnvUppercase bool

	// Folder is the root scanned for config files. Default: working directory
	Folder string

	// EnvPrefix is prepended to the key to form the env var name
	// Example: "APP_" with key "port" reads APP_PORT when uppercasing
	EnvPrefix string

	// Args are the command-line arguments searched by SourceCLI.
	// nil means os.Args[1:]
	Args []string

	// Fs is the filesystem used for discovery and reads. nil means the OS filesystem
	Fs afero.Fs

	// Logger receives debug output about discovery and resolution. nil disables logging
	Logger *zap.Logger

	// CacheFiles keeps parsed file contents between calls, re-parsing a file
	// only when its modification time or size changes. Maps and slices read
	// from a cached file are copied before they are returned.
	CacheFiles bool
}

// DefaultOptions returns the standard resolver options
func DefaultOptions() Options {
	folder, err := os.Getwd()
	if err != nil {
		folder = "."
	}

	return Options{
		Priority:          DefaultPriority(),
		TypeEstimate:      true,
		Recurse:           true,
		ForceEnvUppercase: true,
		Folder:            folder,
		Args:              os.Args[1:],
		Fs:                afero.NewOsFs(),
		Logger:            zap.NewNop(),
	}
}
