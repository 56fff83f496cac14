// FILE: lixenwraith/parseit/errors.go
package parseit

import "errors"

// ErrFolderNotFound indicates the configuration folder is missing or not a
// directory. It is the only construction error.
var ErrFolderNotFound = errors.New("config folder not found")

// Resolution errors.
var (
	// ErrUnsupportedSource indicates a priority entry that is neither cli_args,
	// env_vars nor a known file type.
	ErrUnsupportedSource = errors.New("unsupported config source type")

	// ErrFileRead indicates a discovered file could not be read.
	ErrFileRead = errors.New("failed to read config file")

	// ErrFileParse indicates a discovered file holds malformed content for its type.
	ErrFileParse = errors.New("failed to parse config file")

	// ErrMissingRequired indicates a required key was not found in any source.
	ErrMissingRequired = errors.New("required config key not found")

	// ErrInvalidKey indicates an empty key was requested.
	ErrInvalidKey = errors.New("invalid config key")
)
