// FILE: lixenwraith/parseit/source.go
package parseit

import "strings"

// Source represents a configuration source, used to define lookup precedence
type Source string

const (
	// SourceCLI represents values read from command-line arguments
	SourceCLI Source = "cli_args"
	// SourceEnv represents values read from environment variables
	SourceEnv Source = "env_vars"

	// sourceEnvAlias is accepted in priority lists as a synonym of SourceEnv
	sourceEnvAlias Source = "envvars"
)

// File type sources. Each is matched against the file extension during
// discovery and gets its own bucket, synonyms share a parser.
const (
	SourceJSON Source = "json"
	SourceYAML Source = "yaml"
	SourceYML  Source = "yml"
	SourceTOML Source = "toml"
	SourceTML  Source = "tml"
	SourceHCL  Source = "hcl"
	SourceTF   Source = "tf"
	SourceConf Source = "conf"
	SourceCfg  Source = "cfg"
	SourceINI  Source = "ini"
	SourceXML  Source = "xml"
)

// fileFormats maps every file type source to the parser family that reads it
var fileFormats = map[Source]Source{
	SourceJSON: SourceJSON,
	SourceYAML: SourceYAML,
	SourceYML:  SourceYAML,
	SourceTOML: SourceTOML,
	SourceTML:  SourceTOML,
	SourceHCL:  SourceHCL,
	SourceTF:   SourceHCL,
	SourceConf: SourceINI,
	SourceCfg:  SourceINI,
	SourceINI:  SourceINI,
	SourceXML:  SourceXML,
}

// FileTypes returns the recognized file type sources in default priority order
func FileTypes() []Source {
	return []Source{
		SourceJSON, SourceYAML, SourceYML, SourceTOML, SourceTML,
		SourceHCL, SourceTF, SourceConf, SourceCfg, SourceINI, SourceXML,
	}
}

// DefaultPriority returns the standard lookup order:
// CLI, environment, then every file type.
func DefaultPriority() []Source {
	return append([]Source{SourceCLI, SourceEnv}, FileTypes()...)
}

// IsFile reports whether s names a recognized file type
func (s Source) IsFile() bool {
	_, ok := fileFormats[s]
	return ok
}

// Format returns the parser family for a file type source, or "" if s is not one.
// yml reads as yaml, tml as toml, conf and cfg as ini, tf as hcl.
func (s Source) Format() Source {
	return fileFormats[s]
}

// isEnv reports whether s selects environment variables
func (s Source) isEnv() bool {
	return s == SourceEnv || s == sourceEnvAlias
}

// sourceForExt returns the file type source matching a file extension
// (with or without the leading dot), case-insensitively.
func sourceForExt(ext string) (Source, bool) {
	s := Source(strings.ToLower(strings.TrimPrefix(ext, ".")))
	if !s.IsFile() {
		return "", false
	}
	return s, true
}
