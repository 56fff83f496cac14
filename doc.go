// File: lixenwraith/parseit/doc.go

// Package parseit resolves flat configuration keys from several sources
// in a caller-defined priority order: command-line arguments, environment
// variables, and JSON, YAML, TOML, INI, HCL and XML files found under a
// config folder.
//
// Features:
//   - One call per key, whichever source ends up supplying it
//   - Custom precedence, including per-file-type ordering
//   - Config folder scanned once, recursively by default
//   - Files re-read on every lookup, with opt-in parsed-content caching
//   - Type estimation of string values (bool, int64, float64, null)
//   - Per-call and global defaults, or required keys that fail hard
//   - Typed accessors and struct scanning
//   - Source tracing to see every place a key is defined
//
// Quick Start:
//
//	r, err := parseit.Quick("/etc/myapp", "MYAPP_")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	port, err := r.Resolve("port", parseit.WithDefault(8080))
//	token, err := r.Resolve("token", parseit.Required())
//
// Default Precedence (highest to lowest):
//  1. Command-line arguments (--port 9090 or --port=9090)
//  2. Environment variables (MYAPP_PORT=9090)
//  3. Files by type: json, yaml, yml, toml, tml, hcl, tf, conf, cfg, ini, xml
//  4. Call default, then global default
//
// Within one file type, files are tried in path order and the first one
// holding the key wins.
//
// Custom Precedence:
//
//	r, err := parseit.NewBuilder().
//	    WithFolder("config").
//	    WithPriority(
//	        parseit.SourceEnv,
//	        parseit.SourceTOML,
//	        parseit.SourceCLI,
//	    ).
//	    WithGlobalDefault("unset").
//	    Build()
//
// Thread Safety:
// A Resolver never changes after construction and may be shared between
// goroutines.
package parseit
