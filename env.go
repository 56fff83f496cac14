// FILE: lixenwraith/parseit/env.go
package parseit

import (
	"os"
	"strings"
)

// envName builds the environment variable name read for key
func envName(prefix, key string, forceUpper bool) string {
	name := prefix + key
	if forceUpper {
		name = strings.ToUpper(name)
	}
	return name
}

// lookupEnv reads a variable in one call, so the defined check and the value
// cannot disagree. A variable set to "" is defined.
func lookupEnv(prefix, key string, forceUpper bool) (string, string, bool) {
	name := envName(prefix, key, forceUpper)
	value, ok := os.LookupEnv(name)
	return name, value, ok
}
