// FILE: lixenwraith/parseit/cli.go
package parseit

import "strings"

// cliArgs holds command-line flags parsed once at construction
type cliArgs map[string]string

// lookup reports whether the flag was given and its raw value
func (c cliArgs) lookup(name string) (string, bool) {
	v, ok := c[name]
	return v, ok
}

// parseArgs processes command-line arguments into a flat name -> value map.
// Accepted forms are "--key value", "--key=value", "-key value", "-key=value"
// and a bare "--flag", which reads as "true". Non-flag arguments are skipped,
// "--" ends flag parsing, and a repeated flag keeps its last value.
// Flags whose name is not a valid key belong to someone else: they are left
// out of the result, consume their value the same way, and are returned in
// skipped.
func parseArgs(args []string) (result cliArgs, skipped []string) {
	result = make(cliArgs)
	i := 0
	for i < len(args) {
		arg := args[i]
		if arg == "--" {
			break
		}
		if !isFlagArg(arg) {
			// Skip positional arguments
			i++
			continue
		}

		argContent := strings.TrimLeft(arg, "-")

		var keyPath string
		var valueStr string

		// Check for "--key=value" format
		if k, v, found := strings.Cut(argContent, "="); found {
			keyPath = k
			valueStr = v
			i++
		} else {
			keyPath = argContent
			// Boolean flag when the next argument is another flag or there is none
			if i+1 >= len(args) || isFlagArg(args[i+1]) || args[i+1] == "--" {
				valueStr = "true"
				i++
			} else {
				valueStr = args[i+1]
				i += 2
			}
		}

		if !isValidFlagName(keyPath) {
			skipped = append(skipped, arg)
			continue
		}

		result[keyPath] = valueStr
	}

	return result, skipped
}

// isFlagArg reports whether arg looks like a flag rather than a value.
// Negative numbers such as "-5" are values.
func isFlagArg(arg string) bool {
	name := strings.TrimLeft(arg, "-")
	if name == arg || name == "" {
		return false
	}
	if strings.HasPrefix(arg, "--") {
		return true
	}
	c := name[0]
	return !(c >= '0' && c <= '9') && c != '.'
}
