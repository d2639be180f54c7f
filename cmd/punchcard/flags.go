package main

import (
	"strings"
	"time"

	"punchcard/internal/config"
)

// flagOverrides pre-scans the arguments for the global flags that influence
// construction: the repository path, the timezone, and the logger all exist
// before cobra parses anything. Cobra parses the same flags again later, so
// the scan only needs the long forms and can ignore everything else.
func flagOverrides(args []string) *config.ConfigOverrides {
	overrides := &config.ConfigOverrides{}

	for i := 0; i < len(args); i++ {
		name, value, hasValue := splitFlag(args[i])
		if name == "" {
			continue
		}

		// Boolean flags work with or without an explicit value
		switch name {
		case "verbose":
			enabled := !hasValue || config.ParseBoolWithFallback(value, true)
			overrides.Verbose = &enabled
			continue
		case "no-color":
			enabled := !hasValue || config.ParseBoolWithFallback(value, true)
			overrides.NoColor = &enabled
			continue
		}

		if !hasValue {
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
				continue
			}
			i++
			value = args[i]
		}

		v := value
		switch name {
		case "config":
			overrides.ConfigPath = &v
		case "data-dir":
			overrides.DataDir = &v
		case "data-filename":
			overrides.DataFilename = &v
		case "timezone":
			overrides.Timezone = &v
		case "timeout":
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				overrides.Timeout = &d
			}
		}
	}

	return overrides
}

// splitFlag breaks a "--name" or "--name=value" argument apart. Anything that
// is not a long flag comes back with an empty name.
func splitFlag(arg string) (string, string, bool) {
	if !strings.HasPrefix(arg, "--") {
		return "", "", false
	}
	name, value, hasValue := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
	return name, value, hasValue
}
