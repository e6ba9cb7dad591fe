package config

import (
	"errors"
	"strings"
)

// FromEnv reads the HLGREP_* variables. Every malformed value is reported;
// the well-formed ones are still returned.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}
	setInt := func(target **int, key string, min, max int) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := ParseIntInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}

	setBool(&cfg.Regex, "HLGREP_REGEX")
	setBool(&cfg.IgnoreCase, "HLGREP_IGNORE_CASE")
	setString(&cfg.Color, "HLGREP_COLOR")
	setString(&cfg.Output, "HLGREP_OUTPUT")
	setInt(&cfg.MaxColumns, "HLGREP_MAX_COLUMNS", 0, -1)

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
