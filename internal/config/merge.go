package config

import "strings"

// Merge applies layers over base in order; a later non-nil value wins.
func Merge(base Settings, layers ...Config) Settings {
	out := base
	for _, layer := range layers {
		out.Regex = resolveBool(out.Regex, layer.Regex)
		out.IgnoreCase = resolveBool(out.IgnoreCase, layer.IgnoreCase)
		out.Color = resolveAndTrim(out.Color, layer.Color)
		out.Output = resolveAndTrim(out.Output, layer.Output)
		out.MaxColumns = resolveInt(out.MaxColumns, layer.MaxColumns)
		out.Count = resolveBool(out.Count, layer.Count)
		out.Verbose = resolveBool(out.Verbose, layer.Verbose)
	}
	if out.Output == "" {
		out.Output = "text"
	}
	if out.Color == "" {
		out.Color = "auto"
	}
	return out
}

func resolveBool(def bool, v *bool) bool {
	if v != nil {
		return *v
	}
	return def
}

func resolveInt(def int, v *int) int {
	if v != nil {
		return *v
	}
	return def
}

func resolveAndTrim(def string, v *string) string {
	if v != nil {
		return strings.TrimSpace(*v)
	}
	return strings.TrimSpace(def)
}
