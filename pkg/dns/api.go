/*
Package dns contains helpers for handling DNS names.
*/
package dns

import "strings"

// Absolute returns name with a trailing dot.
func Absolute(name string) string {
	if name == "" || name[len(name)-1] == '.' {
		return name
	}
	return name + "."
}

// Join appends the zone suffix to a label, e.g. "web1" + "example.com".
func Join(label, suffix string) string {
	suffix = strings.TrimPrefix(Relative(suffix), ".")
	if suffix == "" {
		return label
	}
	return label + "." + suffix
}

// Relative returns name without a trailing dot.
func Relative(name string) string {
	return strings.TrimSuffix(name, ".")
}
