package cmd

import "strings"

// sanitizeName replaces control characters (runes < 0x20 or == 0x7F) with '?'
// before including user-supplied name values in human-readable output,
// preventing ANSI injection.
func sanitizeName(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return '?'
		}
		return r
	}, s)
}
