// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package strutil

import (
	"regexp"
	"strings"
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// TrimArray trims surrounding whitespace from every element of a.
func TrimArray(a []string) []string {
	var out []string
	for _, s := range a {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

// SafeName makes an identifier usable as a file name component by
// replacing path separators and other unsafe characters with underscores.
// UUIDs and ordinary resource names pass through unchanged.
func SafeName(s string) string {
	return unsafeFileChars.ReplaceAllString(s, "_")
}
