// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package openstack

import (
	"regexp"
	"strings"
)

// parenthesizedID matches a UUID in parentheses, the way display strings
// render resource references, e.g. "cirros-0.5.2 (a1b2c3d4-...)".
var parenthesizedID = regexp.MustCompile(`\(([a-f0-9\-]{36})\)`)

// ExtractID pulls a resource identifier out of one field of a decoded
// OpenStack JSON document.  Depending on the service and microversion the
// field is either an object holding an id key or a display string with
// the identifier in parentheses.  A bare string without an embedded
// identifier is assumed to already be one and is returned trimmed.
func ExtractID(field interface{}) string {
	switch v := field.(type) {
	case map[string]interface{}:
		return stringField(v, "id")
	case string:
		if m := parenthesizedID.FindStringSubmatch(v); m != nil {
			return m[1]
		}
		return strings.TrimSpace(v)
	}
	return ""
}
