// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package openstack

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ClientVersion reports the client's version banner and, when the banner
// parses, its semantic version.  Old clients print the banner on stderr,
// so both streams are consulted.  Nothing here is fatal; a client that
// cannot report a version can still collect.
func (c *Client) ClientVersion() (string, string) {
	res := c.run("--version")
	banner := res.Stdout
	if banner == "" {
		banner = res.Stderr
	}
	banner = strings.TrimSpace(banner)
	if banner == "" {
		return "", ""
	}

	fields := strings.Fields(banner)
	version, err := semver.NewVersion(strings.TrimPrefix(fields[len(fields)-1], "v"))
	if err != nil {
		return banner, ""
	}
	return banner, version.String()
}
