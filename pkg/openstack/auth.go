// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package openstack

import (
	"fmt"
	"os"
	"strings"

	"github.com/osdump/osdump/pkg/constants"
	log "github.com/sirupsen/logrus"
)

// CheckAuth verifies that the client can reach the identity service by
// requesting a token.  A failure here is fatal to the run; without
// credentials every later command would fail the same way.
func (c *Client) CheckAuth() error {
	log.Infof("Checking OpenStack authentication")
	res := c.run("token", "issue")
	if !res.Ok() {
		return fmt.Errorf("could not authenticate with OpenStack: %s", res.Reason())
	}
	log.Debugf("OpenStack authentication validated")
	return nil
}

// CheckAuthEnv verifies that the environment carries the credentials the
// client needs, the variables an OpenStack RC file exports.
func CheckAuthEnv() error {
	missing := []string{}
	for _, name := range []string{constants.EnvAuthURL, constants.EnvUsername, constants.EnvProjectName} {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing environment variables %s; source your OpenStack RC file first", strings.Join(missing, ", "))
	}
	return nil
}
