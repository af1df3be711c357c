// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package openstack

import (
	"github.com/osdump/osdump/pkg/constants"
	"github.com/osdump/osdump/pkg/report"
	log "github.com/sirupsen/logrus"
)

// CollectUser stores the Keystone user's detail and role assignments.
// The identifier may be a name or a UUID; the client resolves either.
func (c *Client) CollectUser(userID string, step *report.Step) {
	log.Infof("Collecting Keystone user %s", userID)

	c.save(step, constants.KeystoneDir, "user_show.txt", c.run("user", "show", userID))
	c.save(step, constants.KeystoneDir, "user_role_assignments.txt", c.run("role", "assignment", "list", "--user", userID, "--names"))
}
