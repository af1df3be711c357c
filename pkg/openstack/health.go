// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package openstack

import (
	"sort"

	"github.com/osdump/osdump/pkg/constants"
	"github.com/osdump/osdump/pkg/report"
	"github.com/osdump/osdump/pkg/util/strutil"
	log "github.com/sirupsen/logrus"
)

// CollectHealth runs every configured health check and stores one
// artifact per check.  Checks run in name order so repeated runs produce
// the same command sequence.
func (c *Client) CollectHealth(checks map[string][]string, step *report.Step) {
	log.Infof("Running OpenStack health checks")

	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c.save(step, constants.HealthDir, strutil.SafeName(name)+".txt", c.run(checks[name]...))
	}
}
