// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package openstack

import (
	"github.com/osdump/osdump/pkg/constants"
	"github.com/osdump/osdump/pkg/report"
	"github.com/osdump/osdump/pkg/util/strutil"
	log "github.com/sirupsen/logrus"
)

// CollectStack stores the Heat stack's detail, its resource listing, and
// the detail of every resource in the stack.
func (c *Client) CollectStack(stackID string, step *report.Step) {
	log.Infof("Collecting Heat stack %s", stackID)

	c.save(step, constants.HeatDir, "stack_show.txt", c.run("stack", "show", stackID))
	c.save(step, constants.HeatDir, "stack_resources.txt", c.run("stack", "resource", "list", stackID))

	resources := []map[string]interface{}{}
	if err := c.runJSON(&resources, "stack", "resource", "list", stackID); err != nil {
		step.Failf("could not list resources of stack %s: %s", stackID, err.Error())
		return
	}

	for _, resource := range resources {
		name := stringField(resource, "resource_name")
		if name == "" {
			continue
		}
		c.save(step, constants.HeatDir, "resource_"+strutil.SafeName(name)+".txt", c.run("stack", "resource", "show", stackID, name))
	}
}
