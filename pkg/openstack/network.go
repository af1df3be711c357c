// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package openstack

import (
	"github.com/osdump/osdump/pkg/constants"
	"github.com/osdump/osdump/pkg/report"
	"github.com/osdump/osdump/pkg/util/strutil"
	log "github.com/sirupsen/logrus"
)

// CollectPorts stores the server's port listing and, for every port, the
// port detail and the detail of the network it belongs to.  When the
// listing cannot be parsed the fan-out is abandoned, leaving the listing
// artifact in place.
func (c *Client) CollectPorts(serverID string, step *report.Step) {
	log.Infof("Collecting ports and networks for server %s", serverID)
	c.save(step, constants.NeutronDir, "vm_ports.txt", c.run("port", "list", "--device-id", serverID))

	ports := []map[string]interface{}{}
	if err := c.runJSON(&ports, "port", "list", "--device-id", serverID); err != nil {
		step.Failf("could not list ports of server %s: %s", serverID, err.Error())
		return
	}

	for _, port := range ports {
		portID := stringField(port, "ID")
		if portID != "" {
			c.save(step, constants.NeutronDir, "port_"+strutil.SafeName(portID)+".txt", c.run("port", "show", portID))
			if c.PortJSON {
				c.save(step, constants.NeutronDir, "port_"+strutil.SafeName(portID)+".json", c.run("port", "show", portID, "-f", "json"))
			}
		}

		networkID := stringField(port, "Network ID")
		if networkID != "" {
			c.save(step, constants.NeutronDir, "network_"+strutil.SafeName(networkID)+".txt", c.run("network", "show", networkID))
		}
	}
}
