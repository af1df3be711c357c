// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package openstack

import (
	"encoding/json"

	"github.com/osdump/osdump/pkg/constants"
	"github.com/osdump/osdump/pkg/report"
	"github.com/osdump/osdump/pkg/util/strutil"
	log "github.com/sirupsen/logrus"
)

// CollectVolumes stores the server's attached volume list and the detail
// of every attached volume.  The attachment list comes from a fresh fetch
// of the server detail so it reflects the state at collection time.
func (c *Client) CollectVolumes(serverID string, step *report.Step) {
	log.Infof("Collecting attached volumes for server %s", serverID)

	detail := map[string]interface{}{}
	if err := c.runJSON(&detail, "server", "show", serverID); err != nil {
		step.Failf("could not read detail of server %s: %s", serverID, err.Error())
		return
	}

	attached, _ := detail["os-extended-volumes:volumes_attached"].([]interface{})
	if attached == nil {
		attached = []interface{}{}
	}
	pretty, err := json.MarshalIndent(attached, "", "  ")
	if err != nil {
		step.Failf("could not render attached volume list: %s", err.Error())
		return
	}
	c.saveRaw(step, constants.CinderDir, "attached_volumes.txt", string(pretty))

	for _, item := range attached {
		volume, _ := item.(map[string]interface{})
		volumeID := stringField(volume, "id")
		if volumeID == "" {
			continue
		}
		c.save(step, constants.CinderDir, "volume_"+strutil.SafeName(volumeID)+".txt", c.run("volume", "show", volumeID))
	}
}
