// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package openstack

import (
	"github.com/osdump/osdump/pkg/constants"
	"github.com/osdump/osdump/pkg/report"
	log "github.com/sirupsen/logrus"
)

// CollectServer stores the server's table detail, action event list and
// migration list, and returns the parsed JSON detail for further fan-out.
// The table artifacts are written even when the JSON fetch fails.
func (c *Client) CollectServer(serverID string, step *report.Step) (map[string]interface{}, error) {
	log.Infof("Collecting server details for %s", serverID)

	showArgs := []string{"server", "show", serverID}
	if c.FitWidth {
		showArgs = append(showArgs, "--fit-width", "--max-width", "500")
	}
	c.save(step, constants.NovaDir, "server_show.txt", c.run(showArgs...))
	c.save(step, constants.NovaDir, "server_events.txt", c.run("server", "event", "list", serverID))
	c.save(step, constants.NovaDir, "migrations.txt", c.run("server", "migration", "list", "--server", serverID))

	detail := map[string]interface{}{}
	if err := c.runJSON(&detail, "server", "show", serverID); err != nil {
		return nil, err
	}
	return detail, nil
}

// CollectImageAndFlavor resolves the server's image and flavor references
// and stores their details.  References that do not resolve to an
// identifier are skipped; boot-from-volume servers have no image.
func (c *Client) CollectImageAndFlavor(server map[string]interface{}, step *report.Step) {
	imageID := ExtractID(server["image"])
	flavorID := ExtractID(server["flavor"])
	log.Debugf("Resolved image %q and flavor %q", imageID, flavorID)

	if imageID != "" {
		c.save(step, constants.GlanceDir, "image_show.txt", c.run("image", "show", imageID))
	}
	if flavorID != "" {
		c.save(step, constants.NovaDir, "flavor_show.txt", c.run("flavor", "show", flavorID))
	}
}
