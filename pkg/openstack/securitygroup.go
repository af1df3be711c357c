// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package openstack

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/osdump/osdump/pkg/constants"
	"github.com/osdump/osdump/pkg/report"
	"github.com/osdump/osdump/pkg/util"
	"github.com/osdump/osdump/pkg/util/strutil"
	log "github.com/sirupsen/logrus"
)

// SecurityGroupSource selects how the security groups of a server's ports
// are derived.
type SecurityGroupSource int

const (
	// SecurityGroupsFromPortList reads the group columns straight off
	// the port listing.  One CLI round trip, but the column name varies
	// across client releases and the value may arrive as a stringified
	// list.
	SecurityGroupsFromPortList SecurityGroupSource = iota

	// SecurityGroupsFromPortShow fetches each port's JSON detail and
	// reads security_group_ids.  One extra round trip per port, but the
	// field is authoritative.  The fetched detail also refreshes the
	// per-port JSON artifact.
	SecurityGroupsFromPortShow
)

// CollectSecurityGroups derives the set of security groups attached to
// the server's ports and stores each group's detail and rule listing.
// Groups referenced by more than one port are fetched once.
func (c *Client) CollectSecurityGroups(serverID string, source SecurityGroupSource, step *report.Step) {
	log.Infof("Collecting security groups for server %s", serverID)

	ports := []map[string]interface{}{}
	if err := c.runJSON(&ports, "port", "list", "--device-id", serverID); err != nil {
		step.Failf("could not list ports of server %s: %s", serverID, err.Error())
		return
	}

	groups := util.NewSet[string]()
	for _, port := range ports {
		switch source {
		case SecurityGroupsFromPortList:
			c.groupsFromPortRow(port, groups, step)
		case SecurityGroupsFromPortShow:
			c.groupsFromPortDetail(port, groups, step)
		}
	}

	if groups.Size() == 0 {
		log.Debugf("No security groups found on ports of server %s", serverID)
		return
	}
	log.Infof("Found %d unique security groups", groups.Size())

	ids := groups.Items()
	sort.Strings(ids)
	for _, id := range ids {
		log.Infof("Fetching security group %s", id)
		name := strutil.SafeName(id)
		c.save(step, constants.NeutronDir, "security_group_"+name+".txt", c.run("security", "group", "show", id))
		c.save(step, constants.NeutronDir, "security_group_"+name+"_rules.txt", c.run("security", "group", "rule", "list", id))
	}
}

// groupsFromPortRow reads the security group column of one port listing
// row.  Older clients emit "Security Groups", newer ones "Security
// Group", and the value is either a real list or a stringified one.
func (c *Client) groupsFromPortRow(port map[string]interface{}, groups *util.Set[string], step *report.Step) {
	raw := port["Security Group"]
	if emptyField(raw) {
		raw = port["Security Groups"]
	}

	switch v := raw.(type) {
	case []interface{}:
		for _, id := range toStringSlice(raw) {
			groups.Add(id)
		}
	case string:
		if !strings.HasPrefix(v, "[") {
			return
		}
		list := []string{}
		if err := json.Unmarshal([]byte(v), &list); err != nil {
			step.Failf("could not decode security group list %q: %s", v, err.Error())
			return
		}
		for _, id := range list {
			if id != "" {
				groups.Add(id)
			}
		}
	}
}

// groupsFromPortDetail fetches one port's JSON detail, refreshes its
// artifact, and reads the attached group ids.  A port that cannot be
// read is skipped; the others still contribute their groups.
func (c *Client) groupsFromPortDetail(port map[string]interface{}, groups *util.Set[string], step *report.Step) {
	portID := stringField(port, "ID")
	if portID == "" {
		return
	}

	detail := map[string]interface{}{}
	if err := c.runJSON(&detail, "port", "show", portID); err != nil {
		step.Failf("could not inspect port %s: %s", portID, err.Error())
		return
	}

	pretty, err := json.MarshalIndent(detail, "", "  ")
	if err != nil {
		step.Failf("could not render port %s detail: %s", portID, err.Error())
	} else {
		c.saveRaw(step, constants.NeutronDir, "port_"+strutil.SafeName(portID)+".json", string(pretty))
	}

	for _, id := range toStringSlice(detail["security_group_ids"]) {
		groups.Add(id)
	}
}

// emptyField reports whether a decoded JSON value carries no data.
func emptyField(raw interface{}) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []interface{}:
		return len(v) == 0
	}
	return false
}
