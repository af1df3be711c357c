// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package openstack

import (
	"testing"

	"github.com/osdump/osdump/pkg/runner"
	"github.com/stretchr/testify/assert"
)

// TestCollectSecurityGroupsFromPortList feeds one port with a real group
// list and one with a stringified list under the older column name, with
// one group shared between them.  The shared group must be fetched once.
func TestCollectSecurityGroupsFromPortList(t *testing.T) {
	portList := `[
		{"ID": "port-1", "Security Groups": ["sg-1", "sg-2"]},
		{"ID": "port-2", "Security Group": "[\"sg-2\", \"sg-3\"]"}
	]`
	client, fake := newTestClient(t, map[string]runner.Result{
		"openstack port list --device-id vm-1 -f json": ok(portList),
		"openstack security group show sg-1":           ok("sg-1 detail"),
		"openstack security group rule list sg-1":      ok("sg-1 rules"),
		"openstack security group show sg-2":           ok("sg-2 detail"),
		"openstack security group rule list sg-2":      ok("sg-2 rules"),
		"openstack security group show sg-3":           ok("sg-3 detail"),
		"openstack security group rule list sg-3":      ok("sg-3 rules"),
	})

	step := newTestStep()
	client.CollectSecurityGroups("vm-1", SecurityGroupsFromPortList, step)

	assert.Equal(t, "sg-1 detail", readArtifact(t, client, "neutron", "security_group_sg-1.txt"))
	assert.Equal(t, "sg-2 rules", readArtifact(t, client, "neutron", "security_group_sg-2_rules.txt"))
	assert.Equal(t, "sg-3 detail", readArtifact(t, client, "neutron", "security_group_sg-3.txt"))
	assert.Equal(t, 6, step.Artifacts)
	assert.Empty(t, step.Failures)
	assert.Equal(t, 1, fake.called("openstack security group show sg-2"))
}

// TestCollectSecurityGroupsFromPortShow reads the groups off each port's
// JSON detail and refreshes the per-port JSON artifact along the way.
func TestCollectSecurityGroupsFromPortShow(t *testing.T) {
	client, _ := newTestClient(t, map[string]runner.Result{
		"openstack port list --device-id vm-1 -f json": ok(`[{"ID": "port-1"}]`),
		"openstack port show port-1 -f json":           ok(`{"id": "port-1", "security_group_ids": ["sg-9"]}`),
		"openstack security group show sg-9":           ok("sg-9 detail"),
		"openstack security group rule list sg-9":      ok("sg-9 rules"),
	})

	step := newTestStep()
	client.CollectSecurityGroups("vm-1", SecurityGroupsFromPortShow, step)

	assert.Contains(t, readArtifact(t, client, "neutron", "port_port-1.json"), `"security_group_ids"`)
	assert.Equal(t, "sg-9 detail", readArtifact(t, client, "neutron", "security_group_sg-9.txt"))
	assert.Equal(t, "sg-9 rules", readArtifact(t, client, "neutron", "security_group_sg-9_rules.txt"))
	assert.Equal(t, 3, step.Artifacts)
	assert.Empty(t, step.Failures)
}

// TestCollectSecurityGroupsNone checks that ports without groups produce
// no artifacts and trigger no group fetches.
func TestCollectSecurityGroupsNone(t *testing.T) {
	client, fake := newTestClient(t, map[string]runner.Result{
		"openstack port list --device-id vm-1 -f json": ok(`[{"ID": "port-1", "Security Groups": []}]`),
	})

	step := newTestStep()
	client.CollectSecurityGroups("vm-1", SecurityGroupsFromPortList, step)

	assert.Equal(t, 0, step.Artifacts)
	assert.Empty(t, step.Failures)
	assert.Equal(t, 0, fake.called("openstack security group show"))
}

// TestCollectSecurityGroupsBadColumn checks that a stringified list that
// does not decode is recorded as a failure without aborting the step.
func TestCollectSecurityGroupsBadColumn(t *testing.T) {
	portList := `[
		{"ID": "port-1", "Security Group": "[broken"},
		{"ID": "port-2", "Security Groups": ["sg-1"]}
	]`
	client, _ := newTestClient(t, map[string]runner.Result{
		"openstack port list --device-id vm-1 -f json": ok(portList),
		"openstack security group show sg-1":           ok("sg-1 detail"),
		"openstack security group rule list sg-1":      ok("sg-1 rules"),
	})

	step := newTestStep()
	client.CollectSecurityGroups("vm-1", SecurityGroupsFromPortList, step)

	assert.Len(t, step.Failures, 1)
	assert.Contains(t, step.Failures[0], "could not decode security group list")
	assert.Equal(t, "sg-1 detail", readArtifact(t, client, "neutron", "security_group_sg-1.txt"))
	assert.Equal(t, 2, step.Artifacts)
}
