// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package openstack

import (
	"testing"

	"github.com/osdump/osdump/pkg/runner"
	"github.com/stretchr/testify/assert"
)

func TestCollectVolumes(t *testing.T) {
	detail := `{"id": "vm-1", "os-extended-volumes:volumes_attached": [{"id": "vol-1"}, {"id": "vol-2"}]}`
	client, _ := newTestClient(t, map[string]runner.Result{
		"openstack server show vm-1 -f json": ok(detail),
		"openstack volume show vol-1":        ok("vol-1 detail"),
		"openstack volume show vol-2":        ok("vol-2 detail"),
	})

	step := newTestStep()
	client.CollectVolumes("vm-1", step)

	assert.Contains(t, readArtifact(t, client, "cinder", "attached_volumes.txt"), "vol-1")
	assert.Equal(t, "vol-1 detail", readArtifact(t, client, "cinder", "volume_vol-1.txt"))
	assert.Equal(t, "vol-2 detail", readArtifact(t, client, "cinder", "volume_vol-2.txt"))
	assert.Equal(t, 3, step.Artifacts)
	assert.Empty(t, step.Failures)
}

// TestCollectVolumesNone checks that a server without attachments still
// records the empty attachment list.
func TestCollectVolumesNone(t *testing.T) {
	client, fake := newTestClient(t, map[string]runner.Result{
		"openstack server show vm-1 -f json": ok(`{"id": "vm-1"}`),
	})

	step := newTestStep()
	client.CollectVolumes("vm-1", step)

	assert.Equal(t, "[]", readArtifact(t, client, "cinder", "attached_volumes.txt"))
	assert.Equal(t, 1, step.Artifacts)
	assert.Empty(t, step.Failures)
	assert.Equal(t, 0, fake.called("openstack volume show"))
}

// TestCollectVolumesServerGone checks that an unreadable server records a
// failure and writes nothing.
func TestCollectVolumesServerGone(t *testing.T) {
	client, _ := newTestClient(t, map[string]runner.Result{
		"openstack server show vm-1 -f json": fail("No server with a name or ID of 'vm-1' exists."),
	})

	step := newTestStep()
	client.CollectVolumes("vm-1", step)

	assertNoArtifact(t, client, "cinder", "attached_volumes.txt")
	assert.Equal(t, 0, step.Artifacts)
	assert.Len(t, step.Failures, 1)
	assert.Contains(t, step.Failures[0], "could not read detail of server vm-1")
}
