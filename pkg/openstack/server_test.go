// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package openstack

import (
	"testing"

	"github.com/osdump/osdump/pkg/runner"
	"github.com/stretchr/testify/assert"
)

const testServerID = "0088e7bd-85fe-4abf-9e66-cc40bda9a75e"

func TestCollectServer(t *testing.T) {
	detail := `{"id": "` + testServerID + `", "name": "web-1", "image": "cirros (11111111-2222-3333-4444-555555555555)"}`
	client, fake := newTestClient(t, map[string]runner.Result{
		"openstack server show " + testServerID:                    ok("server table"),
		"openstack server event list " + testServerID:              ok("event table"),
		"openstack server migration list --server " + testServerID: ok("migration table"),
		"openstack server show " + testServerID + " -f json":       ok(detail),
	})

	step := newTestStep()
	server, err := client.CollectServer(testServerID, step)

	assert.NoError(t, err)
	assert.Equal(t, "web-1", server["name"])
	assert.Equal(t, "server table", readArtifact(t, client, "nova", "server_show.txt"))
	assert.Equal(t, "event table", readArtifact(t, client, "nova", "server_events.txt"))
	assert.Equal(t, "migration table", readArtifact(t, client, "nova", "migrations.txt"))
	assert.Equal(t, 3, step.Artifacts)
	assert.Empty(t, step.Failures)
	assert.Len(t, fake.calls, 4)
}

// TestCollectServerFitWidth checks that the wide output options only
// land on the human readable show, never on the JSON fetch.
func TestCollectServerFitWidth(t *testing.T) {
	client, fake := newTestClient(t, map[string]runner.Result{
		"openstack server show vm-1 --fit-width --max-width 500": ok("server table"),
		"openstack server show vm-1 -f json":                     ok(`{"id": "vm-1"}`),
		"openstack server event list vm-1":                       ok("event table"),
		"openstack server migration list --server vm-1":          ok("migration table"),
	})
	client.FitWidth = true

	step := newTestStep()
	_, err := client.CollectServer("vm-1", step)

	assert.NoError(t, err)
	assert.Equal(t, 1, fake.called("openstack server show vm-1 --fit-width"))
	assert.Empty(t, step.Failures)
}

// TestCollectServerDetailFails checks that a server whose JSON detail
// cannot be fetched still leaves the table artifacts behind.
func TestCollectServerDetailFails(t *testing.T) {
	client, _ := newTestClient(t, map[string]runner.Result{
		"openstack server show gone":                    ok("server table"),
		"openstack server event list gone":              ok("event table"),
		"openstack server migration list --server gone": ok("migration table"),
		"openstack server show gone -f json":            fail("No server with a name or ID of 'gone' exists."),
	})

	step := newTestStep()
	server, err := client.CollectServer("gone", step)

	assert.Error(t, err)
	assert.Nil(t, server)
	assert.Contains(t, err.Error(), "No server with a name or ID of 'gone' exists.")
	assert.Equal(t, "server table", readArtifact(t, client, "nova", "server_show.txt"))
	assert.Equal(t, 3, step.Artifacts)
}

func TestCollectImageAndFlavor(t *testing.T) {
	client, _ := newTestClient(t, map[string]runner.Result{
		"openstack image show 11111111-2222-3333-4444-555555555555":  ok("image detail"),
		"openstack flavor show 66666666-7777-8888-9999-000000000000": ok("flavor detail"),
	})

	server := map[string]interface{}{
		"image":  "cirros (11111111-2222-3333-4444-555555555555)",
		"flavor": map[string]interface{}{"id": "66666666-7777-8888-9999-000000000000", "name": "m1.small"},
	}

	step := newTestStep()
	client.CollectImageAndFlavor(server, step)

	assert.Equal(t, "image detail", readArtifact(t, client, "glance", "image_show.txt"))
	assert.Equal(t, "flavor detail", readArtifact(t, client, "nova", "flavor_show.txt"))
	assert.Equal(t, 2, step.Artifacts)
	assert.Empty(t, step.Failures)
}

// TestCollectImageAndFlavorBootFromVolume checks that a server without
// an image reference only produces the flavor artifact.
func TestCollectImageAndFlavorBootFromVolume(t *testing.T) {
	client, fake := newTestClient(t, map[string]runner.Result{
		"openstack flavor show m1.small": ok("flavor detail"),
	})

	server := map[string]interface{}{
		"image":  "",
		"flavor": "m1.small",
	}

	step := newTestStep()
	client.CollectImageAndFlavor(server, step)

	assert.Equal(t, "flavor detail", readArtifact(t, client, "nova", "flavor_show.txt"))
	assertNoArtifact(t, client, "glance", "image_show.txt")
	assert.Equal(t, 0, fake.called("openstack image show"))
	assert.Equal(t, 1, step.Artifacts)
}
