// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/osdump/osdump/pkg/config/types"
	"github.com/stretchr/testify/assert"
)

const testProfile = `
openstackBin: /opt/openstack/bin/openstack
components:
  - nova
  - " neutron "
healthChecks:
  endpoints: [endpoint, list]
`

func TestParseProfile(t *testing.T) {
	profile, err := ParseProfile(testProfile)
	assert.NoError(t, err)
	assert.Equal(t, "/opt/openstack/bin/openstack", profile.OpenStackBin)
	assert.Equal(t, []string{"nova", " neutron "}, profile.Components)
	assert.Equal(t, []string{"endpoint", "list"}, profile.HealthChecks["endpoints"])
}

func TestParseProfileInvalid(t *testing.T) {
	_, err := ParseProfile("components: {not: a list}")
	assert.Error(t, err)
}

func TestParseProfileFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(testProfile), 0644))

	profile, err := ParseProfileFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "/opt/openstack/bin/openstack", profile.OpenStackBin)

	_, err = ParseProfileFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// TestLoadProfileMerge overlays a partial profile onto the defaults and
// checks that unset fields keep their default values.
func TestLoadProfileMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(testProfile), 0644))

	profile, err := LoadProfile(path, DefaultClusterProfile())
	assert.NoError(t, err)
	assert.Equal(t, "/opt/openstack/bin/openstack", profile.OpenStackBin)
	assert.Equal(t, "kubectl", profile.KubectlBin)
	assert.Equal(t, []string{"nova", "neutron"}, profile.Components)
	assert.Equal(t, []string{"endpoint", "list"}, profile.HealthChecks["endpoints"])
	assert.Len(t, profile.HealthChecks, 1)
}

func TestLoadProfileDefaults(t *testing.T) {
	profile, err := LoadProfile("", DefaultClusterProfile())
	assert.NoError(t, err)
	assert.Equal(t, DefaultClusterProfile(), profile)
}

func TestMergeProfileNil(t *testing.T) {
	def := DefaultCloudProfile()
	merged := types.MergeProfile(def, nil)
	assert.Equal(t, *def, merged)
}

// TestDefaultProfiles pins the built-in command tables.
func TestDefaultProfiles(t *testing.T) {
	cluster := DefaultClusterProfile()
	assert.Equal(t, []string{"nova", "glance", "image", "keystone", "neutron", "cinder"}, cluster.Components)
	assert.Len(t, cluster.HealthChecks, 4)
	assert.NotContains(t, cluster.HealthChecks, "hypervisors")

	cloud := DefaultCloudProfile()
	assert.Empty(t, cloud.Components)
	assert.Len(t, cloud.HealthChecks, 5)
	assert.Equal(t, []string{"hypervisor", "list", "--long"}, cloud.HealthChecks["hypervisors"])
}
