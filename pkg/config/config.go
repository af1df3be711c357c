// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package config

import (
	"fmt"
	"os"

	"github.com/osdump/osdump/pkg/config/types"
	"github.com/osdump/osdump/pkg/constants"
	"gopkg.in/yaml.v3"
)

// ParseProfile takes a yaml-encoded string and parses it
// into a Profile structure.
func ParseProfile(in string) (*types.Profile, error) {
	ret := &types.Profile{}
	err := yaml.Unmarshal([]byte(in), ret)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// ParseProfileFile takes the path to a file, reads the contents,
// and parses it into a Profile structure.
func ParseProfileFile(profilePath string) (*types.Profile, error) {
	profileBytes, err := os.ReadFile(profilePath)
	if err != nil {
		return nil, err
	}

	profile, err := ParseProfile(string(profileBytes))
	if err != nil {
		return nil, fmt.Errorf("could not parse profile file %s: %s", profilePath, err.Error())
	}
	return profile, nil
}

// DefaultClusterProfile returns the built-in profile for control planes
// hosted on Kubernetes.
func DefaultClusterProfile() *types.Profile {
	return &types.Profile{
		OpenStackBin: constants.DefaultOpenStackBin,
		KubectlBin:   constants.DefaultKubectlBin,
		Components:   []string{"nova", "glance", "image", "keystone", "neutron", "cinder"},
		HealthChecks: map[string][]string{
			"compute_services":   {"compute", "service", "list"},
			"resource_providers": {"resource", "provider", "list"},
			"network_agents":     {"network", "agent", "list"},
			"volume_services":    {"volume", "service", "list"},
		},
	}
}

// DefaultCloudProfile returns the built-in profile for standalone clouds.
// It extends the health checks with the hypervisor listing, which only a
// full deployment can answer.
func DefaultCloudProfile() *types.Profile {
	return &types.Profile{
		OpenStackBin: constants.DefaultOpenStackBin,
		HealthChecks: map[string][]string{
			"compute_services":   {"compute", "service", "list"},
			"resource_providers": {"resource", "provider", "list"},
			"network_agents":     {"network", "agent", "list"},
			"hypervisors":        {"hypervisor", "list", "--long"},
			"volume_services":    {"volume", "service", "list"},
		},
	}
}

// LoadProfile returns the effective profile for a run, overlaying an
// optional profile file onto the defaults.
func LoadProfile(profilePath string, defaults *types.Profile) (*types.Profile, error) {
	if profilePath == "" {
		return defaults, nil
	}

	overrides, err := ParseProfileFile(profilePath)
	if err != nil {
		return nil, err
	}
	ret := types.MergeProfile(defaults, overrides)
	return &ret, nil
}
