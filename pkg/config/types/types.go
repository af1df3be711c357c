// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package types

import (
	"github.com/osdump/osdump/pkg/util/strutil"
)

// Profile configures a debug collection run.  Fields left unset fall back
// to the built-in defaults of the command being run.
type Profile struct {
	// OpenStackBin is the OpenStack client binary to invoke.
	OpenStackBin string `yaml:"openstackBin,omitempty"`

	// KubectlBin is the kubectl binary to invoke.
	KubectlBin string `yaml:"kubectlBin,omitempty"`

	// Components are the services whose pod logs are collected when a
	// server is inspected.
	Components []string `yaml:"components,omitempty"`

	// HealthChecks maps an artifact name to the OpenStack client
	// arguments that produce it, without the binary itself.
	HealthChecks map[string][]string `yaml:"healthChecks,omitempty"`
}

// MergeProfile takes two Profiles and merges them into a third.
// The default values for the result come from the first argument.  If a
// value is set in the second argument, that value takes precedence.
func MergeProfile(def *Profile, ovr *Profile) Profile {
	if ovr == nil {
		return *def
	}

	return Profile{
		OpenStackBin: ies(def.OpenStackBin, ovr.OpenStackBin),
		KubectlBin:   ies(def.KubectlBin, ovr.KubectlBin),
		Components:   iesl(def.Components, ovr.Components),
		HealthChecks: iehc(def.HealthChecks, ovr.HealthChecks),
	}
}

// ies is short for "If Else String".  If the second argument is
// non-empty, it is returned.  Otherwise, the first argument
// is returned.
func ies(i string, e string) string {
	if e != "" {
		return e
	}
	return i
}

// iesl is short for "If Else String List".  If the second argument has
// elements, a trimmed copy of it is returned.  Otherwise, the first
// argument is returned.
func iesl(i []string, e []string) []string {
	if len(e) > 0 {
		return strutil.TrimArray(e)
	}
	return i
}

// iehc is short for "If Else Health Checks".  If the second argument has
// entries, it is returned.  Otherwise, the first argument is returned.
// A profile file replaces the health check table as a whole.
func iehc(i map[string][]string, e map[string][]string) map[string][]string {
	if len(e) > 0 {
		return e
	}
	return i
}
