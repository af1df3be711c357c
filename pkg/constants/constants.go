// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package constants

const (
	// DefaultOpenStackBin is the OpenStack client binary used when the
	// collection profile does not name one.
	DefaultOpenStackBin = "openstack"

	// DefaultKubectlBin is the kubectl binary used when the collection
	// profile does not name one.
	DefaultKubectlBin = "kubectl"
)

// Artifact categories.  Each category is a subdirectory of the output
// directory that collects the files for one service or data source.
const (
	HealthDir   = "health"
	LogsDir     = "logs"
	DescribeDir = "describe"
	EventsDir   = "events"
	NovaDir     = "nova"
	NeutronDir  = "neutron"
	CinderDir   = "cinder"
	HeatDir     = "heat"
	KeystoneDir = "keystone"
	GlanceDir   = "glance"
)

const (
	// SummaryFile is the run summary written at the top of the output
	// directory.
	SummaryFile = "summary.txt"
)

// Environment variables an OpenStack RC file exports.  The cloud command
// requires these before it attempts to authenticate.
const (
	EnvAuthURL     = "OS_AUTH_URL"
	EnvUsername    = "OS_USERNAME"
	EnvProjectName = "OS_PROJECT_NAME"
)
