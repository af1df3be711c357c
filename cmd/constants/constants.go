// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package constants

const (
	FlagKubeconfig      = "kubeconfig"
	FlagKubeconfigShort = "k"
	FlagKubeconfigHelp  = "the kubeconfig filepath"

	FlagNamespace      = "namespace"
	FlagNamespaceShort = "n"
	FlagNamespaceHelp  = "The Kubernetes namespace hosting the OpenStack control plane"

	FlagOutput      = "output"
	FlagOutputShort = "d"
	FlagOutputHelp  = "The directory that receives the collected files"

	FlagConfig      = "config"
	FlagConfigShort = "c"
	FlagConfigHelp  = "The path to a collection profile that overrides the built-in command tables"

	FlagZip      = "zip"
	FlagZipShort = "z"
	FlagZipHelp  = "Also bundle the output directory into a zip archive"

	FlagServer     = "vm"
	FlagServerHelp = "The ID or name of a server to inspect"

	FlagNetwork     = "network"
	FlagNetworkHelp = "The ID of a network with a suspected problem"

	FlagPort     = "port"
	FlagPortHelp = "The ID of a port with a suspected problem"

	FlagVolume     = "volume"
	FlagVolumeHelp = "The ID of a volume with a suspected problem"

	FlagStack     = "stack"
	FlagStackHelp = "The ID or name of a Heat stack to inspect"

	FlagUser     = "user"
	FlagUserHelp = "The ID or name of a Keystone user to inspect"
)

const (
	// DefaultClusterOutputPrefix starts the generated output directory
	// name of the cluster command.
	DefaultClusterOutputPrefix = "debug-output-"

	// DefaultCloudOutputPrefix starts the generated output directory
	// name of the cloud command.
	DefaultCloudOutputPrefix = "openstack-debug-"

	// OutputTimestampFormat stamps generated output directory names.
	OutputTimestampFormat = "20060102-150405"
)
