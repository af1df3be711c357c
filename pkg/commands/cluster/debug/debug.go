// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package debug implements debug data collection for OpenStack control
// planes hosted on Kubernetes.  One run produces an artifact directory
// holding OpenStack CLI output, pod logs and namespace events, plus a
// summary of what was collected.
package debug

import (
	"fmt"

	"github.com/osdump/osdump/pkg/archive"
	"github.com/osdump/osdump/pkg/artifact"
	"github.com/osdump/osdump/pkg/config"
	"github.com/osdump/osdump/pkg/constants"
	"github.com/osdump/osdump/pkg/k8s"
	"github.com/osdump/osdump/pkg/k8s/client"
	"github.com/osdump/osdump/pkg/k8s/kubectl"
	"github.com/osdump/osdump/pkg/openstack"
	"github.com/osdump/osdump/pkg/report"
	"github.com/osdump/osdump/pkg/runner"
	log "github.com/sirupsen/logrus"
	"k8s.io/client-go/rest"
)

// Options are the options for the debug command
type Options struct {
	// KubeConfigPath is the path to the optional kubeconfig file
	KubeConfigPath string

	// Namespace is the namespace hosting the OpenStack control plane
	Namespace string

	// OutDir is the directory that receives the artifacts
	OutDir string

	// ProfilePath is the path to an optional collection profile
	ProfilePath string

	// ServerID is the ID or name of a server to inspect
	ServerID string

	// NetworkID requests network service logs for a network problem
	NetworkID string

	// PortID requests network service logs for a port problem
	PortID string

	// VolumeID requests volume service logs for a volume problem
	VolumeID string

	// StackID is the ID or name of a Heat stack to inspect
	StackID string

	// UserID is the ID or name of a Keystone user to inspect
	UserID string

	// Zip also bundles the artifact directory into a zip archive
	Zip bool
}

// commandRunner executes the external commands, overridable for unit testing
var commandRunner runner.Runner = runner.ExecRunner{}

// Debug collects debug data from a Kubernetes-hosted OpenStack control
// plane.  Prerequisite failures are fatal; collection failures are
// recorded in the report and the run carries on.
func Debug(o Options) (*report.Report, error) {
	profile, err := config.LoadProfile(o.ProfilePath, config.DefaultClusterProfile())
	if err != nil {
		return nil, err
	}

	restConfig, err := checkCluster(o)
	if err != nil {
		return nil, err
	}

	store, err := artifact.NewStore(o.OutDir)
	if err != nil {
		return nil, err
	}

	rep := report.New("osdump cluster")
	rep.Namespace = o.Namespace
	rep.AddTarget("server", o.ServerID)
	rep.AddTarget("network", o.NetworkID)
	rep.AddTarget("port", o.PortID)
	rep.AddTarget("volume", o.VolumeID)
	rep.AddTarget("stack", o.StackID)
	rep.AddTarget("user", o.UserID)

	osc := &openstack.Client{Bin: profile.OpenStackBin, Runner: commandRunner, Store: store}
	if err := osc.CheckAuth(); err != nil {
		return nil, err
	}
	rep.OpenStackVersion, rep.OpenStackSemver = osc.ClientVersion()
	if version, err := k8s.GetServerVersion(restConfig); err != nil {
		log.Warnf("Could not read the Kubernetes server version: %s", err.Error())
	} else {
		rep.KubeVersion = version
	}

	kctl := &kubectl.Kubectl{Bin: profile.KubectlBin, Runner: commandRunner, Store: store, Namespace: o.Namespace}

	osc.CollectHealth(profile.HealthChecks, rep.StartStep("health checks"))
	kctl.CollectNamespaceEvents(rep.StartStep("namespace events"))

	if o.ServerID != "" {
		step := rep.StartStep("server detail")
		server, err := osc.CollectServer(o.ServerID, step)
		if err != nil {
			step.Failf("could not read detail of server %s: %s", o.ServerID, err.Error())
		} else {
			osc.CollectImageAndFlavor(server, rep.StartStep("image and flavor"))
		}
		osc.CollectPorts(o.ServerID, rep.StartStep("ports and networks"))
		osc.CollectVolumes(o.ServerID, rep.StartStep("attached volumes"))
		osc.CollectSecurityGroups(o.ServerID, openstack.SecurityGroupsFromPortList, rep.StartStep("security groups"))

		for _, component := range profile.Components {
			kctl.CollectComponentLogs(component, rep.StartStep("pod logs: "+component))
		}
	}

	// The remaining resource flags select whose logs to collect.  A
	// network or port problem pulls the network service logs, a volume
	// problem the volume service logs.
	if o.NetworkID != "" {
		kctl.CollectComponentLogs("neutron", rep.StartStep("pod logs: neutron (network)"))
	}
	if o.PortID != "" {
		kctl.CollectComponentLogs("neutron", rep.StartStep("pod logs: neutron (port)"))
	}
	if o.VolumeID != "" {
		kctl.CollectComponentLogs("cinder", rep.StartStep("pod logs: cinder (volume)"))
	}

	if o.StackID != "" {
		osc.CollectStack(o.StackID, rep.StartStep("heat stack"))
		kctl.CollectComponentLogs("heat", rep.StartStep("pod logs: heat"))
	}
	if o.UserID != "" {
		osc.CollectUser(o.UserID, rep.StartStep("keystone user"))
		kctl.CollectComponentLogs("keystone", rep.StartStep("pod logs: keystone"))
	}

	rep.Finish()
	if err := store.WriteTop(constants.SummaryFile, rep.Summary()); err != nil {
		return nil, err
	}

	if o.Zip {
		archivePath := archive.PathFor(store.Root())
		if err := archive.Create(store.Root(), archivePath); err != nil {
			return nil, err
		}
		log.Infof("Archive written to %s", archivePath)
	}

	log.Infof("Debug collection completed, files written to %s", store.Root())
	return rep, nil
}

// checkCluster verifies that the kubeconfig, its current context and the
// target namespace are all usable before any collection starts.
func checkCluster(o Options) (*rest.Config, error) {
	log.Infof("Checking cluster access")

	kubeConfigPath, err := client.GetKubeConfigLocation(o.KubeConfigPath)
	if err != nil {
		return nil, fmt.Errorf("could not find a kubeconfig: %s", err.Error())
	}

	context, err := client.CurrentContext(kubeConfigPath)
	if err != nil {
		return nil, err
	}
	log.Infof("Using kubeconfig %s with context %s", kubeConfigPath, context)

	restConfig, kubeClient, err := client.GetKubeClient(kubeConfigPath)
	if err != nil {
		return nil, err
	}

	if _, err := k8s.GetNamespace(kubeClient, o.Namespace); err != nil {
		return nil, fmt.Errorf("cannot access namespace %s: %s", o.Namespace, err.Error())
	}
	return restConfig, nil
}
