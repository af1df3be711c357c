// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package debug implements debug data collection for standalone
// OpenStack clouds.  The cloud is reached with the credentials an
// OpenStack RC file exports; there is no hosting cluster to pull pod
// logs or events from.
package debug

import (
	"github.com/osdump/osdump/pkg/archive"
	"github.com/osdump/osdump/pkg/artifact"
	"github.com/osdump/osdump/pkg/config"
	"github.com/osdump/osdump/pkg/constants"
	"github.com/osdump/osdump/pkg/openstack"
	"github.com/osdump/osdump/pkg/report"
	"github.com/osdump/osdump/pkg/runner"
	log "github.com/sirupsen/logrus"
)

// Options are the options for the debug command
type Options struct {
	// OutDir is the directory that receives the artifacts
	OutDir string

	// ProfilePath is the path to an optional collection profile
	ProfilePath string

	// ServerID is the ID or name of a server to inspect
	ServerID string

	// NetworkID is accepted for parity with the cluster command.  A
	// standalone cloud has no service logs to pull for it.
	NetworkID string

	// PortID is accepted for parity with the cluster command
	PortID string

	// VolumeID is accepted for parity with the cluster command
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

// Debug collects debug data from a standalone OpenStack cloud.
// Prerequisite failures are fatal; collection failures are recorded in
// the report and the run carries on.
func Debug(o Options) (*report.Report, error) {
	profile, err := config.LoadProfile(o.ProfilePath, config.DefaultCloudProfile())
	if err != nil {
		return nil, err
	}

	if err := openstack.CheckAuthEnv(); err != nil {
		return nil, err
	}

	store, err := artifact.NewStore(o.OutDir)
	if err != nil {
		return nil, err
	}

	rep := report.New("osdump cloud")
	rep.AddTarget("server", o.ServerID)
	rep.AddTarget("network", o.NetworkID)
	rep.AddTarget("port", o.PortID)
	rep.AddTarget("volume", o.VolumeID)
	rep.AddTarget("stack", o.StackID)
	rep.AddTarget("user", o.UserID)

	osc := &openstack.Client{
		Bin:      profile.OpenStackBin,
		Runner:   commandRunner,
		Store:    store,
		FitWidth: true,
		PortJSON: true,
	}
	if err := osc.CheckAuth(); err != nil {
		return nil, err
	}
	rep.OpenStackVersion, rep.OpenStackSemver = osc.ClientVersion()

	osc.CollectHealth(profile.HealthChecks, rep.StartStep("health checks"))

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
		osc.CollectSecurityGroups(o.ServerID, openstack.SecurityGroupsFromPortShow, rep.StartStep("security groups"))
	}

	if o.StackID != "" {
		osc.CollectStack(o.StackID, rep.StartStep("heat stack"))
	}
	if o.UserID != "" {
		osc.CollectUser(o.UserID, rep.StartStep("keystone user"))
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
