// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package cluster

import (
	"fmt"
	"time"

	"github.com/gosuri/uitable"
	"github.com/osdump/osdump/cmd/constants"
	"github.com/osdump/osdump/pkg/cmdutil"
	"github.com/osdump/osdump/pkg/commands/cluster/debug"
	"github.com/spf13/cobra"
)

const (
	CommandName = "cluster"
	helpShort   = "Collect debug data from a Kubernetes-hosted control plane"
	helpLong    = `Collect debug data from an OpenStack control plane running in a
Kubernetes namespace.  The collection always includes service health
checks and namespace events.  Resource flags add OpenStack resource
details and the pod logs of the services involved.`
	helpExample = `
  # collect health checks and events from the pcd namespace
  osdump cluster --namespace pcd

  # inspect a misbehaving server, bundling the output into a zip archive
  osdump cluster -n pcd --vm 0088e7bd-85fe-4abf-9e66-cc40bda9a75e -z

  # collect volume service logs for a volume problem
  osdump cluster -n pcd --volume 41d3b8d9-9a0a-4c54-82b6-84d24d2a8a45
`
)

var options debug.Options

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   CommandName,
		Short: helpShort,
		Long:  helpLong,
		Args:  cobra.MatchAll(cobra.ExactArgs(0), cobra.OnlyValidArgs),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return RunCmd(cmd)
	}
	cmd.Example = helpExample
	cmdutil.SilenceUsage(cmd)

	defaultOut := constants.DefaultClusterOutputPrefix + time.Now().Format(constants.OutputTimestampFormat)

	cmd.Flags().StringVarP(&options.KubeConfigPath, constants.FlagKubeconfig, constants.FlagKubeconfigShort, "", constants.FlagKubeconfigHelp)
	cmd.Flags().StringVarP(&options.Namespace, constants.FlagNamespace, constants.FlagNamespaceShort, "", constants.FlagNamespaceHelp)
	cmd.Flags().StringVarP(&options.OutDir, constants.FlagOutput, constants.FlagOutputShort, defaultOut, constants.FlagOutputHelp)
	cmd.Flags().StringVarP(&options.ProfilePath, constants.FlagConfig, constants.FlagConfigShort, "", constants.FlagConfigHelp)
	cmd.Flags().StringVar(&options.ServerID, constants.FlagServer, "", constants.FlagServerHelp)
	cmd.Flags().StringVar(&options.NetworkID, constants.FlagNetwork, "", constants.FlagNetworkHelp)
	cmd.Flags().StringVar(&options.PortID, constants.FlagPort, "", constants.FlagPortHelp)
	cmd.Flags().StringVar(&options.VolumeID, constants.FlagVolume, "", constants.FlagVolumeHelp)
	cmd.Flags().StringVar(&options.StackID, constants.FlagStack, "", constants.FlagStackHelp)
	cmd.Flags().StringVar(&options.UserID, constants.FlagUser, "", constants.FlagUserHelp)
	cmd.Flags().BoolVarP(&options.Zip, constants.FlagZip, constants.FlagZipShort, false, constants.FlagZipHelp)

	cmd.MarkFlagRequired(constants.FlagNamespace)

	return cmd
}

// RunCmd runs the "osdump cluster" command
func RunCmd(cmd *cobra.Command) error {
	rep, err := debug.Debug(options)
	if err != nil {
		return err
	}

	table := uitable.New()
	table.AddRow("STEP", "ARTIFACTS", "FAILURES")

	for _, step := range rep.Steps {
		table.AddRow(step.Name, step.Artifacts, len(step.Failures))
	}
	fmt.Println(table)

	return nil
}
