// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package cloud

import (
	"fmt"
	"time"

	"github.com/gosuri/uitable"
	"github.com/osdump/osdump/cmd/constants"
	"github.com/osdump/osdump/pkg/cmdutil"
	"github.com/osdump/osdump/pkg/commands/cloud/debug"
	"github.com/spf13/cobra"
)

const (
	CommandName = "cloud"
	helpShort   = "Collect debug data from a standalone cloud"
	helpLong    = `Collect debug data from a standalone OpenStack cloud.  The cloud is
reached with the credentials of a sourced OpenStack RC file.  The
collection always includes service health checks; resource flags add
OpenStack resource details.`
	helpExample = `
  # collect the service health checks
  source ~/admin-openrc.sh && osdump cloud

  # inspect a misbehaving server, bundling the output into a zip archive
  osdump cloud --vm 0088e7bd-85fe-4abf-9e66-cc40bda9a75e -z

  # inspect a Heat stack and a Keystone user
  osdump cloud --stack overcloud --user svc-nova
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

	defaultOut := constants.DefaultCloudOutputPrefix + time.Now().Format(constants.OutputTimestampFormat)

	cmd.Flags().StringVarP(&options.OutDir, constants.FlagOutput, constants.FlagOutputShort, defaultOut, constants.FlagOutputHelp)
	cmd.Flags().StringVarP(&options.ProfilePath, constants.FlagConfig, constants.FlagConfigShort, "", constants.FlagConfigHelp)
	cmd.Flags().StringVar(&options.ServerID, constants.FlagServer, "", constants.FlagServerHelp)
	cmd.Flags().StringVar(&options.NetworkID, constants.FlagNetwork, "", constants.FlagNetworkHelp)
	cmd.Flags().StringVar(&options.PortID, constants.FlagPort, "", constants.FlagPortHelp)
	cmd.Flags().StringVar(&options.VolumeID, constants.FlagVolume, "", constants.FlagVolumeHelp)
	cmd.Flags().StringVar(&options.StackID, constants.FlagStack, "", constants.FlagStackHelp)
	cmd.Flags().StringVar(&options.UserID, constants.FlagUser, "", constants.FlagUserHelp)
	cmd.Flags().BoolVarP(&options.Zip, constants.FlagZip, constants.FlagZipShort, false, constants.FlagZipHelp)

	return cmd
}

// RunCmd runs the "osdump cloud" command
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
