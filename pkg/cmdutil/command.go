// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package cmdutil

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// SilenceUsage suppresses the usage text and cobra's own error echo for
// errors coming out of the command's RunE, which logs them instead.
// Must be called after RunE is set so the wrapper can be installed.
func SilenceUsage(cmd *cobra.Command) {
	if cmd.RunE == nil {
		log.Fatalf("SilenceUsage() called before RunE is set for command %s", cmd.Use)
	}

	// Disable usage output on errors
	cmd.SilenceUsage = true

	runCmd := cmd.RunE
	cmd.RunE = func(c *cobra.Command, args []string) error {
		err := runCmd(c, args)
		if err != nil {
			c.SilenceErrors = true
			log.Error(err)
		}
		return err
	}
}
