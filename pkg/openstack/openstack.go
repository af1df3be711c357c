// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package openstack drives the OpenStack command line client.  Starting
// from a resource of interest it fans out across related resources and
// stores every command's output as an artifact.
//
// All collection methods are best effort.  Individual command failures
// are recorded against the report step and never abort the run.
package openstack

import (
	"encoding/json"
	"fmt"

	"github.com/osdump/osdump/pkg/artifact"
	"github.com/osdump/osdump/pkg/report"
	"github.com/osdump/osdump/pkg/runner"
)

// Client invokes the OpenStack CLI and stores what it returns.
type Client struct {
	// Bin is the OpenStack client binary.
	Bin string

	// Runner executes the CLI commands.
	Runner runner.Runner

	// Store receives the collected artifacts.
	Store *artifact.Store

	// FitWidth constrains wide table output when showing a server.
	FitWidth bool

	// PortJSON stores each port's JSON detail next to its table form.
	PortJSON bool
}

func (c *Client) run(args ...string) runner.Result {
	return c.Runner.Run(c.Bin, args...)
}

// runJSON runs the command with JSON output and decodes it into out.
func (c *Client) runJSON(out interface{}, args ...string) error {
	res := c.run(append(args, "-f", "json")...)
	if !res.Ok() {
		return fmt.Errorf("%s: %s", res.String(), res.Reason())
	}
	if err := json.Unmarshal([]byte(res.Stdout), out); err != nil {
		return fmt.Errorf("could not parse output of %s: %s", res.String(), err.Error())
	}
	return nil
}

// saveRaw stores one artifact and tallies it against the step.
func (c *Client) saveRaw(step *report.Step, category string, name string, content string) {
	if err := c.Store.Write(category, name, content); err != nil {
		step.Failf("could not store %s: %s", name, err.Error())
		return
	}
	step.AddArtifact()
}

// save stores the result of one command.  Failed commands still produce
// an artifact carrying the failure text, and the failure is recorded.
func (c *Client) save(step *report.Step, category string, name string, res runner.Result) {
	c.saveRaw(step, category, name, res.Output())
	if !res.Ok() {
		step.Failf("%s: %s", res.String(), res.Reason())
	}
}

// stringField reads a string value out of a decoded JSON object.
func stringField(doc map[string]interface{}, key string) string {
	s, _ := doc[key].(string)
	return s
}

// toStringSlice converts a decoded JSON array to its string elements,
// dropping anything else.
func toStringSlice(raw interface{}) []string {
	items, _ := raw.([]interface{})
	out := []string{}
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
