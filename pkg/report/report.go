// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package report accumulates the outcome of a collection run.  Every
// collection step tallies the artifacts it wrote and the failures it
// absorbed, and the result is rendered into the summary artifact.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Target is one resource the run was asked to inspect.
type Target struct {
	Name  string
	Value string
}

// Step is one unit of collection work.
type Step struct {
	// Name identifies the step in logs and the summary.
	Name string

	// Artifacts is the number of files the step wrote.
	Artifacts int

	// Failures are the non-fatal problems the step ran into.
	Failures []string
}

// AddArtifact counts one file written by this step.
func (s *Step) AddArtifact() {
	s.Artifacts++
}

// Failf records a non-fatal failure against this step and logs it.  The
// run continues; the failure lands in the summary.
func (s *Step) Failf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	s.Failures = append(s.Failures, msg)
	log.Warnf("%s: %s", s.Name, msg)
}

// Report is the outcome of a whole collection run.
type Report struct {
	// RunID uniquely identifies this collection run.
	RunID string

	// Command is the command line verb that produced the run.
	Command string

	Started  time.Time
	Finished time.Time

	// Namespace is the inspected Kubernetes namespace, if any.
	Namespace string

	// Targets are the resources the run was asked to inspect.
	Targets []Target

	// OpenStackVersion is the raw version banner of the client binary.
	OpenStackVersion string

	// OpenStackSemver is the parsed client version, empty when the
	// banner did not parse.
	OpenStackSemver string

	// KubeVersion is the API server version, if one was reachable.
	KubeVersion string

	// Steps are the collection steps in execution order.
	Steps []*Step
}

// New starts a report for the named command.
func New(command string) *Report {
	return &Report{
		RunID:   uuid.NewString(),
		Command: command,
		Started: time.Now().UTC(),
	}
}

// AddTarget records a resource the run was asked to inspect.  Empty
// values are skipped so unused flags stay out of the summary.
func (r *Report) AddTarget(name string, value string) {
	if value == "" {
		return
	}
	r.Targets = append(r.Targets, Target{Name: name, Value: value})
}

// StartStep appends a new collection step to the report.
func (r *Report) StartStep(name string) *Step {
	step := &Step{Name: name}
	r.Steps = append(r.Steps, step)
	return step
}

// Finish stamps the end of the run.
func (r *Report) Finish() {
	r.Finished = time.Now().UTC()
}

// TotalArtifacts is the number of files written across all steps.
func (r *Report) TotalArtifacts() int {
	total := 0
	for _, step := range r.Steps {
		total += step.Artifacts
	}
	return total
}

// TotalFailures is the number of failures recorded across all steps.
func (r *Report) TotalFailures() int {
	total := 0
	for _, step := range r.Steps {
		total += len(step.Failures)
	}
	return total
}

// Summary renders the run report for the summary artifact.
func (r *Report) Summary() string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "Debug Summary - %s\n", r.Started.Format(time.RFC3339))
	fmt.Fprintf(&b, "Run ID: %s\n", r.RunID)
	fmt.Fprintf(&b, "Command: %s\n", r.Command)
	if r.Namespace != "" {
		fmt.Fprintf(&b, "Namespace: %s\n", r.Namespace)
	}
	for _, target := range r.Targets {
		fmt.Fprintf(&b, "Target %s: %s\n", target.Name, target.Value)
	}
	if r.OpenStackVersion != "" {
		if r.OpenStackSemver != "" {
			fmt.Fprintf(&b, "OpenStack client: %s (%s)\n", r.OpenStackVersion, r.OpenStackSemver)
		} else {
			fmt.Fprintf(&b, "OpenStack client: %s\n", r.OpenStackVersion)
		}
	}
	if r.KubeVersion != "" {
		fmt.Fprintf(&b, "Kubernetes server: %s\n", r.KubeVersion)
	}
	if !r.Finished.IsZero() {
		fmt.Fprintf(&b, "Completed: %s (%s)\n", r.Finished.Format(time.RFC3339), r.Finished.Sub(r.Started).Round(time.Second))
	}

	fmt.Fprintf(&b, "\n")
	for _, step := range r.Steps {
		fmt.Fprintf(&b, "%s: %d artifacts, %d failures\n", step.Name, step.Artifacts, len(step.Failures))
		for _, failure := range step.Failures {
			fmt.Fprintf(&b, "  failed: %s\n", failure)
		}
	}
	return b.String()
}
