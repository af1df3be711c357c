// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package runner executes the external commands that produce debug data.
// Collectors depend on the Runner interface so tests can substitute
// canned results for real CLI invocations.
package runner

import (
	"bytes"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Result is the outcome of a single command invocation.
type Result struct {
	// Args is the full argument vector, including the binary name.
	Args []string

	// Stdout is the trimmed standard output of the command.
	Stdout string

	// Stderr is the trimmed standard error of the command.
	Stderr string

	// Err is nil if the command started and exited zero.
	Err error
}

// Ok reports whether the command ran to completion successfully.
func (r Result) Ok() bool {
	return r.Err == nil
}

// Reason describes why a command failed, preferring the command's own
// stderr over the process error.
func (r Result) Reason() string {
	if r.Err == nil {
		return ""
	}
	if r.Stderr != "" {
		return r.Stderr
	}
	return r.Err.Error()
}

// Output is the payload written to artifact files.  Successful commands
// contribute their stdout.  Failed commands contribute an ERROR line so
// the bundle records what went wrong without the console log.
func (r Result) Output() string {
	if r.Err == nil {
		return r.Stdout
	}
	return "ERROR: " + r.Reason()
}

// String renders the argument vector as a command line.
func (r Result) String() string {
	return strings.Join(r.Args, " ")
}

// Runner runs a command and reports the result.  Failures are returned in
// the Result, never as a panic or exit.
type Runner interface {
	Run(name string, args ...string) Result
}

// ExecRunner runs commands on the local host, buffering both output
// streams until the command exits.
type ExecRunner struct{}

// Run implements Runner with os/exec.
func (e ExecRunner) Run(name string, args ...string) Result {
	cmd := exec.Command(name, args...)
	stdout := bytes.Buffer{}
	stderr := bytes.Buffer{}
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debugf("Running command: %s", strings.Join(cmd.Args, " "))
	err := cmd.Run()

	res := Result{
		Args:   cmd.Args,
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
		Err:    err,
	}
	if !res.Ok() {
		log.Errorf("Command failed: %s: %s", res.String(), res.Reason())
	}
	return res
}
