// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package kubectl drives the kubectl binary to collect pod logs, pod
// descriptions and events from the cluster hosting the OpenStack control
// plane.  Like the OpenStack collectors it is best effort; failures are
// recorded against the report step and never abort the run.
package kubectl

import (
	"encoding/json"
	"strings"

	"github.com/osdump/osdump/pkg/artifact"
	"github.com/osdump/osdump/pkg/constants"
	"github.com/osdump/osdump/pkg/report"
	"github.com/osdump/osdump/pkg/runner"
	"github.com/osdump/osdump/pkg/util/strutil"
	log "github.com/sirupsen/logrus"
)

// Kubectl invokes the kubectl binary and stores what it returns.
type Kubectl struct {
	// Bin is the kubectl binary.
	Bin string

	// Runner executes the CLI commands.
	Runner runner.Runner

	// Store receives the collected artifacts.
	Store *artifact.Store

	// Namespace scopes every command.
	Namespace string
}

// pod is the slice of a pod document the log collector reads.
type pod struct {
	Metadata struct {
		Name string `json:"name"`
	} `json:"metadata"`
	Spec struct {
		Containers []struct {
			Name string `json:"name"`
		} `json:"containers"`
	} `json:"spec"`
}

type podList struct {
	Items []pod `json:"items"`
}

func (k *Kubectl) run(args ...string) runner.Result {
	return k.Runner.Run(k.Bin, args...)
}

func (k *Kubectl) saveRaw(step *report.Step, category string, name string, content string) {
	if err := k.Store.Write(category, name, content); err != nil {
		step.Failf("could not store %s: %s", name, err.Error())
		return
	}
	step.AddArtifact()
}

func (k *Kubectl) save(step *report.Step, category string, name string, res runner.Result) {
	k.saveRaw(step, category, name, res.Output())
	if !res.Ok() {
		step.Failf("%s: %s", res.String(), res.Reason())
	}
}

// CollectNamespaceEvents stores the namespace's event listing, ordered
// by last timestamp so the recent history reads bottom up.
func (k *Kubectl) CollectNamespaceEvents(step *report.Step) {
	log.Infof("Collecting events in namespace %s", k.Namespace)
	res := k.run("get", "events", "-n", k.Namespace, "--sort-by=.lastTimestamp")
	k.save(step, constants.EventsDir, strutil.SafeName(k.Namespace)+"_events.txt", res)
}

// CollectComponentLogs stores the container logs and pod description of
// every pod whose name contains the component name.  A component with no
// matching pods produces no artifacts.
func (k *Kubectl) CollectComponentLogs(component string, step *report.Step) {
	log.Infof("Collecting pod logs for component %s", component)

	res := k.run("get", "pods", "-n", k.Namespace, "-o", "json")
	if !res.Ok() {
		step.Failf("could not list pods in namespace %s: %s", k.Namespace, res.Reason())
		return
	}

	pods := podList{}
	if err := json.Unmarshal([]byte(res.Stdout), &pods); err != nil {
		step.Failf("could not parse pod listing of namespace %s: %s", k.Namespace, err.Error())
		return
	}

	matched := 0
	needle := strings.ToLower(component)
	for _, p := range pods.Items {
		if !strings.Contains(strings.ToLower(p.Metadata.Name), needle) {
			continue
		}
		matched++
		k.collectPod(component, p, step)
	}

	if matched == 0 {
		log.Warnf("No pods found for component %s in namespace %s", component, k.Namespace)
	}
}

func (k *Kubectl) collectPod(component string, p pod, step *report.Step) {
	name := p.Metadata.Name
	log.Infof("Collecting logs of pod %s", name)

	prefix := strutil.SafeName(component) + "_" + strutil.SafeName(name)
	for _, container := range p.Spec.Containers {
		base := prefix + "_" + strutil.SafeName(container.Name)
		k.save(step, constants.LogsDir, base+".log", k.run("logs", name, "-n", k.Namespace, "-c", container.Name))

		// Previous logs only exist after a container restart.  Keep
		// them when they do, stay quiet when they don't.
		prev := k.run("logs", name, "-n", k.Namespace, "-c", container.Name, "--previous")
		if prev.Ok() {
			k.saveRaw(step, constants.LogsDir, base+"_previous.log", prev.Stdout)
		}
	}

	k.save(step, constants.DescribeDir, prefix+".txt", k.run("describe", "pod", name, "-n", k.Namespace))
}
