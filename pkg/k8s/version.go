// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package k8s

import (
	"k8s.io/client-go/discovery"
	"k8s.io/client-go/rest"
)

// GetServerVersion reports the API server's version string.
func GetServerVersion(restConf *rest.Config) (string, error) {
	dc, err := discovery.NewDiscoveryClientForConfig(restConf)
	if err != nil {
		return "", err
	}

	inf, err := dc.ServerVersion()
	if err != nil {
		return "", err
	}
	return inf.GitVersion, nil
}
