// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package client

import (
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
)

// GetKubeClient - return a Kubernetes clientset for use with the go-client
func GetKubeClient(kubeconfigPath string) (*rest.Config, kubernetes.Interface, error) {
	path, err := GetKubeConfigLocation(kubeconfigPath)
	if err != nil {
		return nil, nil, err
	}

	restConfig, err := BuildKubeConfig(path)
	if err != nil {
		return nil, nil, err
	}

	cs, err := kubernetes.NewForConfig(restConfig)
	return restConfig, cs, err
}
