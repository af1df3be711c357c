// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package client locates kubeconfig files and builds Kubernetes clients
// from them.
package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// EnvVarKubeConfig Name of Environment Variable for KUBECONFIG
const EnvVarKubeConfig = "KUBECONFIG"

const APIServerBurst = 150
const APIServerQPS = 100

// sanitizePath converts the input path to an absolute path and checks
// that the file exists.
func sanitizePath(path string) (string, error) {
	log.Debugf("Sanitizing %s", path)
	path, err := filepath.Abs(path)
	if err != nil {
		return path, err
	}

	_, err = os.Stat(path)
	if err != nil {
		return path, err
	}

	return path, nil
}

// GetKubeConfigLocation resolves the kubeconfig file to use.  An
// explicit path wins, then the KUBECONFIG environment variable, then
// the default file under the home directory.
func GetKubeConfigLocation(kubeconfigPath string) (string, error) {
	if kubeconfigPath != "" {
		return sanitizePath(kubeconfigPath)
	}

	if kubeConfig := os.Getenv(EnvVarKubeConfig); len(kubeConfig) > 0 {
		path, err := sanitizePath(kubeConfig)
		if err != nil {
			err = fmt.Errorf("failed to access the kubeconfig set by the environment variable %s", EnvVarKubeConfig)
		}
		return path, err
	}

	if home := homedir.HomeDir(); home != "" {
		return sanitizePath(filepath.Join(home, ".kube", "config"))
	}

	return "", errors.New("unable to find kubeconfig")
}

// BuildKubeConfig builds a client configuration from a kubeconfig file.
func BuildKubeConfig(kubeconfig string) (*rest.Config, error) {
	config, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
	if err != nil {
		return nil, err
	}

	setConfigQPSBurst(config)
	return config, nil
}

// CurrentContext reports the current context name of a kubeconfig file.
func CurrentContext(kubeconfigPath string) (string, error) {
	contents, err := os.ReadFile(kubeconfigPath)
	if err != nil {
		return "", err
	}

	config, err := clientcmd.Load(contents)
	if err != nil {
		return "", err
	}

	if config.CurrentContext == "" {
		return "", fmt.Errorf("kubeconfig %s has no current context", kubeconfigPath)
	}
	if _, ok := config.Contexts[config.CurrentContext]; !ok {
		return "", fmt.Errorf("kubeconfig %s does not define context %s", kubeconfigPath, config.CurrentContext)
	}
	return config.CurrentContext, nil
}

func setConfigQPSBurst(config *rest.Config) {
	config.Burst = APIServerBurst
	config.QPS = APIServerQPS
}
