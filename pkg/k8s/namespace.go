// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package k8s holds the Kubernetes API helpers the cluster command uses
// to validate its target before any collection starts.
package k8s

import (
	"context"
	"fmt"

	v1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// GetNamespace returns a single namespace.  A missing namespace is
// reported in terms of the name so the caller can surface it directly.
func GetNamespace(client kubernetes.Interface, name string) (*v1.Namespace, error) {
	ns, err := client.CoreV1().Namespaces().Get(context.TODO(), name, metav1.GetOptions{})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, fmt.Errorf("namespace %s does not exist", name)
		}
		return nil, err
	}
	return ns, nil
}
