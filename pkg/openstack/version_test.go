// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package openstack

import (
	"testing"

	"github.com/osdump/osdump/pkg/runner"
	"github.com/stretchr/testify/assert"
)

func TestClientVersion(t *testing.T) {
	testCases := []struct {
		testName       string
		result         runner.Result
		expectedBanner string
		expectedSemver string
	}{
		{"test stdout banner", ok("openstack 6.2.0"), "openstack 6.2.0", "6.2.0"},
		{"test stderr banner", runner.Result{Stderr: "openstack 3.14.2"}, "openstack 3.14.2", "3.14.2"},
		{"test v prefix", ok("openstack v6.2.0"), "openstack v6.2.0", "6.2.0"},
		{"test unparseable banner", ok("openstack unknown"), "openstack unknown", ""},
		{"test no banner", ok(""), "", ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.testName, func(t *testing.T) {
			client, _ := newTestClient(t, map[string]runner.Result{
				"openstack --version": testCase.result,
			})

			banner, version := client.ClientVersion()
			assert.Equal(t, testCase.expectedBanner, banner)
			assert.Equal(t, testCase.expectedSemver, version)
		})
	}
}
