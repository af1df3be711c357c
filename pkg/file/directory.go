// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package file

import (
	"os"
	"path/filepath"
	"strings"
)

// AbsDir returns the absolute path of the directory, expanding a ~/ prefix
// if needed.
func AbsDir(dir string) (string, error) {
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(dir, "~")), nil
	}

	return filepath.Abs(dir)
}
