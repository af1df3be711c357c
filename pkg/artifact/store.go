// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package artifact owns the layout of the output directory.  Collectors
// hand it (category, name, payload) triples and it places the files.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/osdump/osdump/pkg/file"
)

// Store writes collected artifacts under a single output directory, one
// subdirectory per category.
type Store struct {
	root string
}

// NewStore creates the output directory if necessary and returns a store
// rooted there.  Relative paths are made absolute and a leading ~/
// expands to the user's home directory.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("an output directory must be specified")
	}

	root, err := file.AbsDir(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(root, 0744); err != nil {
		return nil, err
	}

	return &Store{root: root}, nil
}

// Root returns the absolute path of the output directory.
func (s *Store) Root() string {
	return s.root
}

// Path returns the absolute path an artifact is written to.
func (s *Store) Path(category string, name string) string {
	return filepath.Join(s.root, category, name)
}

// Write stores one artifact, creating its category subdirectory on first
// use.  Writing the same artifact twice overwrites the previous content.
func (s *Store) Write(category string, name string, content string) error {
	path := s.Path(category, name)
	if err := os.MkdirAll(filepath.Dir(path), 0744); err != nil {
		return fmt.Errorf("could not create artifact directory %s: %s", filepath.Dir(path), err.Error())
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("could not write artifact %s: %s", path, err.Error())
	}
	return nil
}

// WriteTop stores an artifact directly at the output directory root, for
// files that span categories such as the run summary.
func (s *Store) WriteTop(name string, content string) error {
	return s.Write("", name, content)
}
