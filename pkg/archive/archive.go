// Copyright (c) 2025, the osdump authors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package archive bundles a finished artifact directory into a zip file
// for attaching to a support ticket.
package archive

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// PathFor returns the archive path for an artifact directory.  The
// archive lands next to the directory, carrying its name.
func PathFor(outDir string) string {
	return filepath.Clean(outDir) + ".zip"
}

// Create writes a zip archive at archivePath from the files in
// captureDir.  Entry names are relative to the directory so the archive
// unpacks into a single folder.
func Create(captureDir string, archivePath string) error {
	directoryPath := filepath.Dir(archivePath)
	if _, err := os.Stat(directoryPath); errors.Is(err, os.ErrNotExist) {
		if err = os.MkdirAll(directoryPath, 0744); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	archiveFile, err := os.Create(archivePath)
	if err != nil {
		return err
	}
	defer archiveFile.Close()

	zipWriter := zip.NewWriter(archiveFile)
	defer zipWriter.Close()

	walkFn := func(path string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fileInfo.Mode().IsDir() {
			return nil
		}

		filePath, err := filepath.Rel(captureDir, path)
		if err != nil {
			return err
		}

		fileReader, err := os.Open(path)
		if err != nil {
			return err
		}
		defer fileReader.Close()

		entry, err := zipWriter.Create(filepath.ToSlash(filePath))
		if err != nil {
			return err
		}
		_, err = io.Copy(entry, fileReader)
		return err
	}

	return filepath.Walk(captureDir, walkFn)
}
