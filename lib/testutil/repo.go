// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ease-build/ease/lib/coordinate"
	"github.com/ease-build/ease/lib/manifest"
	"github.com/ease-build/ease/lib/repository"
)

// MustParse parses a coordinate line or fails the test.
func MustParse(t *testing.T, line string) coordinate.Coordinate {
	t.Helper()
	c, err := coordinate.Parse(line)
	if err != nil {
		t.Fatalf("Parse(%q): %v", line, err)
	}
	return c
}

// SeedArtifact writes content at the coordinate's standard-layout
// path under base and returns the absolute file path.
func SeedArtifact(t *testing.T, base, line, content string) string {
	t.Helper()
	c := MustParse(t, line)
	path := filepath.Join(base, repository.PathOf(c))
	WriteFile(t, path, content)
	return path
}

// SeedManifest writes an artifact-list manifest for the module
// identified by ownerLine (classifier "artifacts", type "txt") under
// base, as a prior freeze run would have installed it. Returns the
// manifest path.
func SeedManifest(t *testing.T, base, ownerLine, body string) string {
	t.Helper()
	owner := MustParse(t, ownerLine)
	manifestCoordinate, err := manifest.CoordinateFor(owner)
	if err != nil {
		t.Fatalf("CoordinateFor(%q): %v", ownerLine, err)
	}
	path := filepath.Join(base, repository.PathOf(manifestCoordinate))
	WriteFile(t, path, body)
	return path
}

// WriteFile writes content at path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// ReadFile reads the file at path or fails the test.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
