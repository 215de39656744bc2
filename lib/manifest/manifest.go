// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ease-build/ease/lib/coordinate"
	"github.com/ease-build/ease/lib/repository"
)

// Classifier and Type identify a manifest artifact in a repository.
const (
	Classifier = "artifacts"
	Type       = "txt"
)

// ErrMissing marks a required upstream manifest that does not exist.
// Every dependency consumed by aggregate or thaw must have frozen its
// own artifact list beforehand; a missing manifest is fatal, never
// skippable.
var ErrMissing = errors.New("artifact list not found")

// FileName returns the manifest file name for a module.
func FileName(artifactID, version string) string {
	return artifactID + "-" + version + "-artifacts.txt"
}

// Path returns the manifest path inside a build directory.
func Path(buildDirectory, artifactID, version string) string {
	return filepath.Join(buildDirectory, FileName(artifactID, version))
}

// CoordinateFor returns the coordinate under which a module's
// manifest is attached and fetched: the module's group, artifact, and
// version with classifier "artifacts" and type "txt".
func CoordinateFor(c coordinate.Coordinate) (coordinate.Coordinate, error) {
	return coordinate.New(c.GroupID(), c.ArtifactID(), Type, Classifier, c.Version())
}

// Format renders coordinates as a manifest body, one canonical line
// per coordinate, each newline-terminated. Order is preserved.
func Format(coords []coordinate.Coordinate) string {
	var b strings.Builder
	b.Grow(len(coords) * 48)
	for _, c := range coords {
		b.WriteString(c.ID())
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseBody parses a manifest body into coordinates. Blank lines are
// skipped (the trailing newline of a well-formed manifest produces
// one); any non-blank line that is not a valid coordinate fails the
// whole parse.
func ParseBody(body string) ([]coordinate.Coordinate, error) {
	var coords []coordinate.Coordinate
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := coordinate.Parse(line)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return coords, nil
}

// Write freshly writes a manifest body to the module's build
// directory, creating the directory if needed. The file is never
// updated incrementally: each build invocation replaces it whole,
// through a temporary file renamed into place so concurrent readers
// in a parallel reactor never see a partial manifest.
func Write(buildDirectory, artifactID, version, body string) (string, error) {
	if err := os.MkdirAll(buildDirectory, 0o755); err != nil {
		return "", fmt.Errorf("creating build directory %s: %w", buildDirectory, err)
	}

	path := Path(buildDirectory, artifactID, version)
	tmp, err := os.CreateTemp(buildDirectory, "."+FileName(artifactID, version)+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("creating temporary artifact list: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.WriteString(body); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing artifact list: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing artifact list: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("replacing artifact list %s: %w", path, err)
	}
	return path, nil
}

// Fetch locates and reads the manifest of a previously frozen module
// in a repository, keyed by that module's own coordinate. Returns the
// manifest body. A missing file is reported through ErrMissing with
// the owning coordinate named, since the fix (freeze the dependency
// first) is on the caller's side of the build.
func Fetch(owner coordinate.Coordinate, repo *repository.Repository) (string, error) {
	manifestCoordinate, err := CoordinateFor(owner)
	if err != nil {
		return "", fmt.Errorf("deriving artifact list coordinate for %s: %w", owner, err)
	}
	path := repo.Find(manifestCoordinate)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w for %s (expected at %s)", ErrMissing, owner, path)
	}
	if err != nil {
		return "", fmt.Errorf("reading artifact list for %s: %w", owner, err)
	}
	return string(data), nil
}
