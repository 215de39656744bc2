// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ease-build/ease/lib/coordinate"
)

// Repository is a directory of artifacts in the standard layout.
// The zero value is invalid; construct through NewLocal, NewAlternate,
// or NewThaw.
type Repository struct {
	base string
}

// NewLocal creates a handle on the build tool's local repository at
// base. The directory is not required to exist yet: a fresh machine
// has no local repository until the first artifact lands, and goals
// report missing artifact files individually with better context.
func NewLocal(base string) (*Repository, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("resolving local repository path %s: %w", base, err)
	}
	return &Repository{base: filepath.Clean(abs)}, nil
}

// NewAlternate creates a handle on a filesystem-rooted alternate
// repository. The directory must exist, and its base must differ from
// the local repository's base. Pointing the alternate repository at
// the local repository would make attach copy files onto themselves,
// so that configuration fails here, before any file is touched.
func NewAlternate(base string, local *Repository) (*Repository, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("resolving repository path %s: %w", base, err)
	}
	abs = filepath.Clean(abs)

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("repository location does not exist: %s", base)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("repository location is not a directory: %s", base)
	}
	if local != nil && abs == local.base {
		return nil, fmt.Errorf("repository location %s is the local repository; attaching from the local repository onto itself is not allowed", base)
	}
	return &Repository{base: abs}, nil
}

// NewThaw creates a handle on a flat thaw repository: a directory
// holding previously frozen artifacts addressed purely by computed
// relative path, with no repository metadata alongside them. The
// directory must exist.
func NewThaw(base string) (*Repository, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("resolving thaw repository path %s: %w", base, err)
	}
	abs = filepath.Clean(abs)
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("thaw repository location does not exist: %s", base)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("thaw repository location is not a directory: %s", base)
	}
	return &Repository{base: abs}, nil
}

// Base returns the repository's absolute base directory.
func (r *Repository) Base() string { return r.base }

// Same reports whether other resolves to the same base directory.
func (r *Repository) Same(other *Repository) bool {
	return other != nil && r.base == other.base
}

// Find returns the absolute path where the repository stores the
// artifact. Pure path computation; the file may or may not exist.
func (r *Repository) Find(c coordinate.Coordinate) string {
	return filepath.Join(r.base, PathOf(c))
}

// PathOf returns the repository-relative path for a coordinate in the
// standard layout. Dots in the group ID separate directories.
func PathOf(c coordinate.Coordinate) string {
	group := strings.ReplaceAll(c.GroupID(), ".", "/")
	return filepath.Join(filepath.FromSlash(group), c.ArtifactID(), c.Version(), c.FileName())
}
