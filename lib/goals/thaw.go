// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package goals

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/ease-build/ease/lib/coordinate"
	"github.com/ease-build/ease/lib/manifest"
	"github.com/ease-build/ease/lib/project"
	"github.com/ease-build/ease/lib/repository"
)

// ThawOptions configures the thaw goal.
type ThawOptions struct {
	// IncludeGroups selects which declared dependencies to thaw by
	// group ID. Required: thawing everything is never intended.
	IncludeGroups []string

	// ExcludeArtifacts removes individual dependencies from the
	// selection by artifact ID.
	ExcludeArtifacts []string

	// Repository overrides where thawed dependencies are fetched
	// from: a flat filesystem repository addressed purely by computed
	// layout path, bypassing repository metadata. Nil means the local
	// repository.
	Repository *repository.Repository
}

// Thaw pulls the artifacts declared by matching dependencies back
// into the current module: for each declared dependency passing the
// group/artifact filters, the dependency's own frozen artifact list
// is fetched (fatal if absent) and every listed artifact is resolved
// and attached. A pom coordinate for the dependency itself is always
// attached, synthesized from the dependency's group, artifact, and
// version when the list does not carry one, because downstream
// consumers of a thawed dependency assume its pom is present
// alongside its binary artifacts. Attachment is deduplicated by
// coordinate identity, so a pom already present in the list is never
// attached twice.
func Thaw(inv *Invocation, options ThawOptions) error {
	if len(options.IncludeGroups) == 0 {
		return fmt.Errorf("thaw requires at least one included group ID")
	}

	inv.Attachments.Clear()

	repo := options.Repository
	if repo == nil {
		repo = inv.Local
	}
	inv.logger().Info("thawing dependencies from repository", "base", repo.Base())

	for _, dependency := range inv.Project.Dependencies {
		if !slices.Contains(options.IncludeGroups, dependency.GroupID) {
			continue
		}
		if slices.Contains(options.ExcludeArtifacts, dependency.ArtifactID) {
			continue
		}
		if err := thawDependency(inv, dependency, repo); err != nil {
			return err
		}
	}
	return inv.Attachments.Save()
}

// thawDependency attaches every artifact in one dependency's frozen
// list, plus the dependency's pom.
func thawDependency(inv *Invocation, dependency project.Dependency, repo *repository.Repository) error {
	dependencyCoordinate, err := dependency.Coordinate()
	if err != nil {
		return fmt.Errorf("dependency %s:%s: %w", dependency.GroupID, dependency.ArtifactID, err)
	}

	body, err := manifest.Fetch(dependencyCoordinate, repo)
	if err != nil {
		return fmt.Errorf("could not thaw %s: %w", dependencyCoordinate, err)
	}
	coords, err := manifest.ParseBody(body)
	if err != nil {
		return fmt.Errorf("artifact list for %s: %w", dependencyCoordinate, err)
	}

	for _, c := range coords {
		if err := thawArtifact(inv, c, repo); err != nil {
			return err
		}
	}

	// Every module has a pom; attach it even when the frozen list
	// predates pom synthesis in freeze. thawArtifact deduplicates, so
	// a pom already attached from the list is not attached again.
	return thawArtifact(inv, dependencyCoordinate.Pom(), repo)
}

// thawArtifact resolves and attaches one artifact unless an artifact
// with the same coordinate identity is already attached. pom files
// are copied into the build directory and attached from the copy:
// attaching the repository's own pom file would let a later install
// step copy the file onto itself and corrupt it.
func thawArtifact(inv *Invocation, c coordinate.Coordinate, repo *repository.Repository) error {
	if inv.Attachments.Contains(c) {
		return nil
	}

	path := repo.Find(c)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s (expected at %s)", ErrMissingArtifactFile, c, path)
	}

	if c.Type() == "pom" {
		destination := filepath.Join(inv.Project.BuildDirectory, filepath.Base(path))
		if _, err := repository.CopyIfModified(path, destination); err != nil {
			return fmt.Errorf("could not copy %s: %w", filepath.Base(path), err)
		}
		path = destination
	}

	inv.Attachments.Add(project.Attachment{Coordinate: c, File: path})
	inv.logger().Info("attached", "artifact", c.ID(), "file", path)
	return nil
}
