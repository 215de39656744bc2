// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package goals

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ease-build/ease/lib/coordinate"
	"github.com/ease-build/ease/lib/manifest"
	"github.com/ease-build/ease/lib/project"
	"github.com/ease-build/ease/lib/repository"
)

// AttachOptions configures the attach goal.
type AttachOptions struct {
	// ArtifactList is the manifest file to attach from. Required.
	ArtifactList string

	// Repository is the alternate repository to resolve against.
	// Nil means the local repository. Constructed through
	// repository.NewAlternate, which has already enforced that its
	// base differs from the local repository's.
	Repository *repository.Repository
}

// Attach reads an artifact-list manifest and re-attaches every listed
// artifact to the module. The attachment registry is cleared first,
// so re-running the goal is idempotent. Artifacts resolved from the
// local repository are copied into the build directory and attached
// from the copy, so downstream install and deploy steps operate on
// build-local files rather than the shared local repository's.
func Attach(inv *Invocation, options AttachOptions) error {
	inv.Attachments.Clear()

	data, err := os.ReadFile(options.ArtifactList)
	if err != nil {
		return fmt.Errorf("could not read artifact list from %s: %w", options.ArtifactList, err)
	}
	coords, err := manifest.ParseBody(string(data))
	if err != nil {
		return fmt.Errorf("artifact list %s: %w", options.ArtifactList, err)
	}

	repo := options.Repository
	fromLocal := repo == nil
	if fromLocal {
		repo = inv.Local
	}
	inv.logger().Info("loading artifacts from repository", "base", repo.Base())

	for _, c := range coords {
		if err := attachResolved(inv, c, repo, fromLocal); err != nil {
			return err
		}
	}
	return inv.Attachments.Save()
}

// attachResolved locates one artifact in the repository and attaches
// it, copying local-repository files into the build directory first.
func attachResolved(inv *Invocation, c coordinate.Coordinate, repo *repository.Repository, copyToBuild bool) error {
	path := repo.Find(c)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s (expected at %s)", ErrMissingArtifactFile, c, path)
	}

	if copyToBuild {
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
