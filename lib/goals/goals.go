// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package goals

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ease-build/ease/lib/coordinate"
	"github.com/ease-build/ease/lib/manifest"
	"github.com/ease-build/ease/lib/project"
	"github.com/ease-build/ease/lib/repository"
)

// Sentinel errors for the conditions downstream tooling distinguishes.
// All are fatal; they exist so tests and callers can identify the
// failure class with errors.Is rather than string matching.
var (
	// ErrMissingArtifactFile marks a coordinate that resolved to a
	// repository path with no file behind it.
	ErrMissingArtifactFile = errors.New("missing artifact file")

	// ErrMissingSignature marks an attached artifact whose expected
	// detached signature (.asc sibling) is absent. A missing
	// signature for a supposedly signed artifact indicates an
	// incomplete release.
	ErrMissingSignature = errors.New("missing signature for artifact")
)

// Invocation carries the per-build-step state a goal operates on. The
// orchestrator constructs one per goal execution; goals own the
// attachment registry for the duration of the call.
type Invocation struct {
	Project     *project.Project
	Attachments *project.Attachments
	Local       *repository.Repository
	Logger      *slog.Logger
}

// logger returns the invocation logger, or a discard-equivalent
// default so library callers need not wire one.
func (inv *Invocation) logger() *slog.Logger {
	if inv.Logger != nil {
		return inv.Logger
	}
	return slog.Default()
}

// writeAndAttachArtifactList writes the manifest body to the module's
// build directory and attaches the file to the module with classifier
// "artifacts" and type "txt". Shared tail of the freeze and aggregate
// goals.
func writeAndAttachArtifactList(inv *Invocation, body string) error {
	p := inv.Project
	path, err := manifest.Write(p.BuildDirectory, p.ArtifactID, p.Version, body)
	if err != nil {
		return fmt.Errorf("could not write artifact list: %w", err)
	}

	manifestCoordinate, err := coordinate.New(p.GroupID, p.ArtifactID, manifest.Type, manifest.Classifier, p.Version)
	if err != nil {
		return fmt.Errorf("deriving artifact list coordinate: %w", err)
	}
	inv.Attachments.Add(project.Attachment{Coordinate: manifestCoordinate, File: path})
	if err := inv.Attachments.Save(); err != nil {
		return err
	}
	inv.logger().Info("attached artifact list to the project", "path", path)
	return nil
}
