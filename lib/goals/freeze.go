// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package goals

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ease-build/ease/lib/coordinate"
	"github.com/ease-build/ease/lib/manifest"
	"github.com/ease-build/ease/lib/project"
)

// FreezeOptions configures the freeze goal.
type FreezeOptions struct {
	// IgnoreEmpty silently skips attached artifacts that lack a
	// resolvable backing file instead of failing the goal.
	IgnoreEmpty bool
}

// Freeze records the module's artifacts: the primary artifact's
// coordinate followed by each attached artifact's coordinate, in
// attachment order, written to the module's artifact-list manifest
// and attached to the module. The manifest always contains a pom
// coordinate for the module: when neither the primary artifact nor
// any attachment has type "pom", one is synthesized and appended,
// because every module has a pom artifact.
func Freeze(inv *Invocation, options FreezeOptions) error {
	p := inv.Project

	primary, err := p.Coordinate()
	if err != nil {
		return err
	}
	coords := []coordinate.Coordinate{primary}
	hasPom := primary.Type() == "pom"

	for _, attached := range inv.Attachments.List() {
		c, ok, err := frozenCoordinate(inv, attached, options)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if c.Type() == "pom" {
			hasPom = true
		}
		coords = append(coords, c)
	}

	if !hasPom {
		pom, err := p.PomCoordinate()
		if err != nil {
			return err
		}
		coords = append(coords, pom)
	}

	return writeAndAttachArtifactList(inv, manifest.Format(coords))
}

// frozenCoordinate derives the manifest coordinate for one attached
// artifact. pom-typed attachments keep their type without touching
// the file (pom modules routinely have no artifact file on disk);
// everything else takes its type from the backing file's extension,
// which requires the file to resolve.
func frozenCoordinate(inv *Invocation, attached project.Attachment, options FreezeOptions) (coordinate.Coordinate, bool, error) {
	c := attached.Coordinate
	if c.Type() == "pom" {
		return c, true, nil
	}

	if attached.File == "" {
		return skipOrFail(inv, c, options, "no backing file recorded")
	}
	if _, err := os.Stat(attached.File); err != nil {
		return skipOrFail(inv, c, options, fmt.Sprintf("backing file %s does not exist", attached.File))
	}

	extension := strings.TrimPrefix(filepath.Ext(attached.File), ".")
	if extension == "" {
		return coordinate.Coordinate{}, false, fmt.Errorf("cannot infer artifact type for %s from file name %s", c, attached.File)
	}
	return c.WithType(extension), true, nil
}

// skipOrFail applies the tolerate-missing policy for one unresolvable
// attachment.
func skipOrFail(inv *Invocation, c coordinate.Coordinate, options FreezeOptions, reason string) (coordinate.Coordinate, bool, error) {
	if options.IgnoreEmpty {
		inv.logger().Warn("skipping attached artifact", "artifact", c.ID(), "reason", reason)
		return coordinate.Coordinate{}, false, nil
	}
	return coordinate.Coordinate{}, false, fmt.Errorf("attached artifact %s: %s", c, reason)
}
