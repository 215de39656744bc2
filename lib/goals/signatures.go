// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package goals

import (
	"fmt"
	"os"
	"strings"

	"github.com/ease-build/ease/lib/project"
)

// signatureSuffix distinguishes detached-signature artifacts by type:
// "jar.asc" signs "jar", "pom.asc" signs "pom", and so on.
const signatureSuffix = ".asc"

// AttachSignatures re-attaches the module's attached artifacts and
// propagates detached signatures onto them.
//
// The module's own attachments keep only pom and pom.asc types;
// build-produced binaries for the project itself are dropped,
// re-attaching those is handled elsewhere in the release pipeline.
// Every other (dependency) artifact is re-attached, and unless it is
// itself a signature, its sibling <file>.asc must exist and is
// attached with type <type>.asc. A missing signature fails the goal:
// it means the release being assembled was never fully signed.
// Re-attachment is deduplicated by coordinate identity.
func AttachSignatures(inv *Invocation) error {
	records := inv.Attachments.List()
	inv.Attachments.Clear()

	attached := make(map[string]struct{}, len(records)*2)
	attach := func(att project.Attachment) {
		id := att.Coordinate.ID()
		if _, ok := attached[id]; ok {
			return
		}
		attached[id] = struct{}{}
		inv.Attachments.Add(att)
		inv.logger().Info("attached", "artifact", id)
	}

	for _, att := range records {
		artifactType := att.Coordinate.Type()

		if inv.Project.Owns(att.Coordinate) {
			// Only the project's pom artifacts come back.
			if artifactType == "pom" || artifactType == "pom"+signatureSuffix {
				attach(att)
			}
			continue
		}

		attach(att)
		if strings.HasSuffix(artifactType, signatureSuffix) {
			continue
		}

		signaturePath := att.File + signatureSuffix
		if _, err := os.Stat(signaturePath); err != nil {
			return fmt.Errorf("%w %s (expected at %s)", ErrMissingSignature, att.Coordinate, signaturePath)
		}
		attach(project.Attachment{
			Coordinate: att.Coordinate.WithType(artifactType + signatureSuffix),
			File:       signaturePath,
		})
	}
	return inv.Attachments.Save()
}
