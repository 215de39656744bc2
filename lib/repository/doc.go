// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

// Package repository locates artifact files on disk.
//
// A Repository is a directory laid out in the standard convention:
//
//	<base>/<groupId with dots as slashes>/<artifactId>/<version>/
//	    <artifactId>-<version>[-<classifier>].<type>
//
// The layout convention itself is owned by the external build tool;
// this package only computes paths within it. Find performs pure path
// computation and never consults repository metadata, so a repository
// handle works equally for the build tool's local repository, an
// alternate filesystem repository, and the flat thaw repository.
// Existence of the resulting file is the caller's concern: every goal
// treats a missing artifact file as fatal, except where a tolerate
// policy says otherwise.
//
// [NewAlternate] enforces the one repository invariant ease owns: an
// alternate repository must not share a base directory with the local
// repository. Attaching from a repository onto itself would copy files
// onto themselves and corrupt them, so the constructor fails fast
// before any file is touched.
//
// [CopyIfModified] provides the copy semantics the attach goals use to
// move repository files into the build directory: the copy is skipped
// when the destination already has identical content, determined by a
// streamed SHA256 compare rather than timestamps (build orchestrators
// routinely reset mtimes, so content is the only reliable signal).
package repository
