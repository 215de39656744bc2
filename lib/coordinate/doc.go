// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

// Package coordinate provides the strongly typed, immutable artifact
// coordinate used throughout ease. A coordinate identifies a single
// build artifact by its five-field tuple (groupId, artifactId, type,
// optional classifier, version).
//
// The canonical text form is the colon-delimited line written to
// artifact manifests:
//
//	groupId:artifactId:type:version
//	groupId:artifactId:type:classifier:version
//
// Colons cannot be escaped within fields. This is a hard limitation of
// the manifest format, preserved for compatibility with existing
// manifests, not something to fix here.
//
// All constructors validate their inputs and return errors for invalid
// coordinates. Once constructed, a Coordinate is immutable. Identity
// comparison (deduplication in the attach goals, map keys in the
// aggregate goal) uses the canonical text form via ID.
//
// JSON and CBOR marshaling use the canonical form via
// encoding.TextMarshaler.
package coordinate
