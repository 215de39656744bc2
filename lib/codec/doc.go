// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration for
// ease on-disk state.
//
// ease uses two serialization formats with a clear boundary:
//
//   - Text and JSON for external interfaces: the artifact manifest
//     format (fixed by the external interface contract), the project
//     descriptor (YAML), and CLI --json output.
//   - CBOR for internal state: the attachment state file that carries
//     a module's ordered attached-artifact list between goal
//     invocations.
//
// This package provides the shared CBOR encoding and decoding modes so
// that state files encode identically regardless of which goal wrote
// them. The encoder uses Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer encoding, no indefinite-length
// items. Same logical data always produces identical bytes, which
// keeps repeated goal runs from rewriting an unchanged state file with
// different contents.
//
// Coordinate values serialize as CBOR text strings through their
// encoding.TextMarshaler implementation; without the TextMarshaler
// bridge they would serialize as empty CBOR maps, losing their
// identity.
package codec
