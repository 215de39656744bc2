// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

// Package project models the build module a goal operates on.
//
// A module is described by a YAML project descriptor written by the
// build orchestrator: the module's own coordinates, its packaging,
// its build directory, the primary artifact file, and the declared
// dependencies. Goals read the descriptor and never write it.
//
// The other half of the package is the attachment registry: the
// ordered list of artifacts currently attached to the module as build
// outputs. The build tool keeps this list in memory for the duration
// of a reactor build; ease runs as one process per goal, so the list
// is persisted between goal invocations as a deterministic CBOR state
// file in the build directory (ease-attachments.cbor). Each goal loads
// the registry, mutates the in-memory ordered collection, and
// atomically rewrites the file. The registry is owned by the module's
// own build: its path is derived from the module's build directory, so
// parallel builds of independent modules never contend for it.
package project
