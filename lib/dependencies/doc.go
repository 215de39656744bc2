// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

// Package dependencies selects the dependency set a goal operates on.
//
// Dependency resolution itself is owned by the external build tool.
// This package consumes its output through the narrow [TreeBuilder]
// interface: a project resolves to a flat list of tree nodes, each
// carrying only an artifact coordinate and an inclusion state. The
// shipped implementation, [FileTree], reads the tree from a text file
// the orchestrator produces alongside the project descriptor; tests
// substitute an in-memory tree. Nothing in ease walks a dependency
// graph.
//
// [Filter] implements the include/exclude pattern matching applied to
// candidate artifacts. Patterns address the coordinate as
// groupId:artifactId:type:version; each segment may use "*" wildcards
// and trailing segments may be omitted (an omitted segment matches
// anything). An artifact is selected only when it passes BOTH the
// include filter (if any patterns are configured) and the exclude
// filter (if any are). With no patterns configured everything passes.
//
// [Select] combines the two: the full filtered transitive set from
// the tree, or the filtered direct dependencies when transitive
// resolution is excluded. The project's own artifact, which the tree
// builder reports as the root node, is always removed from the
// result.
package dependencies
