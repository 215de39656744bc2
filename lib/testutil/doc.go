// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for ease packages.
//
// The helpers build throwaway repository layouts: [SeedArtifact]
// places a file at a coordinate's standard-layout path under a
// repository base, and [SeedManifest] freezes a fake artifact list
// for a module so goals that fetch upstream manifests can run against
// a plain temporary directory.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no dependencies on other ease packages beyond the
// coordinate and repository path computation it seeds for.
package testutil
