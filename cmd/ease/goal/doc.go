// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

// Package goal implements the ease build-goal subcommands: freeze,
// aggregate, attach, thaw, and attachsignatures.
//
// Every goal operates on the project described by the descriptor at
// --project (default ease.yaml) and on the attachment state file in
// the project's build directory. Repository locations come from the
// tool configuration, loaded from --config or the EASE_CONFIG
// environment variable, with ~/.m2/repository as the stock default.
package goal
