// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

// Ease is the CLI for artifact list management across a multi-module
// release. It provides subcommands for recording a module's artifacts
// (freeze), combining lists across modules (aggregate), re-attaching
// listed artifacts from a repository (attach, thaw), and propagating
// detached signatures (attachsignatures).
package main
