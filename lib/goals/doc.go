// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

// Package goals implements the five ease build steps: freeze,
// aggregate, attach, thaw, and attachsignatures.
//
// Each goal is a single, synchronous, single-threaded pass over a
// handful of artifact records: load, filter and resolve, transform,
// write and attach, done. There are no retries and no partial-success
// continuation; any fatal condition (a missing upstream manifest, an
// unparsable coordinate, a missing artifact or signature file, an
// invalid repository configuration, an I/O failure) aborts the whole
// goal with a wrapped error naming the file or dependency involved.
// The one exception is freeze's tolerate-missing option, which
// downgrades an attached artifact without a backing file to a warning
// and a skip.
//
// Goals operate on an [Invocation]: the project descriptor, the
// module's attachment registry, the local repository handle, and a
// logger. The registry is cleared and repopulated explicitly by the
// goals that rebuild it; nothing is ambient.
package goals
