// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest reads, writes, and merges artifact-list manifests.
//
// A manifest is the text file produced by the freeze and aggregate
// goals: UTF-8, one artifact coordinate per line in the canonical
// g:a:t[:c]:v form, newline-terminated, no header, no escaping. The
// file is named <artifactId>-<version>-artifacts.txt inside the
// module's build directory and is attached to the module with
// classifier "artifacts" and type "txt", so downstream modules fetch
// it through ordinary coordinate-based repository lookup.
//
// Downstream goals treat a fetched manifest strictly as the bytes the
// upstream freeze produced. The two merge policies differ exactly in
// how far that opacity goes: the canonical per-dependency
// concatenation keeps each dependency's body intact (deduplicating
// whole dependencies only, via the sorted map key), while the legacy
// line-set union re-sorts and deduplicates individual lines across
// all inputs. See the merge functions for the trade-off.
package manifest
