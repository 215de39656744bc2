// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"
	"sort"
	"strings"
)

// MergePolicy selects how aggregate combines fetched manifests.
type MergePolicy string

const (
	// MergeDependencies is the canonical policy: one manifest body
	// per dependency, keyed by dependency id, concatenated in sorted
	// id order. Each dependency's internal line order survives
	// untouched, and only whole dependencies deduplicate (two
	// dependencies with the same id contribute one body).
	MergeDependencies MergePolicy = "dependencies"

	// MergeLines is the legacy policy: the union of all distinct
	// lines across all fetched manifests, lexicographically sorted.
	// Duplicate lines inside a single dependency's manifest collapse,
	// which the canonical policy deliberately does not do.
	MergeLines MergePolicy = "lines"
)

// ParsePolicy validates a policy name from the CLI.
func ParsePolicy(name string) (MergePolicy, error) {
	switch MergePolicy(name) {
	case MergeDependencies, MergeLines:
		return MergePolicy(name), nil
	default:
		return "", fmt.Errorf("unknown merge policy %q: must be %q or %q", name, MergeDependencies, MergeLines)
	}
}

// Merge combines manifest bodies keyed by dependency id according to
// the policy. Bodies are treated as opaque byte sequences under
// MergeDependencies and as line sets under MergeLines.
func Merge(policy MergePolicy, bodies map[string]string) string {
	switch policy {
	case MergeLines:
		return mergeLines(bodies)
	default:
		return mergeDependencies(bodies)
	}
}

// mergeDependencies concatenates whole bodies in sorted dependency-id
// order.
func mergeDependencies(bodies map[string]string) string {
	ids := make([]string, 0, len(bodies))
	for id := range bodies {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	for _, id := range ids {
		b.WriteString(bodies[id])
	}
	return b.String()
}

// mergeLines unions distinct non-blank lines across all bodies and
// sorts them.
func mergeLines(bodies map[string]string) string {
	seen := make(map[string]struct{})
	var lines []string
	for _, body := range bodies {
		for _, line := range strings.Split(body, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if _, ok := seen[line]; ok {
				continue
			}
			seen[line] = struct{}{}
			lines = append(lines, line)
		}
	}
	sort.Strings(lines)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
