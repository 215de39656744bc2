// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package goals

import (
	"fmt"

	"github.com/ease-build/ease/lib/dependencies"
	"github.com/ease-build/ease/lib/manifest"
)

// AggregateOptions configures the aggregate goal.
type AggregateOptions struct {
	// Includes and Excludes are coordinate patterns
	// (groupId:artifactId:type:version with "*" wildcards) applied to
	// candidate dependencies. Both empty means everything passes.
	Includes []string
	Excludes []string

	// ExcludeTransitive restricts aggregation to the project's
	// declared dependencies instead of the full transitive tree.
	ExcludeTransitive bool

	// Tree resolves the transitive dependency tree. Required unless
	// ExcludeTransitive is set.
	Tree dependencies.TreeBuilder

	// Policy selects the merge rule. Zero value means the canonical
	// per-dependency concatenation.
	Policy manifest.MergePolicy
}

// Aggregate collects the artifact lists of the module's dependencies
// into one combined manifest and attaches it. Every selected
// dependency must have frozen its own artifact list beforehand; a
// dependency without a manifest in the local repository fails the
// whole goal. This is deliberate: an aggregated list with silent
// holes would let an incomplete release through.
func Aggregate(inv *Invocation, options AggregateOptions) error {
	filter, err := dependencies.NewFilter(options.Includes, options.Excludes)
	if err != nil {
		return err
	}

	selected, err := dependencies.Select(inv.Project, options.Tree, options.ExcludeTransitive, filter)
	if err != nil {
		return err
	}

	bodies := make(map[string]string, len(selected))
	for _, dependency := range selected {
		body, err := manifest.Fetch(dependency, inv.Local)
		if err != nil {
			return fmt.Errorf("could not aggregate %s: %w", dependency, err)
		}
		bodies[dependency.ID()] = body
	}

	inv.logger().Info("aggregated artifact lists", "dependencies", len(bodies))
	return writeAndAttachArtifactList(inv, manifest.Merge(options.Policy, bodies))
}
