// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package goal

import (
	"context"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/ease-build/ease/cmd/ease/cli"
	"github.com/ease-build/ease/lib/dependencies"
	"github.com/ease-build/ease/lib/goals"
	"github.com/ease-build/ease/lib/manifest"
)

type aggregateParams struct {
	projectParams
	Includes          []string `flag:"include" desc:"coordinate patterns to include (groupId:artifactId:type:version, * wildcards)"`
	Excludes          []string `flag:"exclude" desc:"coordinate patterns to exclude"`
	ExcludeTransitive bool     `flag:"exclude-transitive" desc:"aggregate only declared dependencies"`
	Tree              string   `flag:"tree" desc:"path to the dependency tree file (required unless --exclude-transitive)"`
	Merge             string   `flag:"merge" desc:"merge policy: dependencies or lines"`
}

func aggregateCommand() *cli.Command {
	var params aggregateParams
	return &cli.Command{
		Name:    "aggregate",
		Summary: "Combine dependency artifact lists into one manifest",
		Description: `Collect the artifact lists of the module's dependencies.

Each selected dependency must have frozen its own artifact list into
the local repository beforehand; a dependency without one fails the
goal. The combined manifest is attached to the module with classifier
"artifacts". Defaults for the filters and the merge policy come from
the aggregate section of the tool configuration.`,
		Examples: []cli.Example{
			{
				Description: "Aggregate the declared dependencies of the module",
				Command:     "ease aggregate --exclude-transitive",
			},
			{
				Description: "Aggregate the full tree, restricted to one group",
				Command:     "ease aggregate --tree target/dependency-tree.txt --include org.neo4j",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("aggregate", &params)
		},
		Run: func(_ context.Context, _ []string, logger *slog.Logger) error {
			inv, cfg, err := params.invocation(logger)
			if err != nil {
				return err
			}

			options := goals.AggregateOptions{
				Includes:          params.Includes,
				Excludes:          params.Excludes,
				ExcludeTransitive: params.ExcludeTransitive,
			}
			if len(options.Includes) == 0 {
				options.Includes = cfg.Aggregate.Includes
			}
			if len(options.Excludes) == 0 {
				options.Excludes = cfg.Aggregate.Excludes
			}

			merge := params.Merge
			if merge == "" {
				merge = cfg.Aggregate.Merge
			}
			options.Policy, err = manifest.ParsePolicy(merge)
			if err != nil {
				return err
			}

			if params.Tree != "" {
				options.Tree = dependencies.NewFileTree(params.Tree)
			}
			if err := goals.Aggregate(inv, options); err != nil {
				return err
			}
			return params.emitAttachments(inv)
		},
	}
}
