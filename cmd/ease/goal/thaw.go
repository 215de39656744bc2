// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package goal

import (
	"context"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/ease-build/ease/cmd/ease/cli"
	"github.com/ease-build/ease/lib/goals"
	"github.com/ease-build/ease/lib/repository"
)

type thawParams struct {
	projectParams
	IncludeGroups    []string `flag:"include-group" desc:"group IDs of declared dependencies to thaw (required)"`
	ExcludeArtifacts []string `flag:"exclude-artifact" desc:"artifact IDs to leave out of the selection"`
	ThawRepository   string   `flag:"thaw-repository" desc:"flat repository base directory to thaw from (default: the configured thaw repository, else the local repository)"`
}

func thawCommand() *cli.Command {
	var params thawParams
	return &cli.Command{
		Name:    "thaw",
		Summary: "Attach the artifacts of frozen dependencies",
		Description: `Pull dependency artifacts back into the current module.

For each declared dependency whose group ID is included (and whose
artifact ID is not excluded), the dependency's frozen artifact list is
fetched and every listed artifact is resolved and attached to this
module. A dependency without a frozen list fails the goal. The
dependency's pom is always attached, synthesized when the list does
not carry one.`,
		Examples: []cli.Example{
			{
				Description: "Thaw all org.neo4j dependencies",
				Command:     "ease thaw --include-group org.neo4j",
			},
			{
				Description: "Thaw from a release staging repository",
				Command:     "ease thaw --include-group org.neo4j --thaw-repository /srv/staging",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("thaw", &params)
		},
		Run: func(_ context.Context, _ []string, logger *slog.Logger) error {
			inv, cfg, err := params.invocation(logger)
			if err != nil {
				return err
			}

			options := goals.ThawOptions{
				IncludeGroups:    params.IncludeGroups,
				ExcludeArtifacts: params.ExcludeArtifacts,
			}

			base := params.ThawRepository
			if base == "" {
				base = cfg.Repositories.Thaw
			}
			if base != "" {
				options.Repository, err = repository.NewThaw(base)
				if err != nil {
					return err
				}
			}
			if err := goals.Thaw(inv, options); err != nil {
				return err
			}
			return params.emitAttachments(inv)
		},
	}
}
