// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package goal

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/ease-build/ease/cmd/ease/cli"
	"github.com/ease-build/ease/lib/goals"
	"github.com/ease-build/ease/lib/manifest"
	"github.com/ease-build/ease/lib/repository"
)

type attachParams struct {
	projectParams
	ArtifactList string `flag:"artifact-list" desc:"path to the artifact list to attach from (default: the module's own frozen list)"`
	Repository   string `flag:"repository" desc:"alternate repository base directory to resolve artifacts from"`
}

func attachCommand() *cli.Command {
	var params attachParams
	return &cli.Command{
		Name:    "attach",
		Summary: "Attach every artifact named by an artifact list",
		Description: `Re-attach the artifacts recorded in an artifact-list manifest.

Artifacts are resolved from the local repository and copied into the
build directory, so downstream install and deploy steps never operate
on the shared repository's files. With --repository, artifacts are
resolved from the given alternate repository and attached in place;
the alternate location must differ from the local repository.`,
		Examples: []cli.Example{
			{
				Description: "Attach from the module's own frozen list",
				Command:     "ease attach",
			},
			{
				Description: "Attach from a release staging repository",
				Command:     "ease attach --artifact-list target/neo4j-1.9-artifacts.txt --repository /srv/staging",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("attach", &params)
		},
		Run: func(_ context.Context, _ []string, logger *slog.Logger) error {
			inv, _, err := params.invocation(logger)
			if err != nil {
				return err
			}

			options := goals.AttachOptions{ArtifactList: params.ArtifactList}
			if options.ArtifactList == "" {
				p := inv.Project
				options.ArtifactList = filepath.Join(p.BuildDirectory, manifest.FileName(p.ArtifactID, p.Version))
			}
			if params.Repository != "" {
				options.Repository, err = repository.NewAlternate(params.Repository, inv.Local)
				if err != nil {
					return err
				}
			}
			if err := goals.Attach(inv, options); err != nil {
				return err
			}
			return params.emitAttachments(inv)
		},
	}
}
