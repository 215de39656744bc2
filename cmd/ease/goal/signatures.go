// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package goal

import (
	"context"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/ease-build/ease/cmd/ease/cli"
	"github.com/ease-build/ease/lib/goals"
)

type signaturesParams struct {
	projectParams
}

func attachSignaturesCommand() *cli.Command {
	var params signaturesParams
	return &cli.Command{
		Name:    "attachsignatures",
		Summary: "Attach detached signatures for every attached artifact",
		Description: `Propagate detached .asc signatures onto the attached artifacts.

The module's own attachments keep only their pom and pom signature.
Every dependency artifact is re-attached together with its sibling
.asc file, attached with the artifact's type plus ".asc". An artifact
without a signature file fails the goal: it means the release being
assembled was never fully signed.`,
		Examples: []cli.Example{
			{
				Description: "Attach signatures after attaching a release list",
				Command:     "ease attachsignatures",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("attachsignatures", &params)
		},
		Run: func(_ context.Context, _ []string, logger *slog.Logger) error {
			inv, _, err := params.invocation(logger)
			if err != nil {
				return err
			}
			if err := goals.AttachSignatures(inv); err != nil {
				return err
			}
			return params.emitAttachments(inv)
		},
	}
}
