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

type freezeParams struct {
	projectParams
	IgnoreEmpty bool `flag:"ignore-empty" desc:"skip attached artifacts without a backing file instead of failing"`
}

func freezeCommand() *cli.Command {
	var params freezeParams
	return &cli.Command{
		Name:    "freeze",
		Summary: "Record the module's artifacts in its artifact list",
		Description: `Write the module's artifact-list manifest.

The manifest records the primary artifact's coordinate followed by
each attached artifact's coordinate, in attachment order. A pom
coordinate for the module is synthesized and appended when none is
present. The manifest is attached to the module with classifier
"artifacts" so a later install or deploy publishes it alongside the
module's other artifacts.`,
		Examples: []cli.Example{
			{
				Description: "Freeze the module in the current directory",
				Command:     "ease freeze",
			},
			{
				Description: "Tolerate attachments without a backing file",
				Command:     "ease freeze --ignore-empty",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("freeze", &params)
		},
		Run: func(_ context.Context, _ []string, logger *slog.Logger) error {
			inv, _, err := params.invocation(logger)
			if err != nil {
				return err
			}
			if err := goals.Freeze(inv, goals.FreezeOptions{IgnoreEmpty: params.IgnoreEmpty}); err != nil {
				return err
			}
			return params.emitAttachments(inv)
		},
	}
}
