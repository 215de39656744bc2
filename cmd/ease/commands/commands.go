// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete ease CLI command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ease-build/ease/cmd/ease/cli"
	"github.com/ease-build/ease/cmd/ease/goal"
	"github.com/ease-build/ease/lib/version"
)

// Root builds and returns the complete ease CLI command tree.
func Root() *cli.Command {
	root := &cli.Command{
		Name: "ease",
		Description: `ease: artifact list management for multi-module releases.

Record each module's artifacts in a frozen artifact list, combine the
lists across modules, and re-attach listed artifacts (with their
signatures) when assembling a release.`,
		Subcommands: append(goal.Commands(), &cli.Command{
			Name:    "version",
			Summary: "Print version information",
			Run: func(_ context.Context, args []string, _ *slog.Logger) error {
				fmt.Printf("ease %s\n", version.Full())
				return nil
			},
		}),
		Examples: []cli.Example{
			{
				Description: "Record the current module's artifacts",
				Command:     "ease freeze",
			},
			{
				Description: "Combine the artifact lists of the declared dependencies",
				Command:     "ease aggregate --exclude-transitive",
			},
			{
				Description: "Attach everything a standalone module froze",
				Command:     "ease attach --artifact-list target/neo4j-1.9-artifacts.txt",
			},
			{
				Description: "Thaw the org.neo4j dependencies into this module",
				Command:     "ease thaw --include-group org.neo4j",
			},
			{
				Description: "Attach the detached signatures for a signed release",
				Command:     "ease attachsignatures",
			},
		},
	}

	return root
}
