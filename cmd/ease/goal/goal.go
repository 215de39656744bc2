// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package goal

import (
	"fmt"
	"log/slog"

	"github.com/ease-build/ease/cmd/ease/cli"
	"github.com/ease-build/ease/lib/config"
	"github.com/ease-build/ease/lib/goals"
	"github.com/ease-build/ease/lib/project"
	"github.com/ease-build/ease/lib/repository"
)

// Commands returns the goal subcommands for the root command tree.
func Commands() []*cli.Command {
	return []*cli.Command{
		freezeCommand(),
		aggregateCommand(),
		attachCommand(),
		thawCommand(),
		attachSignaturesCommand(),
	}
}

// projectParams carries the flags shared by every goal: the project
// descriptor, the tool configuration, and --json output of the
// resulting attachment registry.
type projectParams struct {
	cli.JSONOutput
	Project string `flag:"project" desc:"path to the project descriptor" default:"ease.yaml"`
	Config  string `flag:"config" desc:"path to the tool config file (overrides EASE_CONFIG)"`
}

// invocation loads the project, its attachment state, and the tool
// configuration, and assembles the goal invocation.
func (p *projectParams) invocation(logger *slog.Logger) (*goals.Invocation, *config.Config, error) {
	cfg, err := loadConfig(p.Config)
	if err != nil {
		return nil, nil, err
	}

	proj, err := project.Load(p.Project)
	if err != nil {
		return nil, nil, err
	}
	attachments, err := project.LoadAttachments(proj.BuildDirectory)
	if err != nil {
		return nil, nil, err
	}
	local, err := repository.NewLocal(cfg.Repositories.Local)
	if err != nil {
		return nil, nil, fmt.Errorf("local repository: %w", err)
	}

	return &goals.Invocation{
		Project:     proj,
		Attachments: attachments,
		Local:       local,
		Logger:      logger,
	}, cfg, nil
}

// loadConfig resolves the tool configuration from the --config flag
// or the environment.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// attachmentRecord is the JSON shape of one attached artifact.
type attachmentRecord struct {
	Artifact string `json:"artifact"`
	File     string `json:"file,omitempty"`
}

// attachmentRecords converts the registry into its JSON shape,
// preserving attachment order.
func attachmentRecords(inv *goals.Invocation) []attachmentRecord {
	records := inv.Attachments.List()
	out := make([]attachmentRecord, len(records))
	for i, record := range records {
		out[i] = attachmentRecord{
			Artifact: record.Coordinate.ID(),
			File:     record.File,
		}
	}
	return out
}

// emitAttachments writes the goal's resulting attachment registry to
// stdout when --json is set. Every goal ends with this so scripted
// callers can consume what the goal attached without parsing logs.
func (p *projectParams) emitAttachments(inv *goals.Invocation) error {
	_, err := p.EmitJSON(attachmentRecords(inv))
	return err
}
