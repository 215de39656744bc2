// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package goals_test

import (
	"path/filepath"
	"testing"

	"github.com/ease-build/ease/lib/dependencies"
	"github.com/ease-build/ease/lib/goals"
	"github.com/ease-build/ease/lib/project"
	"github.com/ease-build/ease/lib/repository"
	"github.com/ease-build/ease/lib/testutil"
)

// fixture is a throwaway module plus a local repository to run goals
// against.
type fixture struct {
	invocation *goals.Invocation
	repoBase   string
	buildDir   string
}

// newFixture builds a jar-packaged module org.neo4j:neo4j-kernel:1.9
// with an empty attachment registry and an empty local repository.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	moduleDir := t.TempDir()
	buildDir := filepath.Join(moduleDir, "target")
	repoBase := t.TempDir()

	p := &project.Project{
		GroupID:        "org.neo4j",
		ArtifactID:     "neo4j-kernel",
		Version:        "1.9",
		Packaging:      "jar",
		BuildDirectory: buildDir,
		File:           filepath.Join(buildDir, "neo4j-kernel-1.9.jar"),
	}

	attachments, err := project.LoadAttachments(buildDir)
	if err != nil {
		t.Fatalf("LoadAttachments: %v", err)
	}
	local, err := repository.NewLocal(repoBase)
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	return &fixture{
		invocation: &goals.Invocation{
			Project:     p,
			Attachments: attachments,
			Local:       local,
		},
		repoBase: repoBase,
		buildDir: buildDir,
	}
}

// attach records an attachment directly in the fixture registry, as
// the orchestrator would between goals.
func (f *fixture) attach(t *testing.T, line, file string) {
	t.Helper()
	f.invocation.Attachments.Add(project.Attachment{
		Coordinate: testutil.MustParse(t, line),
		File:       file,
	})
}

// manifestPath returns the module's own manifest path in the build
// directory.
func (f *fixture) manifestPath() string {
	return filepath.Join(f.buildDir, "neo4j-kernel-1.9-artifacts.txt")
}

// attachedIDs returns the registry's coordinate identities in order.
func (f *fixture) attachedIDs() []string {
	records := f.invocation.Attachments.List()
	ids := make([]string, len(records))
	for i, record := range records {
		ids[i] = record.Coordinate.ID()
	}
	return ids
}

func assertStrings(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d entries %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// memoryTree is an in-memory dependency tree for aggregate tests.
type memoryTree struct {
	nodes []dependencies.Node
}

func (m *memoryTree) Resolve(_ *project.Project) ([]dependencies.Node, error) {
	return m.nodes, nil
}
