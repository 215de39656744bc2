// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package dependencies_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ease-build/ease/lib/coordinate"
	"github.com/ease-build/ease/lib/dependencies"
	"github.com/ease-build/ease/lib/project"
)

// memoryTree is an in-memory TreeBuilder for tests.
type memoryTree struct {
	nodes []dependencies.Node
	err   error
}

func (m *memoryTree) Resolve(_ *project.Project) ([]dependencies.Node, error) {
	return m.nodes, m.err
}

func testProject() *project.Project {
	return &project.Project{
		GroupID:    "org.neo4j",
		ArtifactID: "neo4j-community",
		Version:    "1.9",
		Dependencies: []project.Dependency{
			{GroupID: "org.neo4j", ArtifactID: "neo4j-kernel", Version: "1.9", Type: "jar"},
			{GroupID: "junit", ArtifactID: "junit", Version: "4.11", Type: "jar"},
		},
	}
}

func node(t *testing.T, line string, included bool) dependencies.Node {
	t.Helper()
	return dependencies.Node{Coordinate: mustParse(t, line), Included: included}
}

func TestFileTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.txt")
	content := `# resolved by the build orchestrator
org.neo4j:neo4j-community:pom:1.9 included

org.neo4j:neo4j-kernel:jar:1.9 included
junit:junit:jar:4.11 omitted
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	nodes, err := dependencies.NewFileTree(path).Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(nodes))
	}
	if !nodes[1].Included {
		t.Error("included node parsed as omitted")
	}
	if nodes[2].Included {
		t.Error("omitted node parsed as included")
	}
}

func TestFileTreeErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad-state", content: "org.neo4j:neo4j-kernel:jar:1.9 kept\n"},
		{name: "bad-coordinate", content: "org.neo4j:neo4j-kernel included\n"},
		{name: "missing-state", content: "org.neo4j:neo4j-kernel:jar:1.9\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tree.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := dependencies.NewFileTree(path).Resolve(nil); err == nil {
				t.Fatal("malformed tree accepted")
			}
		})
	}

	if _, err := dependencies.NewFileTree(filepath.Join(t.TempDir(), "absent")).Resolve(nil); err == nil {
		t.Fatal("missing tree file accepted")
	}
}

func TestSelectDirect(t *testing.T) {
	selected, err := dependencies.Select(testProject(), nil, true, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	want := []string{"junit:junit:jar:4.11", "org.neo4j:neo4j-kernel:jar:1.9"}
	assertCoordinates(t, selected, want)
}

func TestSelectTransitive(t *testing.T) {
	tree := &memoryTree{nodes: []dependencies.Node{
		node(t, "org.neo4j:neo4j-community:pom:1.9", true), // root
		node(t, "org.neo4j:neo4j-kernel:jar:1.9", true),
		node(t, "org.apache.lucene:lucene-core:jar:3.6.2", true),
		node(t, "junit:junit:jar:4.11", false), // omitted by the builder
		node(t, "org.neo4j:neo4j-kernel:jar:1.9", true), // duplicate
	}}
	selected, err := dependencies.Select(testProject(), tree, false, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	want := []string{
		"org.apache.lucene:lucene-core:jar:3.6.2",
		"org.neo4j:neo4j-kernel:jar:1.9",
	}
	assertCoordinates(t, selected, want)
}

func TestSelectRemovesRootEvenWhenFilterMatches(t *testing.T) {
	tree := &memoryTree{nodes: []dependencies.Node{
		node(t, "org.neo4j:neo4j-community:pom:1.9", true),
		node(t, "org.neo4j:neo4j-kernel:jar:1.9", true),
	}}
	filter, err := dependencies.NewFilter([]string{"org.neo4j"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	selected, err := dependencies.Select(testProject(), tree, false, filter)
	if err != nil {
		t.Fatal(err)
	}
	assertCoordinates(t, selected, []string{"org.neo4j:neo4j-kernel:jar:1.9"})
}

func TestSelectAppliesFilter(t *testing.T) {
	filter, err := dependencies.NewFilter([]string{"org.neo4j"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	selected, err := dependencies.Select(testProject(), nil, true, filter)
	if err != nil {
		t.Fatal(err)
	}
	assertCoordinates(t, selected, []string{"org.neo4j:neo4j-kernel:jar:1.9"})
}

func TestSelectTransitiveRequiresTree(t *testing.T) {
	if _, err := dependencies.Select(testProject(), nil, false, nil); err == nil {
		t.Fatal("transitive selection without a tree accepted")
	}
}

func assertCoordinates(t *testing.T, got []coordinate.Coordinate, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d coordinates %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i].ID() != want[i] {
			t.Errorf("coordinate %d = %q, want %q", i, got[i].ID(), want[i])
		}
	}
}
