// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package goals_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ease-build/ease/lib/goals"
	"github.com/ease-build/ease/lib/manifest"
	"github.com/ease-build/ease/lib/project"
	"github.com/ease-build/ease/lib/repository"
	"github.com/ease-build/ease/lib/testutil"
)

// seedThawable installs a dependency's jar, pom, and frozen artifact
// list under base.
func seedThawable(t *testing.T, base string) {
	t.Helper()
	testutil.SeedArtifact(t, base, "org.neo4j:neo4j-lucene-index:jar:1.9", "jar bytes")
	testutil.SeedArtifact(t, base, "org.neo4j:neo4j-lucene-index:pom:1.9", "pom bytes")
	testutil.SeedManifest(t, base, "org.neo4j:neo4j-lucene-index:jar:1.9",
		"org.neo4j:neo4j-lucene-index:jar:1.9\norg.neo4j:neo4j-lucene-index:pom:1.9\n")
}

func TestThawAttachesListedArtifactsWithoutDuplicatingPom(t *testing.T) {
	f := newFixture(t)
	f.invocation.Project.Dependencies = []project.Dependency{
		{GroupID: "org.neo4j", ArtifactID: "neo4j-lucene-index", Version: "1.9", Type: "jar"},
	}
	seedThawable(t, f.repoBase)

	err := goals.Thaw(f.invocation, goals.ThawOptions{IncludeGroups: []string{"org.neo4j"}})
	if err != nil {
		t.Fatalf("Thaw: %v", err)
	}

	// The pom appears in the list already; the implicit pom
	// attachment must not add a second record.
	assertStrings(t, f.attachedIDs(), []string{
		"org.neo4j:neo4j-lucene-index:jar:1.9",
		"org.neo4j:neo4j-lucene-index:pom:1.9",
	})
}

func TestThawSynthesizesPomWhenListOmitsIt(t *testing.T) {
	f := newFixture(t)
	f.invocation.Project.Dependencies = []project.Dependency{
		{GroupID: "org.neo4j", ArtifactID: "neo4j-lucene-index", Version: "1.9", Type: "jar"},
	}
	testutil.SeedArtifact(t, f.repoBase, "org.neo4j:neo4j-lucene-index:jar:1.9", "jar bytes")
	testutil.SeedArtifact(t, f.repoBase, "org.neo4j:neo4j-lucene-index:pom:1.9", "pom bytes")
	testutil.SeedManifest(t, f.repoBase, "org.neo4j:neo4j-lucene-index:jar:1.9",
		"org.neo4j:neo4j-lucene-index:jar:1.9\n")

	err := goals.Thaw(f.invocation, goals.ThawOptions{IncludeGroups: []string{"org.neo4j"}})
	if err != nil {
		t.Fatalf("Thaw: %v", err)
	}

	assertStrings(t, f.attachedIDs(), []string{
		"org.neo4j:neo4j-lucene-index:jar:1.9",
		"org.neo4j:neo4j-lucene-index:pom:1.9",
	})
}

func TestThawCopiesPomIntoBuildDirectory(t *testing.T) {
	f := newFixture(t)
	f.invocation.Project.Dependencies = []project.Dependency{
		{GroupID: "org.neo4j", ArtifactID: "neo4j-lucene-index", Version: "1.9", Type: "jar"},
	}
	seedThawable(t, f.repoBase)

	err := goals.Thaw(f.invocation, goals.ThawOptions{IncludeGroups: []string{"org.neo4j"}})
	if err != nil {
		t.Fatalf("Thaw: %v", err)
	}

	for _, record := range f.invocation.Attachments.List() {
		isPom := record.Coordinate.Type() == "pom"
		inBuild := filepath.Dir(record.File) == f.buildDir
		if isPom && !inBuild {
			t.Errorf("pom attachment points at %s, want a build directory copy", record.File)
		}
		if !isPom && inBuild {
			t.Errorf("non-pom attachment %s was copied to the build directory", record.Coordinate.ID())
		}
	}
}

func TestThawFiltersByGroupAndArtifact(t *testing.T) {
	f := newFixture(t)
	f.invocation.Project.Dependencies = []project.Dependency{
		{GroupID: "org.neo4j", ArtifactID: "neo4j-lucene-index", Version: "1.9", Type: "jar"},
		{GroupID: "org.neo4j", ArtifactID: "neo4j-graph-algo", Version: "1.9", Type: "jar"},
		{GroupID: "org.apache.lucene", ArtifactID: "lucene-core", Version: "3.5.0", Type: "jar"},
	}
	// Only the lucene-index dependency is seeded: the others must be
	// filtered out before any fetch.
	seedThawable(t, f.repoBase)

	err := goals.Thaw(f.invocation, goals.ThawOptions{
		IncludeGroups:    []string{"org.neo4j"},
		ExcludeArtifacts: []string{"neo4j-graph-algo"},
	})
	if err != nil {
		t.Fatalf("Thaw: %v", err)
	}

	assertStrings(t, f.attachedIDs(), []string{
		"org.neo4j:neo4j-lucene-index:jar:1.9",
		"org.neo4j:neo4j-lucene-index:pom:1.9",
	})
}

func TestThawRequiresIncludeGroups(t *testing.T) {
	f := newFixture(t)

	if err := goals.Thaw(f.invocation, goals.ThawOptions{}); err == nil {
		t.Fatal("Thaw succeeded without included groups")
	}
}

func TestThawMissingDependencyListIsFatal(t *testing.T) {
	f := newFixture(t)
	f.invocation.Project.Dependencies = []project.Dependency{
		{GroupID: "org.neo4j", ArtifactID: "neo4j-lucene-index", Version: "1.9", Type: "jar"},
	}

	err := goals.Thaw(f.invocation, goals.ThawOptions{IncludeGroups: []string{"org.neo4j"}})
	if !errors.Is(err, manifest.ErrMissing) {
		t.Fatalf("Thaw error = %v, want manifest.ErrMissing", err)
	}
}

func TestThawMissingArtifactFileIsFatal(t *testing.T) {
	f := newFixture(t)
	f.invocation.Project.Dependencies = []project.Dependency{
		{GroupID: "org.neo4j", ArtifactID: "neo4j-lucene-index", Version: "1.9", Type: "jar"},
	}
	// The list names a jar that was never installed.
	testutil.SeedManifest(t, f.repoBase, "org.neo4j:neo4j-lucene-index:jar:1.9",
		"org.neo4j:neo4j-lucene-index:jar:1.9\n")

	err := goals.Thaw(f.invocation, goals.ThawOptions{IncludeGroups: []string{"org.neo4j"}})
	if !errors.Is(err, goals.ErrMissingArtifactFile) {
		t.Fatalf("Thaw error = %v, want ErrMissingArtifactFile", err)
	}
}

func TestThawFromThawRepository(t *testing.T) {
	f := newFixture(t)
	f.invocation.Project.Dependencies = []project.Dependency{
		{GroupID: "org.neo4j", ArtifactID: "neo4j-lucene-index", Version: "1.9", Type: "jar"},
	}

	// Everything lives in the thaw repository; the local repository
	// stays empty.
	thawBase := t.TempDir()
	seedThawable(t, thawBase)
	thawRepo, err := repository.NewThaw(thawBase)
	if err != nil {
		t.Fatalf("NewThaw: %v", err)
	}

	err = goals.Thaw(f.invocation, goals.ThawOptions{
		IncludeGroups: []string{"org.neo4j"},
		Repository:    thawRepo,
	})
	if err != nil {
		t.Fatalf("Thaw: %v", err)
	}

	assertStrings(t, f.attachedIDs(), []string{
		"org.neo4j:neo4j-lucene-index:jar:1.9",
		"org.neo4j:neo4j-lucene-index:pom:1.9",
	})
}
