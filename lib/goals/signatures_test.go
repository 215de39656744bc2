// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package goals_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ease-build/ease/lib/goals"
	"github.com/ease-build/ease/lib/testutil"
)

func TestAttachSignaturesAddsSignatureForEachDependencyArtifact(t *testing.T) {
	f := newFixture(t)
	jar := filepath.Join(f.buildDir, "neo4j-lucene-index-1.9.jar")
	testutil.WriteFile(t, jar, "jar bytes")
	testutil.WriteFile(t, jar+".asc", "signature")
	f.attach(t, "org.neo4j:neo4j-lucene-index:jar:1.9", jar)

	if err := goals.AttachSignatures(f.invocation); err != nil {
		t.Fatalf("AttachSignatures: %v", err)
	}

	assertStrings(t, f.attachedIDs(), []string{
		"org.neo4j:neo4j-lucene-index:jar:1.9",
		"org.neo4j:neo4j-lucene-index:jar.asc:1.9",
	})
	records := f.invocation.Attachments.List()
	if records[1].File != jar+".asc" {
		t.Errorf("signature attachment points at %s, want %s", records[1].File, jar+".asc")
	}
}

func TestAttachSignaturesMissingSignatureIsFatal(t *testing.T) {
	f := newFixture(t)
	jar := filepath.Join(f.buildDir, "neo4j-lucene-index-1.9.jar")
	testutil.WriteFile(t, jar, "jar bytes")
	f.attach(t, "org.neo4j:neo4j-lucene-index:jar:1.9", jar)

	err := goals.AttachSignatures(f.invocation)
	if !errors.Is(err, goals.ErrMissingSignature) {
		t.Fatalf("AttachSignatures error = %v, want ErrMissingSignature", err)
	}
}

func TestAttachSignaturesKeepsOnlyOwnPomArtifacts(t *testing.T) {
	f := newFixture(t)
	pom := filepath.Join(f.buildDir, "neo4j-kernel-1.9.pom")
	testutil.WriteFile(t, pom, "pom bytes")
	testutil.WriteFile(t, pom+".asc", "signature")
	f.attach(t, "org.neo4j:neo4j-kernel:pom:1.9", pom)
	f.attach(t, "org.neo4j:neo4j-kernel:pom.asc:1.9", pom+".asc")
	f.attach(t, "org.neo4j:neo4j-kernel:jar:1.9", filepath.Join(f.buildDir, "neo4j-kernel-1.9.jar"))

	if err := goals.AttachSignatures(f.invocation); err != nil {
		t.Fatalf("AttachSignatures: %v", err)
	}

	assertStrings(t, f.attachedIDs(), []string{
		"org.neo4j:neo4j-kernel:pom:1.9",
		"org.neo4j:neo4j-kernel:pom.asc:1.9",
	})
}

func TestAttachSignaturesSkipsSignatureSiblingForSignatureTypes(t *testing.T) {
	f := newFixture(t)
	asc := filepath.Join(f.buildDir, "neo4j-lucene-index-1.9.jar.asc")
	testutil.WriteFile(t, asc, "signature")
	f.attach(t, "org.neo4j:neo4j-lucene-index:jar.asc:1.9", asc)

	// A signature artifact has no signature of its own; no .asc.asc
	// lookup happens.
	if err := goals.AttachSignatures(f.invocation); err != nil {
		t.Fatalf("AttachSignatures: %v", err)
	}

	assertStrings(t, f.attachedIDs(), []string{
		"org.neo4j:neo4j-lucene-index:jar.asc:1.9",
	})
}

func TestAttachSignaturesDeduplicatesByCoordinate(t *testing.T) {
	f := newFixture(t)
	jar := filepath.Join(f.buildDir, "neo4j-lucene-index-1.9.jar")
	testutil.WriteFile(t, jar, "jar bytes")
	testutil.WriteFile(t, jar+".asc", "signature")
	f.attach(t, "org.neo4j:neo4j-lucene-index:jar:1.9", jar)
	f.attach(t, "org.neo4j:neo4j-lucene-index:jar:1.9", jar)

	if err := goals.AttachSignatures(f.invocation); err != nil {
		t.Fatalf("AttachSignatures: %v", err)
	}

	assertStrings(t, f.attachedIDs(), []string{
		"org.neo4j:neo4j-lucene-index:jar:1.9",
		"org.neo4j:neo4j-lucene-index:jar.asc:1.9",
	})
}
