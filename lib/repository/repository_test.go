// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package repository_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ease-build/ease/lib/coordinate"
	"github.com/ease-build/ease/lib/repository"
)

func mustParse(t *testing.T, line string) coordinate.Coordinate {
	t.Helper()
	c, err := coordinate.Parse(line)
	if err != nil {
		t.Fatalf("Parse(%q): %v", line, err)
	}
	return c
}

func TestPathOf(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "plain",
			line: "org.neo4j:neo4j-kernel:jar:1.9",
			want: "org/neo4j/neo4j-kernel/1.9/neo4j-kernel-1.9.jar",
		},
		{
			name: "classifier",
			line: "org.neo4j:neo4j-kernel:jar:sources:1.9",
			want: "org/neo4j/neo4j-kernel/1.9/neo4j-kernel-1.9-sources.jar",
		},
		{
			name: "single-segment-group",
			line: "junit:junit:jar:4.11",
			want: "junit/junit/4.11/junit-4.11.jar",
		},
		{
			name: "manifest-artifact",
			line: "org.neo4j:neo4j-kernel:txt:artifacts:1.9",
			want: "org/neo4j/neo4j-kernel/1.9/neo4j-kernel-1.9-artifacts.txt",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repository.PathOf(mustParse(t, tt.line))
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("PathOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindJoinsBase(t *testing.T) {
	base := t.TempDir()
	repo, err := repository.NewLocal(base)
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	got := repo.Find(mustParse(t, "junit:junit:jar:4.11"))
	want := filepath.Join(base, "junit", "junit", "4.11", "junit-4.11.jar")
	if got != want {
		t.Errorf("Find() = %q, want %q", got, want)
	}
}

func TestNewLocalMissingDirectoryAllowed(t *testing.T) {
	// The local repository may not exist yet on a fresh machine.
	repo, err := repository.NewLocal(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("NewLocal on missing directory: %v", err)
	}
	if repo.Base() == "" {
		t.Error("Base() is empty")
	}
}

func TestNewAlternateRejectsLocalBase(t *testing.T) {
	base := t.TempDir()
	local, err := repository.NewLocal(base)
	if err != nil {
		t.Fatal(err)
	}
	_, err = repository.NewAlternate(base, local)
	if err == nil {
		t.Fatal("alternate repository at the local repository base was accepted")
	}
	if !strings.Contains(err.Error(), "local repository") {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestNewAlternateRejectsMissingDirectory(t *testing.T) {
	local, err := repository.NewLocal(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := repository.NewAlternate(filepath.Join(t.TempDir(), "missing"), local); err == nil {
		t.Fatal("missing alternate repository directory was accepted")
	}
}

func TestNewAlternateAcceptsDistinctDirectory(t *testing.T) {
	local, err := repository.NewLocal(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	alternateBase := t.TempDir()
	alternate, err := repository.NewAlternate(alternateBase, local)
	if err != nil {
		t.Fatalf("NewAlternate: %v", err)
	}
	if alternate.Same(local) {
		t.Error("distinct repositories compare as same")
	}
}

func TestNewThaw(t *testing.T) {
	base := t.TempDir()
	repo, err := repository.NewThaw(base)
	if err != nil {
		t.Fatalf("NewThaw: %v", err)
	}
	got := repo.Find(mustParse(t, "org.neo4j:neo4j-kernel:jar:1.9"))
	want := filepath.Join(base, "org", "neo4j", "neo4j-kernel", "1.9", "neo4j-kernel-1.9.jar")
	if got != want {
		t.Errorf("Find() = %q, want %q", got, want)
	}

	if _, err := repository.NewThaw(filepath.Join(base, "missing")); err == nil {
		t.Error("missing thaw repository directory was accepted")
	}
}

func TestCopyIfModified(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src", "artifact.jar")
	dst := filepath.Join(dir, "dst", "artifact.jar")
	if err := os.MkdirAll(filepath.Dir(src), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(src, []byte("contents-v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	copied, err := repository.CopyIfModified(src, dst)
	if err != nil {
		t.Fatalf("initial copy: %v", err)
	}
	if !copied {
		t.Error("initial copy reported skipped")
	}

	// Unchanged source: second copy is skipped.
	copied, err = repository.CopyIfModified(src, dst)
	if err != nil {
		t.Fatalf("repeat copy: %v", err)
	}
	if copied {
		t.Error("identical destination was copied again")
	}

	// Same size, different content: must copy.
	if err := os.WriteFile(src, []byte("contents-v2"), 0o644); err != nil {
		t.Fatal(err)
	}
	copied, err = repository.CopyIfModified(src, dst)
	if err != nil {
		t.Fatalf("modified copy: %v", err)
	}
	if !copied {
		t.Error("modified source was not copied")
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "contents-v2" {
		t.Errorf("destination content = %q", data)
	}
}

func TestCopyIfModifiedMissingSource(t *testing.T) {
	dir := t.TempDir()
	if _, err := repository.CopyIfModified(filepath.Join(dir, "absent"), filepath.Join(dir, "dst")); err == nil {
		t.Fatal("missing source did not error")
	}
}
