// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ease-build/ease/lib/coordinate"
)

// DefaultDescriptor is the project descriptor file name looked up in
// the working directory when --project is not given.
const DefaultDescriptor = "ease.yaml"

// Project describes the module under build. Loaded from the YAML
// project descriptor; read-only to every goal.
type Project struct {
	// GroupID, ArtifactID, and Version are the module's own
	// coordinates.
	GroupID    string `yaml:"groupId"`
	ArtifactID string `yaml:"artifactId"`
	Version    string `yaml:"version"`

	// Packaging is the module's packaging type. "pom" modules have no
	// primary artifact file; everything else is expected to name one.
	// Defaults to "jar".
	Packaging string `yaml:"packaging"`

	// BuildDirectory is where the module's build outputs live:
	// manifests, attachment state, and build-local artifact copies.
	// Relative paths resolve against the descriptor's directory.
	// Defaults to "target".
	BuildDirectory string `yaml:"buildDirectory"`

	// File is the primary artifact file, when the packaging produces
	// one. Relative paths resolve against the descriptor's directory.
	File string `yaml:"file"`

	// Dependencies are the module's declared (direct) dependencies.
	Dependencies []Dependency `yaml:"dependencies"`
}

// Dependency is one declared dependency of the module.
type Dependency struct {
	GroupID    string `yaml:"groupId"`
	ArtifactID string `yaml:"artifactId"`
	Version    string `yaml:"version"`
	// Type defaults to "jar".
	Type       string `yaml:"type"`
	Classifier string `yaml:"classifier"`
}

// Load reads and validates a project descriptor. Relative paths in
// the descriptor (build directory, primary artifact file) are
// resolved against the descriptor's own directory, so a goal behaves
// identically regardless of the process working directory.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project descriptor %s: %w", path, err)
	}

	var p Project
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		return nil, fmt.Errorf("parsing project descriptor %s: %w", path, err)
	}

	if p.GroupID == "" || p.ArtifactID == "" || p.Version == "" {
		return nil, fmt.Errorf("project descriptor %s: groupId, artifactId, and version are required", path)
	}
	if p.Packaging == "" {
		p.Packaging = "jar"
	}
	if p.BuildDirectory == "" {
		p.BuildDirectory = "target"
	}
	for i := range p.Dependencies {
		d := &p.Dependencies[i]
		if d.GroupID == "" || d.ArtifactID == "" || d.Version == "" {
			return nil, fmt.Errorf("project descriptor %s: dependency %d: groupId, artifactId, and version are required", path, i)
		}
		if d.Type == "" {
			d.Type = "jar"
		}
	}

	baseDir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("resolving project descriptor directory: %w", err)
	}
	p.BuildDirectory = resolveAgainst(baseDir, p.BuildDirectory)
	if p.File != "" {
		p.File = resolveAgainst(baseDir, p.File)
	}
	return &p, nil
}

// resolveAgainst makes path absolute relative to base.
func resolveAgainst(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

// Coordinate returns the module's primary artifact coordinate. For
// pom packaging the type is "pom"; otherwise the type is the primary
// artifact file's extension, matching how the freeze goal records it.
func (p *Project) Coordinate() (coordinate.Coordinate, error) {
	artifactType := "pom"
	if p.Packaging != "pom" {
		if p.File == "" {
			return coordinate.Coordinate{}, fmt.Errorf("project %s:%s has packaging %q but no primary artifact file", p.GroupID, p.ArtifactID, p.Packaging)
		}
		artifactType = strings.TrimPrefix(filepath.Ext(p.File), ".")
		if artifactType == "" {
			return coordinate.Coordinate{}, fmt.Errorf("cannot infer artifact type from file name %s", p.File)
		}
	}
	return coordinate.New(p.GroupID, p.ArtifactID, artifactType, "", p.Version)
}

// PomCoordinate returns the module's pom coordinate. Every module has
// a pom artifact whether or not the packaging is pom.
func (p *Project) PomCoordinate() (coordinate.Coordinate, error) {
	return coordinate.New(p.GroupID, p.ArtifactID, "pom", "", p.Version)
}

// Owns reports whether the coordinate belongs to the module itself
// (same group and artifact ID). The signature goal uses this to
// separate the module's own attachments from dependency attachments.
func (p *Project) Owns(c coordinate.Coordinate) bool {
	return c.GroupID() == p.GroupID && c.ArtifactID() == p.ArtifactID
}

// Coordinate returns the dependency's coordinate.
func (d Dependency) Coordinate() (coordinate.Coordinate, error) {
	return coordinate.New(d.GroupID, d.ArtifactID, d.Type, d.Classifier, d.Version)
}

// ID returns the dependency's identity string, used as the sort key
// for the aggregate goal's per-dependency merge.
func (d Dependency) ID() string {
	return d.GroupID + ":" + d.ArtifactID + ":" + d.Type + ":" + d.Version
}
