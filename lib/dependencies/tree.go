// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package dependencies

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ease-build/ease/lib/coordinate"
	"github.com/ease-build/ease/lib/project"
)

// Node is one dependency-tree node as reported by the external tree
// builder. Only the coordinate and the inclusion state are consumed;
// everything else about the node stays with the builder.
type Node struct {
	Coordinate coordinate.Coordinate
	// Included reports whether the builder kept this node in the
	// resolved graph. Omitted nodes (duplicates, conflicts, cycles)
	// are carried in the tree but never selected.
	Included bool
}

// TreeBuilder resolves a project's full transitive dependency tree.
type TreeBuilder interface {
	Resolve(p *project.Project) ([]Node, error)
}

// FileTree reads the dependency tree from a text file produced by the
// external tree builder: one node per line, the coordinate followed
// by whitespace and the state ("included" or "omitted"). Blank lines
// and lines starting with "#" are skipped.
type FileTree struct {
	path string
}

// NewFileTree creates a FileTree reading from path.
func NewFileTree(path string) *FileTree {
	return &FileTree{path: path}
}

// Resolve implements TreeBuilder.
func (t *FileTree) Resolve(_ *project.Project) ([]Node, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return nil, fmt.Errorf("reading dependency tree %s: %w", t.path, err)
	}

	var nodes []Node
	for lineNumber, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("dependency tree %s line %d: want \"coordinate state\", got %q", t.path, lineNumber+1, line)
		}
		c, err := coordinate.Parse(fields[0])
		if err != nil {
			return nil, fmt.Errorf("dependency tree %s line %d: %w", t.path, lineNumber+1, err)
		}
		var included bool
		switch fields[1] {
		case "included":
			included = true
		case "omitted":
			included = false
		default:
			return nil, fmt.Errorf("dependency tree %s line %d: unknown state %q", t.path, lineNumber+1, fields[1])
		}
		nodes = append(nodes, Node{Coordinate: c, Included: included})
	}
	return nodes, nil
}

// Select returns the filtered dependency set for a project as sorted
// coordinates, deduplicated by identity.
//
// With excludeTransitive set, the set is the project's declared
// dependencies. Otherwise the tree builder resolves the full
// transitive tree and only included nodes are considered. In both
// modes the project's own artifact (the root node of any tree) is
// removed before filtering results are returned.
func Select(p *project.Project, tree TreeBuilder, excludeTransitive bool, filter *Filter) ([]coordinate.Coordinate, error) {
	var candidates []coordinate.Coordinate

	if excludeTransitive {
		for _, dependency := range p.Dependencies {
			c, err := dependency.Coordinate()
			if err != nil {
				return nil, fmt.Errorf("dependency %s:%s: %w", dependency.GroupID, dependency.ArtifactID, err)
			}
			candidates = append(candidates, c)
		}
	} else {
		if tree == nil {
			return nil, fmt.Errorf("transitive dependency selection requires a dependency tree")
		}
		nodes, err := tree.Resolve(p)
		if err != nil {
			return nil, fmt.Errorf("failed to traverse dependencies: %w", err)
		}
		for _, node := range nodes {
			if node.Included {
				candidates = append(candidates, node.Coordinate)
			}
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	var selected []coordinate.Coordinate
	for _, c := range candidates {
		// The root node is the project itself, not a dependency.
		if c.GroupID() == p.GroupID && c.ArtifactID() == p.ArtifactID && c.Version() == p.Version {
			continue
		}
		if filter != nil && !filter.Include(c) {
			continue
		}
		if _, ok := seen[c.ID()]; ok {
			continue
		}
		seen[c.ID()] = struct{}{}
		selected = append(selected, c)
	}

	sort.Slice(selected, func(i, j int) bool { return selected[i].ID() < selected[j].ID() })
	return selected, nil
}
