// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package dependencies

import (
	"fmt"
	"strings"

	"github.com/ease-build/ease/lib/coordinate"
)

// Filter is the AND of an include-pattern filter and an
// exclude-pattern filter. Either side may be empty, in which case it
// passes everything.
type Filter struct {
	includes []pattern
	excludes []pattern
}

// NewFilter compiles include and exclude pattern lists. Returns an
// error for any malformed pattern.
func NewFilter(includes, excludes []string) (*Filter, error) {
	f := &Filter{}
	for _, raw := range includes {
		p, err := compilePattern(raw)
		if err != nil {
			return nil, fmt.Errorf("include pattern: %w", err)
		}
		f.includes = append(f.includes, p)
	}
	for _, raw := range excludes {
		p, err := compilePattern(raw)
		if err != nil {
			return nil, fmt.Errorf("exclude pattern: %w", err)
		}
		f.excludes = append(f.excludes, p)
	}
	return f, nil
}

// Include reports whether the coordinate passes the filter: matched
// by at least one include pattern (or no includes configured) and by
// no exclude pattern.
func (f *Filter) Include(c coordinate.Coordinate) bool {
	if len(f.includes) > 0 {
		matched := false
		for _, p := range f.includes {
			if p.matches(c) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	for _, p := range f.excludes {
		if p.matches(c) {
			return false
		}
	}
	return true
}

// pattern addresses a coordinate as groupId:artifactId:type:version.
// Trailing segments may be omitted and match anything; each present
// segment may contain "*" wildcards.
type pattern struct {
	segments []string
}

// compilePattern validates and splits a raw pattern string.
func compilePattern(raw string) (pattern, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return pattern{}, fmt.Errorf("empty pattern")
	}
	segments := strings.Split(raw, ":")
	if len(segments) > 4 {
		return pattern{}, fmt.Errorf("pattern %q has %d segments, at most 4 (groupId:artifactId:type:version)", raw, len(segments))
	}
	for _, segment := range segments {
		if segment == "" {
			return pattern{}, fmt.Errorf("pattern %q has an empty segment", raw)
		}
	}
	return pattern{segments: segments}, nil
}

// matches reports whether the coordinate matches the pattern. Omitted
// trailing segments match anything.
func (p pattern) matches(c coordinate.Coordinate) bool {
	values := []string{c.GroupID(), c.ArtifactID(), c.Type(), c.Version()}
	for i, segment := range p.segments {
		if !segmentMatches(segment, values[i]) {
			return false
		}
	}
	return true
}

// segmentMatches matches one pattern segment against one coordinate
// field. "*" matches any run of characters, including none.
func segmentMatches(segment, value string) bool {
	parts := strings.Split(segment, "*")
	if len(parts) == 1 {
		return segment == value
	}

	// First part anchors at the start, last part at the end, middle
	// parts match in order.
	if !strings.HasPrefix(value, parts[0]) {
		return false
	}
	value = value[len(parts[0]):]
	last := parts[len(parts)-1]
	if !strings.HasSuffix(value, last) {
		return false
	}
	value = value[:len(value)-len(last)]
	for _, part := range parts[1 : len(parts)-1] {
		index := strings.Index(value, part)
		if index < 0 {
			return false
		}
		value = value[index+len(part):]
	}
	return true
}
