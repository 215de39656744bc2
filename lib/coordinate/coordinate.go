// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package coordinate

import (
	"fmt"
	"strings"
)

// Coordinate identifies a single build artifact. The zero value is
// invalid; construct through New or Parse.
type Coordinate struct {
	groupID      string
	artifactID   string
	artifactType string
	classifier   string
	version      string
}

// New creates a validated Coordinate. classifier may be empty; every
// other field is required. Fields are trimmed of surrounding
// whitespace, the only normalization the manifest format performs.
func New(groupID, artifactID, artifactType, classifier, version string) (Coordinate, error) {
	c := Coordinate{
		groupID:      strings.TrimSpace(groupID),
		artifactID:   strings.TrimSpace(artifactID),
		artifactType: strings.TrimSpace(artifactType),
		classifier:   strings.TrimSpace(classifier),
		version:      strings.TrimSpace(version),
	}
	if err := c.validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

// Parse parses the canonical text form. A line must have exactly 4 or
// 5 colon-separated fields:
//
//	groupId:artifactId:type:version
//	groupId:artifactId:type:classifier:version
//
// Anything else is a parse error. There is no escaping, so a field
// containing a colon cannot be represented and will mis-split; the
// format owns that limitation.
func Parse(line string) (Coordinate, error) {
	fields := strings.Split(strings.TrimSpace(line), ":")
	if len(fields) < 4 || len(fields) > 5 {
		return Coordinate{}, fmt.Errorf("cannot parse coordinates %q: %d fields, want 4 or 5", line, len(fields))
	}
	classifier := ""
	version := fields[3]
	if len(fields) == 5 {
		classifier = fields[3]
		version = fields[4]
	}
	return New(fields[0], fields[1], fields[2], classifier, version)
}

// validate checks that all required fields are present. The manifest
// format performs no normalization beyond trimming, so validation is
// deliberately shallow: empty required fields are the only way a
// 4-or-5-field line can still be meaningless.
func (c Coordinate) validate() error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"groupId", c.groupID},
		{"artifactId", c.artifactID},
		{"type", c.artifactType},
		{"version", c.version},
	} {
		if field.value == "" {
			return fmt.Errorf("coordinate %s is empty", field.name)
		}
	}
	return nil
}

// GroupID returns the group identifier.
func (c Coordinate) GroupID() string { return c.groupID }

// ArtifactID returns the artifact identifier.
func (c Coordinate) ArtifactID() string { return c.artifactID }

// Type returns the artifact type (file extension by convention:
// "jar", "pom", "txt", "jar.asc", ...).
func (c Coordinate) Type() string { return c.artifactType }

// Classifier returns the classifier, or the empty string when the
// coordinate has none.
func (c Coordinate) Classifier() string { return c.classifier }

// HasClassifier reports whether the coordinate carries a classifier.
func (c Coordinate) HasClassifier() bool { return c.classifier != "" }

// Version returns the artifact version.
func (c Coordinate) Version() string { return c.version }

// IsZero reports whether the Coordinate is the zero value.
func (c Coordinate) IsZero() bool { return c == Coordinate{} }

// ID returns the canonical text form, which is also the identity used
// for deduplication. Two coordinates are the same artifact exactly
// when their IDs are equal; nothing is excluded from the tuple.
func (c Coordinate) ID() string {
	var b strings.Builder
	b.Grow(len(c.groupID) + len(c.artifactID) + len(c.artifactType) + len(c.classifier) + len(c.version) + 4)
	b.WriteString(c.groupID)
	b.WriteByte(':')
	b.WriteString(c.artifactID)
	b.WriteByte(':')
	b.WriteString(c.artifactType)
	b.WriteByte(':')
	if c.classifier != "" {
		b.WriteString(c.classifier)
		b.WriteByte(':')
	}
	b.WriteString(c.version)
	return b.String()
}

// String returns the canonical text form.
func (c Coordinate) String() string { return c.ID() }

// WithType returns a copy of the coordinate with a different type.
// Used by the signature goal to derive "jar.asc" from "jar" and by
// the thaw goal to synthesize pom coordinates.
func (c Coordinate) WithType(artifactType string) Coordinate {
	c.artifactType = artifactType
	return c
}

// Pom returns the pom coordinate for the same group, artifact, and
// version, without a classifier. Every module is assumed to have a pom
// artifact, so goals synthesize this form when a pom line is absent.
func (c Coordinate) Pom() Coordinate {
	c.artifactType = "pom"
	c.classifier = ""
	return c
}

// FileName returns the conventional repository file name for the
// coordinate: artifactId-version[-classifier].type.
func (c Coordinate) FileName() string {
	var b strings.Builder
	b.WriteString(c.artifactID)
	b.WriteByte('-')
	b.WriteString(c.version)
	if c.classifier != "" {
		b.WriteByte('-')
		b.WriteString(c.classifier)
	}
	b.WriteByte('.')
	b.WriteString(c.artifactType)
	return b.String()
}

// MarshalText implements encoding.TextMarshaler. Returns an error for
// the zero value, since serializing an empty coordinate would produce
// an unparsable manifest line.
func (c Coordinate) MarshalText() ([]byte, error) {
	if c.IsZero() {
		return nil, fmt.Errorf("cannot marshal zero Coordinate")
	}
	return []byte(c.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Coordinate) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return fmt.Errorf("unmarshal Coordinate: %w", err)
	}
	*c = parsed
	return nil
}
