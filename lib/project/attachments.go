// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ease-build/ease/lib/codec"
	"github.com/ease-build/ease/lib/coordinate"
)

// StateFileName is the attachment state file within the build
// directory. The path is unique per module because the build
// directory is; no locking is needed across the reactor.
const StateFileName = "ease-attachments.cbor"

// Attachment is one artifact attached to the module as a build
// output: a coordinate plus the backing file it was resolved to.
type Attachment struct {
	Coordinate coordinate.Coordinate `cbor:"coordinate"`
	File       string                `cbor:"file,omitempty"`
}

// attachmentState is the on-disk shape of the state file.
type attachmentState struct {
	Attachments []Attachment `cbor:"attachments"`
}

// Attachments is the module's ordered attached-artifact registry.
// Goals clear and repopulate it explicitly; there is no ambient
// global state. Not safe for concurrent use, matching the
// single-threaded goal execution model.
type Attachments struct {
	path    string
	records []Attachment
}

// LoadAttachments loads the registry from the module's build
// directory. A missing state file yields an empty registry: the first
// goal of a fresh build starts from nothing.
func LoadAttachments(buildDirectory string) (*Attachments, error) {
	path := filepath.Join(buildDirectory, StateFileName)
	a := &Attachments{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return a, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading attachment state %s: %w", path, err)
	}

	var state attachmentState
	if err := codec.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parsing attachment state %s: %w", path, err)
	}
	a.records = state.Attachments
	return a, nil
}

// List returns the attachments in attachment order. The returned
// slice is a copy; mutating it does not affect the registry.
func (a *Attachments) List() []Attachment {
	out := make([]Attachment, len(a.records))
	copy(out, a.records)
	return out
}

// Len returns the number of attached artifacts.
func (a *Attachments) Len() int { return len(a.records) }

// Clear removes every attachment. Goals that rebuild the attachment
// list (attach, thaw, attachsignatures) clear first so re-running a
// goal is idempotent.
func (a *Attachments) Clear() {
	a.records = a.records[:0]
}

// Add appends an attachment. Order is preserved: the freeze goal
// writes coordinates in attachment order.
func (a *Attachments) Add(att Attachment) {
	a.records = append(a.records, att)
}

// Contains reports whether an attachment with the same coordinate
// identity is already registered.
func (a *Attachments) Contains(c coordinate.Coordinate) bool {
	id := c.ID()
	for _, record := range a.records {
		if record.Coordinate.ID() == id {
			return true
		}
	}
	return false
}

// Save atomically rewrites the state file. The build directory is
// created if the module has produced no other output yet.
func (a *Attachments) Save() error {
	data, err := codec.Marshal(attachmentState{Attachments: a.records})
	if err != nil {
		return fmt.Errorf("encoding attachment state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(a.path), 0o755); err != nil {
		return fmt.Errorf("creating build directory for attachment state: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(a.path), "."+StateFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary attachment state: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing attachment state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing attachment state: %w", err)
	}
	if err := os.Rename(tmpPath, a.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing attachment state %s: %w", a.path, err)
	}
	return nil
}
