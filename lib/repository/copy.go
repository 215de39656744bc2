// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

package repository

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyIfModified copies src to dst unless dst already has identical
// content. Returns whether a copy was performed. Parent directories
// of dst are created as needed.
//
// Identity is decided by content (size, then a streamed SHA256
// compare), not timestamps: build orchestrators routinely normalize
// mtimes, which would make a timestamp check either always copy or,
// worse, skip a real change.
func CopyIfModified(src, dst string) (bool, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, fmt.Errorf("stat source %s: %w", src, err)
	}

	if dstInfo, err := os.Stat(dst); err == nil && dstInfo.Size() == srcInfo.Size() {
		same, err := sameContent(src, dst)
		if err != nil {
			return false, err
		}
		if same {
			return false, nil
		}
	}

	if err := copyFile(src, dst); err != nil {
		return false, err
	}
	return true, nil
}

// sameContent reports whether two files have identical content by
// comparing streamed SHA256 digests. Constant memory regardless of
// file size.
func sameContent(a, b string) (bool, error) {
	hashA, err := hashFile(a)
	if err != nil {
		return false, err
	}
	hashB, err := hashFile(b)
	if err != nil {
		return false, err
	}
	return hashA == hashB, nil
}

// hashFile streams the file at path through SHA256.
func hashFile(path string) ([32]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return [32]byte{}, fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return [32]byte{}, fmt.Errorf("hashing %s: %w", path, err)
	}

	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

// copyFile copies src to dst through a temporary file in dst's
// directory, renamed into place so concurrent readers never observe a
// partial copy.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dst, err)
	}

	source, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer source.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary file for %s: %w", dst, err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, source); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temporary copy of %s: %w", src, err)
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temporary copy to %s: %w", dst, err)
	}
	return nil
}
