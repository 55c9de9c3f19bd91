// SPDX-License-Identifier: Apache-2.0

// Package store provides the durable persistence layer behind the
// credential and vault services: JSON files rewritten in full on every
// mutation, plus in-memory doubles sharing the same contracts for tests.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	filePermissions os.FileMode = 0o600
	dirPermissions  os.FileMode = 0o700
)

// readJSONSlice loads the file at path into out (a pointer to a slice).
//
// Three shapes count as "empty": a missing file, a whitespace-only file,
// and the literal "{}" that earlier versions of the on-disk format wrote as
// the empty sentinel. All of them leave out at zero length. The canonical
// empty representation written back is always the JSON array "[]".
func readJSONSlice(path string, out any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("{}")) {
		return nil
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorruptStore, path, err)
	}
	return nil
}

// writeFileAtomic writes data to path via a temp file in the same
// directory followed by fsync and rename, so a crash mid-write leaves
// either the old file or the new one, never a truncated mix.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err = os.Chmod(tmpPath, filePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// marshalJSONSlice renders v, normalizing a nil slice to "[]".
func marshalJSONSlice(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	if bytes.Equal(data, []byte("null")) {
		data = []byte("[]")
	}
	return data, nil
}
