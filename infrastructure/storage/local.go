// Package storage implements the archive sink against the local
// filesystem. This is the client-side "save the blob" step: the written
// file is the download the user ends up with.
package storage

import (
	"os"
	"path/filepath"

	pkgerrors "chainfly-client/pkg/errors"
)

// LocalSink writes finished archives into a directory
type LocalSink struct {
	dir string
}

// NewLocalSink creates a sink rooted at dir. An empty dir means the
// current working directory.
func NewLocalSink(dir string) *LocalSink {
	if dir == "" {
		dir = "."
	}
	return &LocalSink{dir: dir}
}

// SaveArchive writes the archive under filename and returns the full path.
// The file handle is released before returning.
func (s *LocalSink) SaveArchive(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", pkgerrors.NewInternalError("failed to create download directory").WithCause(err)
	}

	path := filepath.Join(s.dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", pkgerrors.NewInternalError("failed to write archive").WithCause(err)
	}
	return path, nil
}
