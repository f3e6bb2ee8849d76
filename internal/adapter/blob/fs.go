package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FSStore keeps blobs on the local filesystem under a root directory.
type FSStore struct {
	root string
}

// NewFSStore creates the root directory if needed and returns the store.
func NewFSStore(root string) (*FSStore, error) {
	if err := os.MkdirAll(filepath.Join(root, "images"), 0o755); err != nil {
		return nil, fmt.Errorf("create blob directory: %w", err)
	}
	return &FSStore{root: root}, nil
}

// Save writes the bytes to <root>/images/<id>.<ext>.
func (s *FSStore) Save(_ context.Context, id uuid.UUID, data []byte, mime string) (string, error) {
	path := ObjectPath(id, mime)

	if err := os.WriteFile(filepath.Join(s.root, filepath.FromSlash(path)), data, 0o644); err != nil {
		return "", fmt.Errorf("write blob %s: %w", path, err)
	}

	return path, nil
}

// Open returns a reader over the stored file.
func (s *FSStore) Open(_ context.Context, path string) (io.ReadCloser, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("open blob %s: %w", path, err)
	}

	return f, nil
}

// Delete removes the file. A missing file is a success, not an error.
func (s *FSStore) Delete(_ context.Context, path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob %s: %w", path, err)
	}

	return nil
}

// resolve joins the path under root and rejects traversal outside it.
func (s *FSStore) resolve(path string) (string, error) {
	full := filepath.Join(s.root, filepath.FromSlash(path))

	rootAbs, err := filepath.Abs(s.root)
	if err != nil {
		return "", fmt.Errorf("resolve blob root: %w", err)
	}
	fullAbs, err := filepath.Abs(full)
	if err != nil {
		return "", fmt.Errorf("resolve blob path %s: %w", path, err)
	}
	if !strings.HasPrefix(fullAbs, rootAbs+string(filepath.Separator)) {
		return "", fmt.Errorf("blob path %s escapes the store root", path)
	}

	return full, nil
}
