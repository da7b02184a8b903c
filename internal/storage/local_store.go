package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// ErrFileTypeNotAllowed is returned for uploads that are not one of
// the accepted image formats
var ErrFileTypeNotAllowed = errors.New("file type is not allowed")

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// MediaStore persists uploaded file bytes and hands back the
// filename/path pair the rest of the system stores verbatim. Nothing
// outside this package ever reads the bytes again; URLs are derived
// from the filename alone.
type MediaStore interface {
	Save(filename string, data []byte) (storedName, path string, err error)
}

// LocalStore implements MediaStore on the local filesystem
type LocalStore struct {
	dir string
}

// NewLocalStore creates a MediaStore rooted at dir
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

// Save validates the upload and writes it under the store directory.
// The extension allow-list guards the name; the magic-byte sniff
// guards the content.
func (s *LocalStore) Save(filename string, data []byte) (string, string, error) {
	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) {
		return "", "", ErrFileTypeNotAllowed
	}
	if !allowedExtensions[strings.ToLower(filepath.Ext(name))] {
		return "", "", ErrFileTypeNotAllowed
	}
	if !filetype.IsImage(data) {
		return "", "", ErrFileTypeNotAllowed
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", "", err
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", "", err
	}
	return name, path, nil
}
