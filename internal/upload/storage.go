// Package upload stores profile photos in a flat directory served statically.
package upload

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Field is the one multipart field a photo may arrive on.
const Field = "photoProfil"

// StoredFile describes a stored photo. Name is the reference persisted on the
// user row; OriginalName is kept as metadata only and never touches the disk.
type StoredFile struct {
	Name         string
	OriginalName string
}

// Storage writes uploads under a single flat directory.
type Storage struct {
	dir     string
	maxSize int64
}

func NewStorage(dir string, maxSize int64) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Storage{dir: dir, maxSize: maxSize}, nil
}

// Store writes the uploaded file under a synthetic name: a random id plus an
// extension derived from the declared content type. The client-supplied
// filename never reaches the filesystem.
func (s *Storage) Store(fh *multipart.FileHeader) (*StoredFile, error) {
	if s.maxSize > 0 && fh.Size > s.maxSize {
		return nil, fmt.Errorf("file exceeds maximum size of %d bytes", s.maxSize)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + extensionFor(fh)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create stored file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return nil, fmt.Errorf("failed to write stored file: %w", err)
	}

	return &StoredFile{
		Name:         name,
		OriginalName: fh.Filename,
	}, nil
}

// Dir returns the storage directory, for static serving.
func (s *Storage) Dir() string {
	return s.dir
}

func extensionFor(fh *multipart.FileHeader) string {
	if exts, err := mime.ExtensionsByType(fh.Header.Get("Content-Type")); err == nil && len(exts) > 0 {
		// Prefer the conventional jpg over the first registered alias.
		for _, ext := range exts {
			if ext == ".jpg" || ext == ".png" {
				return ext
			}
		}
		return exts[0]
	}

	// No usable content type: fall back to the original extension, stripped
	// of any path part.
	ext := filepath.Ext(filepath.Base(fh.Filename))
	if strings.ContainsAny(ext, "/\\") {
		return ""
	}
	return strings.ToLower(ext)
}
