package services

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SaveUpload writes an uploaded file under the upload directory using a
// random storage key prefixed to the sanitized original filename, so two
// visitors uploading "photo.jpg" never overwrite each other. It returns the
// storage key the blob is addressed by.
func SaveUpload(basePath, filename string, body io.Reader) (string, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return "", err
	}
	key := uuid.NewString() + "_" + sanitizeFilename(filename)
	targetPath := filepath.Join(basePath, key)

	file, err := os.Create(targetPath)
	if err != nil {
		return "", err
	}
	size, err := io.Copy(file, body)
	_ = file.Close()
	if err != nil {
		_ = os.Remove(targetPath)
		return "", err
	}
	if size == 0 {
		_ = os.Remove(targetPath)
		return "", ErrBadRequest("Uploaded file is empty")
	}
	return key, nil
}

// OpenUpload resolves a storage key back to its file. Keys naming anything
// outside the upload directory are refused.
func OpenUpload(basePath, key string) (*os.File, error) {
	if key == "" || key != filepath.Base(key) || strings.Contains(key, "..") {
		return nil, ErrNotFound("Not found")
	}
	file, err := os.Open(filepath.Join(basePath, key))
	if err != nil {
		return nil, ErrNotFound("Not found")
	}
	return file, nil
}

func sanitizeFilename(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		return "upload"
	}
	return name
}
