package file

import (
	"context"
	"mime"
	"path"
	"strings"
)

const (
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeJSON = "application/json"
)

// File describes a stored object.
type File struct {
	Path        string `json:"path"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	URL         string `json:"url"`
}

// Entry is a directory listing item.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64
}

// Storage is implemented by LocalStorage and S3Storage.
type Storage interface {
	// Put writes body to path, replacing any existing object.
	Put(ctx context.Context, path string, body []byte, contentType string) (*File, error)
	Get(ctx context.Context, path string) ([]byte, error)
	Exists(ctx context.Context, path string) bool
	// List returns the direct children of dir.
	List(ctx context.Context, dir string) ([]Entry, error)
	// DeleteDir removes dir and everything below it.
	DeleteDir(ctx context.Context, dir string) error
	URL(path string) string
}

// ContentTypeFor guesses the content type from the file extension.
func ContentTypeFor(p string) string {
	switch strings.ToLower(path.Ext(p)) {
	case ".html", ".htm":
		return ContentTypeHTML
	case ".txt":
		return ContentTypeText
	case ".json":
		return ContentTypeJSON
	}
	if ct := mime.TypeByExtension(path.Ext(p)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// cleanKey normalises an object key and rejects traversal.
func cleanKey(p string) (string, error) {
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "", nil
	}
	for _, part := range strings.Split(p, "/") {
		if part == ".." {
			return "", ErrInvalidPath
		}
	}
	return path.Clean(p), nil
}

func joinURL(base, p string) string {
	return base + strings.TrimPrefix(p, "/")
}
