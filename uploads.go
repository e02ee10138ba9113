package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// Uploads writes incoming files into a fixed directory under the public
// root and hands back the URL path a record can reference them by.
type Uploads struct {
	dir    string
	prefix string
}

func NewUploads(dir, prefix string) (*Uploads, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Uploads{dir: dir, prefix: prefix}, nil
}

// Put stores the file content under a timestamped, sanitized name and
// returns the public reference path. The original name contributes only
// its alphanumeric/-/_ characters and its extension, so path traversal
// and special characters never reach the filesystem.
func (u *Uploads) Put(originalName string, data []byte) (string, error) {
	ext := filepath.Ext(originalName)
	base := unsafeChars.ReplaceAllString(strings.TrimSuffix(originalName, ext), "")
	if ext != "" {
		ext = "." + unsafeChars.ReplaceAllString(ext[1:], "")
	}
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), base, ext)
	if err := os.WriteFile(filepath.Join(u.dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("write upload %q: %w", name, err)
	}
	return path.Join("/", u.prefix, name), nil
}
