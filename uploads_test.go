package main

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploads(t *testing.T) (*Uploads, string) {
	t.Helper()
	dir := t.TempDir()
	uploads, err := NewUploads(dir, "uploads")
	require.NoError(t, err)
	return uploads, dir
}

func TestPutSanitizesHostileFilenames(t *testing.T) {
	uploads, dir := newTestUploads(t)

	ref, err := uploads.Put("../../evil name!.png", []byte("png-bytes"))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^/uploads/\d+-evilname\.png$`), ref)

	// The file landed inside the uploads dir, nowhere else.
	name := filepath.Base(ref)
	b, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), b)
}

func TestPutKeepsSafeCharacters(t *testing.T) {
	uploads, _ := newTestUploads(t)

	ref, err := uploads.Put("spring_fair-2024.jpg", []byte("x"))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^/uploads/\d+-spring_fair-2024\.jpg$`), ref)
}

func TestPutWithoutExtension(t *testing.T) {
	uploads, _ := newTestUploads(t)

	ref, err := uploads.Put("README", []byte("x"))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^/uploads/\d+-README$`), ref)
}
