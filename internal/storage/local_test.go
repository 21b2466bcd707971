package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return s
}

func TestLocalStorageSaveAndGet(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	err := s.Save(ctx, "resumes/S100_a1.pdf", strings.NewReader("resume-bytes"), "application/pdf")
	require.NoError(t, err)

	r, err := s.Get(ctx, "resumes/S100_a1.pdf")
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "resume-bytes", string(data))

	size, err := s.GetSize(ctx, "resumes/S100_a1.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(len("resume-bytes")), size)
}

func TestLocalStorageExistsAndDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	ok, err := s.Exists(ctx, "photos/missing.jpg")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save(ctx, "photos/S100_a1_photo.jpg", strings.NewReader("x"), "image/jpeg"))

	ok, err = s.Exists(ctx, "photos/S100_a1_photo.jpg")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.Delete(ctx, "photos/S100_a1_photo.jpg"))

	ok, err = s.Exists(ctx, "photos/S100_a1_photo.jpg")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStorageDeleteMissingIsNoError(t *testing.T) {
	s := newTestStorage(t)
	assert.NoError(t, s.Delete(context.Background(), "resumes/never_saved.pdf"))
}

func TestLocalStorageGetURL(t *testing.T) {
	ctx := context.Background()

	s := newTestStorage(t)
	url, err := s.GetURL(ctx, "resumes/S100_a1.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/files/resumes/S100_a1.pdf", url)

	withBase, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "https://cdn.example.com/uploads"})
	require.NoError(t, err)
	url, err = withBase.GetURL(ctx, "resumes/S100_a1.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/resumes/S100_a1.pdf", url)
}
