package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageUploadAndPublicURL(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)

	key, err := store.Upload(context.Background(), strings.NewReader("png-bytes"), "logos/acme.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "logos/acme.png", key)

	data, err := os.ReadFile(filepath.Join(store.basePath, "logos", "acme.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	assert.Equal(t, "http://localhost:8080/uploads/logos/acme.png", store.PublicURL(key))
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	_, err = store.Upload(context.Background(), strings.NewReader("x"), "../../etc/passwd", "text/plain")
	assert.Error(t, err)
}

func TestLocalStorageDelete(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	key, err := store.Upload(context.Background(), strings.NewReader("x"), "profiles/p.jpg", "image/jpeg")
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), key))
	_, statErr := os.Stat(filepath.Join(store.basePath, "profiles", "p.jpg"))
	assert.True(t, os.IsNotExist(statErr))

	// Deleting again is a no-op.
	assert.NoError(t, store.Delete(context.Background(), key))
}
