package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, field, filename, contentType string, body []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	hdr := make(map[string][]string)
	hdr["Content-Disposition"] = []string{`form-data; name="` + field + `"; filename="` + filename + `"`}
	if contentType != "" {
		hdr["Content-Type"] = []string{contentType}
	}
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[field][0]
}

func TestStoreWritesSyntheticName(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewStorage(dir, 1<<20)
	require.NoError(t, err)

	fh := uploadHeader(t, Field, "photo de profil.png", "image/png", []byte("fake-png"))

	stored, err := storage.Store(fh)
	require.NoError(t, err)

	assert.Equal(t, "photo de profil.png", stored.OriginalName)
	assert.NotContains(t, stored.Name, "photo de profil")
	assert.Equal(t, ".png", filepath.Ext(stored.Name))

	content, err := os.ReadFile(filepath.Join(dir, stored.Name))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-png"), content)
}

func TestStoreNamesDoNotCollide(t *testing.T) {
	storage, err := NewStorage(t.TempDir(), 1<<20)
	require.NoError(t, err)

	fh := uploadHeader(t, Field, "a.jpg", "image/jpeg", []byte("x"))

	first, err := storage.Store(fh)
	require.NoError(t, err)
	second, err := storage.Store(fh)
	require.NoError(t, err)

	assert.NotEqual(t, first.Name, second.Name)
}

func TestStoreIgnoresPathInFilename(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewStorage(dir, 1<<20)
	require.NoError(t, err)

	fh := uploadHeader(t, Field, "../../etc/passwd", "", []byte("nope"))

	stored, err := storage.Store(fh)
	require.NoError(t, err)

	// Stored strictly inside the upload dir, under the synthetic name.
	_, err = os.Stat(filepath.Join(dir, stored.Name))
	assert.NoError(t, err)
	assert.NotContains(t, stored.Name, "..")
}

func TestStoreRejectsOversizedFile(t *testing.T) {
	storage, err := NewStorage(t.TempDir(), 4)
	require.NoError(t, err)

	fh := uploadHeader(t, Field, "big.png", "image/png", []byte("more than four bytes"))

	_, err = storage.Store(fh)
	assert.Error(t, err)
}
