package service

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(MaxImageSize))
	return req.MultipartForm.File["image"][0]
}

func TestUploadService_SaveImage(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, "http://localhost:5000/")

	url, err := svc.SaveImage(fileHeader(t, "pizza.PNG", []byte("png-bytes")))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:5000/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	saved, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), saved)
}

func TestUploadService_SaveImage_BadExtension(t *testing.T) {
	svc := NewUploadService(t.TempDir(), "http://localhost:5000")

	_, err := svc.SaveImage(fileHeader(t, "menu.pdf", []byte("%PDF")))

	assert.ErrorIs(t, err, ErrInvalidFileFormat)
}

func TestUploadService_SaveImage_TooLarge(t *testing.T) {
	svc := NewUploadService(t.TempDir(), "http://localhost:5000")
	fh := fileHeader(t, "big.jpg", []byte("x"))
	fh.Size = MaxImageSize + 1

	_, err := svc.SaveImage(fh)

	assert.ErrorIs(t, err, ErrFileSizeExceeded)
}
