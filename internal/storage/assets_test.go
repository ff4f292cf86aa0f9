package storage_test

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func upload(name, contentType string, data []byte) domain.FileUpload {
	return domain.FileUpload{
		Filename:    name,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}
}

func TestSaveRejectsOversized(t *testing.T) {
	store := newTestStore(t)
	big := upload("big.jpg", "image/jpeg", []byte("x"))
	big.Size = storage.PhotoPolicy.MaxBytes + 1

	_, err := store.Save(storage.PhotoPolicy, big)
	assert.ErrorIs(t, err, storage.ErrTooLarge)
}

func TestSaveRejectsWrongType(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(storage.PhotoPolicy, upload("doc.pdf", "application/pdf", []byte("%PDF-")))
	assert.ErrorIs(t, err, storage.ErrBadType)

	_, err = store.Save(storage.CVPolicy, upload("pic.png", "image/png", []byte("fake")))
	assert.ErrorIs(t, err, storage.ErrBadType)
}

func TestSaveWritesWithPolicyPrefix(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save(storage.CVPolicy, upload("resume.pdf", "application/pdf", []byte("%PDF-1.4")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "cv-"))
	assert.True(t, strings.HasSuffix(name, ".pdf"))

	data, err := os.ReadFile(store.FilePath(storage.CVPolicy, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)
}

func TestSaveDownscalesLargeImages(t *testing.T) {
	store := newTestStore(t)
	original := pngBytes(t, 2400, 1200)

	name, err := store.Save(storage.PhotoPolicy, upload("huge.png", "image/png", original))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	data, err := os.ReadFile(store.FilePath(storage.PhotoPolicy, name))
	require.NoError(t, err)

	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1200, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestSaveKeepsSmallImagesVerbatim(t *testing.T) {
	store := newTestStore(t)
	original := pngBytes(t, 400, 300)

	name, err := store.Save(storage.PhotoPolicy, upload("small.png", "image/png", original))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))

	data, err := os.ReadFile(store.FilePath(storage.PhotoPolicy, name))
	require.NoError(t, err)
	assert.Equal(t, original, data)
}

func TestSaveKeepsNonDecodableImageBytes(t *testing.T) {
	store := newTestStore(t)
	payload := []byte("not really an image")

	// Declared image type with undecodable content still succeeds; the bytes
	// are stored as-is.
	name, err := store.Save(storage.PhotoPolicy, upload("odd.jpg", "image/jpeg", payload))
	require.NoError(t, err)

	data, err := os.ReadFile(store.FilePath(storage.PhotoPolicy, name))
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestProjectImageNamesDoNotCollide(t *testing.T) {
	store := newTestStore(t)
	img := pngBytes(t, 10, 10)

	a, err := store.Save(storage.ProjectImagePolicy, upload("a.png", "image/png", img))
	require.NoError(t, err)
	b, err := store.Save(storage.ProjectImagePolicy, upload("b.png", "image/png", img))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRemoveIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save(storage.CVPolicy, upload("cv.pdf", "application/pdf", []byte("%PDF-")))
	require.NoError(t, err)

	require.NoError(t, store.Remove(storage.CVPolicy, name))
	require.NoError(t, store.Remove(storage.CVPolicy, name))
	require.NoError(t, store.Remove(storage.CVPolicy, ""))
}

func TestFilePathStripsTraversal(t *testing.T) {
	store := newTestStore(t)
	path := store.FilePath(storage.CVPolicy, "../../etc/passwd")
	assert.Equal(t, filepath.Join(store.BaseDir(), "cv", "passwd"), path)
}

func TestPublicURL(t *testing.T) {
	store := newTestStore(t)
	assert.Equal(t, "/uploads/profile/profile-1.jpg",
		store.PublicURL(storage.PhotoPolicy, "profile-1.jpg"))
	assert.Equal(t, "/uploads/projects/project-1.png",
		store.PublicURL(storage.ProjectImagePolicy, "project-1.png"))
}
