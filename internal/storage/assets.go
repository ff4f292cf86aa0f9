// Package storage keeps uploaded assets on the local filesystem under a
// single base directory served at /uploads. Every asset kind carries its own
// UploadPolicy; handlers never hand-roll size or type checks.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"go-portfolio-backend/internal/domain"
)

var (
	// ErrTooLarge means the upload exceeds the policy size cap.
	ErrTooLarge = errors.New("file too large")
	// ErrBadType means the declared content type is not accepted.
	ErrBadType = errors.New("unsupported file type")
)

const (
	maxImageDimension = 1200
	jpegQuality       = 80
)

// UploadPolicy describes one asset kind: where it lives, how its filenames
// are generated and what it accepts.
type UploadPolicy struct {
	Dir          string // subdirectory under the base dir
	Prefix       string // filename prefix
	MaxBytes     int64
	AcceptPrefix string // content-type prefix, e.g. "image/" or exact "application/pdf"
	RandomSuffix bool   // add a uuid segment so concurrent uploads cannot collide
	Compress     bool   // downscale oversized images on the way in
}

var (
	PhotoPolicy = UploadPolicy{
		Dir:          "profile",
		Prefix:       "profile-",
		MaxBytes:     5 << 20,
		AcceptPrefix: "image/",
		Compress:     true,
	}
	CVPolicy = UploadPolicy{
		Dir:          "cv",
		Prefix:       "cv-",
		MaxBytes:     10 << 20,
		AcceptPrefix: "application/pdf",
	}
	ProjectImagePolicy = UploadPolicy{
		Dir:          "projects",
		Prefix:       "project-",
		MaxBytes:     5 << 20,
		AcceptPrefix: "image/",
		RandomSuffix: true,
		Compress:     true,
	}
)

// Store owns the upload tree rooted at BaseDir.
type Store struct {
	baseDir string
}

// NewStore creates the base directory and one subdirectory per policy.
func NewStore(baseDir string) (*Store, error) {
	for _, p := range []UploadPolicy{PhotoPolicy, CVPolicy, ProjectImagePolicy} {
		if err := os.MkdirAll(filepath.Join(baseDir, p.Dir), 0o755); err != nil {
			return nil, fmt.Errorf("create upload directory: %w", err)
		}
	}
	return &Store{baseDir: baseDir}, nil
}

// Save validates the upload against the policy and writes it to disk,
// returning the generated filename (not a path).
func (s *Store) Save(policy UploadPolicy, file domain.FileUpload) (string, error) {
	if file.Size > policy.MaxBytes || int64(len(file.Data)) > policy.MaxBytes {
		return "", ErrTooLarge
	}
	if !strings.HasPrefix(file.ContentType, policy.AcceptPrefix) {
		return "", ErrBadType
	}

	data := file.Data
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if policy.Compress {
		if compressed, err := downscale(data); err == nil {
			data = compressed
			ext = ".jpg"
		}
		// Non-decodable bytes pass through unchanged; the type check above
		// already gated on the declared content type.
	}
	if ext == "" {
		ext = defaultExt(file.ContentType)
	}

	name := fmt.Sprintf("%s%d", policy.Prefix, time.Now().UnixNano())
	if policy.RandomSuffix {
		name += "-" + uuid.NewString()[:8]
	}
	name += ext

	if err := os.WriteFile(filepath.Join(s.baseDir, policy.Dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return name, nil
}

// Remove deletes a stored file. Missing files are not an error so delete
// flows stay idempotent.
func (s *Store) Remove(policy UploadPolicy, filename string) error {
	if filename == "" {
		return nil
	}
	err := os.Remove(s.FilePath(policy, filename))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

// FilePath resolves the absolute on-disk location of a stored filename.
// filepath.Base strips any traversal segments a stored value could carry.
func (s *Store) FilePath(policy UploadPolicy, filename string) string {
	return filepath.Join(s.baseDir, policy.Dir, filepath.Base(filename))
}

// PublicURL maps a stored filename onto the static route.
func (s *Store) PublicURL(policy UploadPolicy, filename string) string {
	return "/uploads/" + policy.Dir + "/" + filepath.Base(filename)
}

// BaseDir returns the root of the upload tree for static serving.
func (s *Store) BaseDir() string { return s.baseDir }

// downscale re-encodes images whose longest side exceeds maxImageDimension
// as JPEG, preserving aspect ratio. Images already within bounds report an
// error so callers keep the original bytes.
func downscale(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxImageDimension && height <= maxImageDimension {
		return nil, errors.New("image within bounds")
	}

	var newWidth, newHeight int
	if width > height {
		newWidth = maxImageDimension
		newHeight = int(float64(height) * float64(maxImageDimension) / float64(width))
	} else {
		newHeight = maxImageDimension
		newWidth = int(float64(width) * float64(maxImageDimension) / float64(height))
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func defaultExt(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "application/pdf":
		return ".pdf"
	default:
		return ".jpg"
	}
}
