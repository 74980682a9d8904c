// Package media stores uploaded play images on the local filesystem.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var ErrNotAnImage = errors.New("upload a valid image")

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp", "image/bmp"}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

type ImageStore struct {
	dir       string
	urlPrefix string
	maxBytes  int64
}

func NewImageStore(dir, urlPrefix string, maxBytes int64) *ImageStore {
	return &ImageStore{
		dir:       dir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		maxBytes:  maxBytes,
	}
}

func (s *ImageStore) Dir() string {
	return s.dir
}

// SavePlayImage writes src under a unique name derived from title and returns the URL path
// it is served from. Content is sniffed, the client's file name and content type are ignored.
func (s *ImageStore) SavePlayImage(title string, src io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(src, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("%w: file larger than %d bytes", ErrNotAnImage, s.maxBytes)
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedImageTypes...) {
		return "", ErrNotAnImage
	}

	name := fmt.Sprintf("%s-%s%s", slugify(title), uuid.NewString(), mtype.Extension())

	err = os.MkdirAll(filepath.Join(s.dir, "plays"), 0o755)
	if err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	err = writeFile(filepath.Join(s.dir, "plays", name), data)
	if err != nil {
		return "", err
	}

	return path.Join(s.urlPrefix, "plays", name), nil
}

// Remove deletes the image a URL returned by SavePlayImage points at.
func (s *ImageStore) Remove(url string) error {
	rel, ok := strings.CutPrefix(url, s.urlPrefix+"/")
	if !ok || rel != path.Clean(rel) || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("%q is not a stored image", url)
	}

	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(rel)))
	if err != nil {
		return fmt.Errorf("remove image file: %w", err)
	}

	return nil
}

// writeFile leaves nothing behind when the data did not reach the disk completely.
func writeFile(name string, data []byte) (err error) {
	dst, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}

	defer func() {
		if err != nil {
			os.Remove(name)
		}
	}()

	_, err = io.Copy(dst, bytes.NewReader(data))
	if err != nil {
		dst.Close()
		return fmt.Errorf("write image file: %w", err)
	}

	err = dst.Close()
	if err != nil {
		return fmt.Errorf("close image file: %w", err)
	}

	return nil
}

func slugify(s string) string {
	slug := strings.Trim(nonSlugChars.ReplaceAllString(strings.ToLower(s), "-"), "-")
	if slug == "" {
		return "play"
	}

	return slug
}
