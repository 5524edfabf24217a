package uploads

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"artisan-market/internal/marketerrors"
	"artisan-market/utils"
)

// PublicPrefix is the URL path the upload directory is served under
const PublicPrefix = "/uploads"

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Store places uploaded images under a local directory with generated names
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("uploads: create %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir is the directory files are written to
func (s *Store) Dir() string {
	return s.dir
}

// Target picks the destination of an uploaded image. It returns the file path
// to write to and the public URL the file will be served from.
func (s *Store) Target(fh *multipart.FileHeader) (dst, url string, err error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExt[ext] {
		return "", "", marketerrors.WithDetail(marketerrors.ErrInvalidInput, "image must be a jpg, png, gif or webp file")
	}
	name := utils.GenerateID() + ext
	return filepath.Join(s.dir, name), PublicPrefix + "/" + name, nil
}
