package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// PhotoStore persists player photos and returns a stable URL for each.
// Save must only touch local fallback storage when the remote host truly
// failed; Delete is best-effort and never reports an error.
type PhotoStore interface {
	Save(ctx context.Context, playerID, filename string, content io.Reader) (string, error)
	Delete(ctx context.Context, photoURL string)
}

// ErrPhotoTooLarge is returned by PhotoStore implementations when an
// upload exceeds the size limit. Nothing may be stored in that case.
var ErrPhotoTooLarge = fmt.Errorf("%w: photo exceeds the 10 MiB limit", ErrInvalidInput)

var allowedPhotoExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// ValidatePhotoFilename rejects any upload whose extension is outside the
// accepted image set, before any upload attempt is made.
func ValidatePhotoFilename(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedPhotoExtensions[ext]; !ok {
		return fmt.Errorf("%w: file type %q not allowed, accepted types: .jpg .jpeg .png .gif .webp", ErrInvalidInput, ext)
	}

	return nil
}
