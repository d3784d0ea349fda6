package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/panjf2000/ants/v2"
	"github.com/suappstudio/matchday/internal/platform/logging"
	"github.com/suappstudio/matchday/internal/usecase"
)

const (
	defaultWorkers   = 4
	maxPhotoBytes    = 10 << 20
	publicPathPrefix = "/uploads/players/"
)

// RemoteUploader is the hosted image service behind the store. An
// unconfigured uploader is skipped entirely and uploads land on disk.
type RemoteUploader interface {
	Configured() bool
	Upload(ctx context.Context, publicID string, content io.Reader) (string, error)
	Destroy(ctx context.Context, publicID string) error
}

type StoreConfig struct {
	Remote  RemoteUploader
	BaseDir string
	Workers int
	Logger  *logging.Logger
}

// Store keeps player photos on the remote image host, falling back to
// the local uploads directory when the host fails. Remote calls run on a
// bounded worker pool so a burst of uploads cannot pile up goroutines.
type Store struct {
	remote  RemoteUploader
	baseDir string
	logger  *logging.Logger
	pool    *ants.Pool
}

func NewStore(cfg StoreConfig) (*Store, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	baseDir := strings.TrimSpace(cfg.BaseDir)
	if baseDir == "" {
		baseDir = filepath.Join("uploads", "players")
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create media worker pool: %w", err)
	}

	return &Store{
		remote:  cfg.Remote,
		baseDir: baseDir,
		logger:  logger,
		pool:    pool,
	}, nil
}

// Close releases the worker pool. In-flight uploads finish first.
func (s *Store) Close() {
	s.pool.Release()
}

func (s *Store) Save(ctx context.Context, playerID, filename string, content io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(content, maxPhotoBytes+1))
	if err != nil {
		return "", fmt.Errorf("read photo content: %w", err)
	}
	if len(data) > maxPhotoBytes {
		return "", usecase.ErrPhotoTooLarge
	}

	if s.remote != nil && s.remote.Configured() {
		url, err := s.remoteUpload(ctx, playerID, data)
		if err == nil {
			return url, nil
		}
		s.logger.WarnContext(ctx, "remote photo upload failed, using local storage", "player_id", playerID, "error", err)
	}

	return s.saveLocal(playerID, filename, data)
}

func (s *Store) Delete(ctx context.Context, photoURL string) {
	switch {
	case strings.Contains(photoURL, "cloudinary.com"):
		if s.remote == nil || !s.remote.Configured() {
			return
		}
		publicID := publicIDFromURL(photoURL)
		if publicID == "" {
			s.logger.WarnContext(ctx, "could not derive public id from photo url", "photo_url", photoURL)
			return
		}
		if err := s.remoteDestroy(ctx, publicID); err != nil {
			s.logger.WarnContext(ctx, "remote photo delete failed", "public_id", publicID, "error", err)
		}
	case strings.HasPrefix(photoURL, publicPathPrefix):
		name := filepath.Base(photoURL)
		if err := os.Remove(filepath.Join(s.baseDir, name)); err != nil && !os.IsNotExist(err) {
			s.logger.WarnContext(ctx, "local photo delete failed", "photo_url", photoURL, "error", err)
		}
	}
}

func (s *Store) remoteUpload(ctx context.Context, playerID string, data []byte) (string, error) {
	var (
		url  string
		err  error
		done = make(chan struct{})
	)
	submitErr := s.pool.Submit(func() {
		defer close(done)
		url, err = s.remote.Upload(ctx, "players/"+playerID, bytes.NewReader(data))
	})
	if submitErr != nil {
		return "", fmt.Errorf("submit upload task: %w", submitErr)
	}

	select {
	case <-done:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	if err != nil {
		return "", err
	}

	return url, nil
}

func (s *Store) remoteDestroy(ctx context.Context, publicID string) error {
	var (
		err  error
		done = make(chan struct{})
	)
	submitErr := s.pool.Submit(func() {
		defer close(done)
		err = s.remote.Destroy(ctx, publicID)
	})
	if submitErr != nil {
		return fmt.Errorf("submit destroy task: %w", submitErr)
	}

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	return err
}

func (s *Store) saveLocal(playerID, filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	name := playerID + ext
	if err := os.WriteFile(filepath.Join(s.baseDir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write photo file: %w", err)
	}

	return publicPathPrefix + name, nil
}

// publicIDFromURL recovers the upload public id from a delivery URL,
// skipping transformation and version path segments and dropping the
// file extension.
func publicIDFromURL(photoURL string) string {
	_, after, found := strings.Cut(photoURL, "/upload/")
	if !found {
		return ""
	}

	segments := strings.Split(after, "/")
	kept := make([]string, 0, len(segments))
	for _, segment := range segments {
		if strings.Contains(segment, ",") || isVersionSegment(segment) {
			continue
		}
		kept = append(kept, segment)
	}
	if len(kept) == 0 {
		return ""
	}

	joined := path.Join(kept...)
	return strings.TrimSuffix(joined, path.Ext(joined))
}

func isVersionSegment(segment string) bool {
	if len(segment) < 2 || segment[0] != 'v' {
		return false
	}
	for _, r := range segment[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
