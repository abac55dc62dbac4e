package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"hotel/config"
	"hotel/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Store keeps each collection in <dir>/<name><ext>. Writes go to a temp file in the same
// directory and are renamed over the target, so a crash never leaves a half written collection.
type Store struct {
	dir string
	ext string
}

func New(dir, ext string) *Store {
	return &Store{dir: dir, ext: ext}
}

func NewFromConfig(cfg *config.Config, codec repository.Codec) *Store {
	log.Info().Str("dir", cfg.Storage.Dir).Str("format", cfg.Storage.Format).Msg("Using file storage")

	return New(cfg.Storage.Dir, codec.Extension())
}

func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+s.ext)
}

func (s *Store) Read(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, repository.ErrNotExist
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path(name), err)
	}

	return data, nil
}

func (s *Store) Write(_ context.Context, name string, data []byte) (err error) {
	if err = os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create storage dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err = os.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err = os.Rename(tmp.Name(), s.Path(name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.Path(name), err)
	}

	return nil
}
