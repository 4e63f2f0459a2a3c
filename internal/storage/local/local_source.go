package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"adinvoice/internal/domain"
	"adinvoice/internal/port"
)

type dirSource struct {
	dir string
}

// NewDirSource creates an AssetSource reading files from dir.
func NewDirSource(dir string) port.AssetSource {
	return &dirSource{dir: dir}
}

func (s *dirSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// names are relative to dir; "../" cannot escape it
	path := filepath.Join(s.dir, filepath.Clean(string(filepath.Separator)+name))
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrAssetNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading asset %s: %w", path, err)
	}
	return data, nil
}

func (s *dirSource) Location() string {
	return "file://" + s.dir
}
