package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shandysiswandi/csvboard/internal/dataset/entity"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkgerror"
)

// FileSystem keeps CSV files in one flat directory. There is no locking:
// concurrent writers of the same name race and the last one wins.
type FileSystem struct {
	dir string
}

// NewFileSystem creates dir when missing and returns a store rooted at its absolute path.
func NewFileSystem(dir string) (*FileSystem, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve data directory %q: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %q: %w", abs, err)
	}

	return &FileSystem{dir: abs}, nil
}

func (s *FileSystem) Dir() string {
	return s.dir
}

// List returns the regular files with a .csv extension (any case). A missing
// directory yields an empty list.
func (s *FileSystem) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		files = append(files, entry.Name())
	}

	return files, nil
}

func (s *FileSystem) Stat(ctx context.Context, filename string) (entity.Fingerprint, error) {
	path, err := s.path(filename)
	if err != nil {
		return entity.Fingerprint{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return entity.Fingerprint{}, mapErr(err)
	}
	if !info.Mode().IsRegular() {
		return entity.Fingerprint{}, pkgerror.ErrNotFound
	}

	return entity.Fingerprint{Size: info.Size(), ModTime: info.ModTime().UnixNano()}, nil
}

func (s *FileSystem) Read(ctx context.Context, filename string) ([]byte, error) {
	path, err := s.path(filename)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, mapErr(err)
	}

	return content, nil
}

// Write copies r into filename, truncating any existing file.
func (s *FileSystem) Write(ctx context.Context, filename string, r io.Reader) error {
	path, err := s.path(filename)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", filename, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", filename, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filename, err)
	}

	return nil
}

func (s *FileSystem) Remove(ctx context.Context, filename string) error {
	path, err := s.path(filename)
	if err != nil {
		return err
	}

	info, err := os.Lstat(path)
	if err != nil {
		return mapErr(err)
	}
	if info.IsDir() {
		return pkgerror.ErrNotFound
	}

	if err := os.Remove(path); err != nil {
		return mapErr(err)
	}

	return nil
}

// path resolves filename inside the data directory, rejecting anything that
// is not a plain name.
func (s *FileSystem) path(filename string) (string, error) {
	if filename == "" || filename == "." || filename == ".." ||
		strings.ContainsAny(filename, `/\`) || strings.ContainsRune(filename, 0) {
		return "", fmt.Errorf("%w: %q", entity.ErrInvalidFilename, filename)
	}

	return filepath.Join(s.dir, filename), nil
}

func mapErr(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", pkgerror.ErrNotFound, err)
	}
	return err
}
