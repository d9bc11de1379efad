// Package filesystem writes mod folders to disk.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/TinyTaru/VintagestoryModmaker/internal/application/ports"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ModFileSystem opens mod folders on the local disk.
type ModFileSystem struct{}

// NewModFileSystem creates a new mod filesystem.
func NewModFileSystem() *ModFileSystem {
	return &ModFileSystem{}
}

// OpenRoot creates dir if needed and opens it as an os.Root, so nothing
// written through it can land outside the mod folder.
func (f *ModFileSystem) OpenRoot(dir string) (ports.ModRoot, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	if err := os.MkdirAll(abs, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create mod directory: %w", err)
	}

	root, err := os.OpenRoot(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open mod directory: %w", err)
	}
	return &modRoot{root: root, path: abs}, nil
}

type modRoot struct {
	root *os.Root
	path string
}

func (r *modRoot) MkdirAll(rel string) error {
	if err := r.root.MkdirAll(filepath.FromSlash(rel), dirPerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", rel, err)
	}
	return nil
}

func (r *modRoot) WriteFile(rel string, data []byte) error {
	if err := r.root.WriteFile(filepath.FromSlash(rel), data, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return nil
}

func (r *modRoot) Exists(rel string) bool {
	_, err := r.root.Stat(filepath.FromSlash(rel))
	return err == nil
}

func (r *modRoot) Path() string {
	return r.path
}

func (r *modRoot) Close() error {
	return r.root.Close()
}
