// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"

	"github.com/TinyTaru/VintagestoryModmaker/internal/application/dto"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
)

// ModFileSystem opens mod folders for writing.
type ModFileSystem interface {
	// OpenRoot creates dir if needed and returns a handle confined to it.
	OpenRoot(dir string) (ModRoot, error)
}

// ModRoot writes files below one directory. Paths are slash separated and
// relative; paths escaping the root are rejected. Safe for concurrent use.
type ModRoot interface {
	MkdirAll(rel string) error
	WriteFile(rel string, data []byte) error
	Exists(rel string) bool
	Path() string
	Close() error
}

// DirectoryLocker serialises builds of the same mod folder.
type DirectoryLocker interface {
	// Lock blocks until the lock is held or ctx is done.
	Lock(ctx context.Context, dir string) (unlock func() error, err error)
}

// DirectoryPicker asks the user for a directory.
type DirectoryPicker interface {
	PickDirectory(ctx context.Context, req dto.DirectoryDialogRequest) dto.DirectoryDialogResponse
}

// DocumentEncoder renders a generated document as file contents.
type DocumentEncoder interface {
	Encode(doc any) ([]byte, error)
}

// DocumentValidator checks a rendered document against the schema for kind.
type DocumentValidator interface {
	Validate(kind string, data []byte) error
}

// ReadmeRenderer renders the README.md of a new mod.
type ReadmeRenderer interface {
	RenderReadme(info *entities.ModInfo) ([]byte, error)
}

// ManifestLoader reads a project manifest.
type ManifestLoader interface {
	Load(path string) (*entities.Manifest, error)
}

// ChangeNotifier reports writes to a file.
type ChangeNotifier interface {
	// Watch sends on the returned channel after each change to path until
	// ctx is done, then closes it.
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}

// Clipboard receives generated documents.
type Clipboard interface {
	WriteAll(text string) error
}
