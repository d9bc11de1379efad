// Package dto contains data transfer objects for application layer use cases.
package dto

import (
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
)

// CreateModRequest asks for a new mod skeleton under TargetDirectory.
type CreateModRequest struct {
	ModInfo         *entities.ModInfo `json:"modInfo"`
	TargetDirectory string            `json:"targetDirectory"`
}

// DirectoryDialogRequest opens a directory picker.
type DirectoryDialogRequest struct {
	DefaultPath string `json:"defaultPath,omitempty"`
}

// BuildProjectRequest generates every asset a manifest describes.
type BuildProjectRequest struct {
	// ManifestPath is a .yaml, .yml or .toml manifest.
	ManifestPath string

	// TargetDirectory receives the mod folder; defaults to the manifest's directory.
	TargetDirectory string

	// Filter is an optional expression over kind, name, code and tags.
	Filter string

	// Parallelism limits concurrent writes (0 = use the configured default)
	Parallelism int
}
