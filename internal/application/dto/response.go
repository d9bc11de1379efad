package dto

import "time"

// MessageModCreated is the scaffolder's success message.
const MessageModCreated = "Mod created successfully!"

// CreateModResponse reports the outcome of scaffolding. Failures are reported
// here with Success false instead of as an error.
type CreateModResponse struct {
	Success bool   `json:"success"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// DirectoryDialogResponse is what the directory picker returns. Exactly one of
// Canceled, Error or Path is meaningful.
type DirectoryDialogResponse struct {
	Canceled bool   `json:"canceled,omitempty"`
	Path     string `json:"path,omitempty"`
	Name     string `json:"name,omitempty"`
	Error    bool   `json:"error,omitempty"`
	Message  string `json:"message,omitempty"`
}

// WrittenFile is one document written by a build.
type WrittenFile struct {
	Kind string
	Name string
	Path string
}

// BuildProjectResponse summarises a build.
type BuildProjectResponse struct {
	// ModPath is the mod folder that was written.
	ModPath string

	// Scaffolded is true when the mod folder had to be created first.
	Scaffolded bool

	// Written lists generated files in manifest order.
	Written []WrittenFile

	// Skipped lists "kind/name" entries the filter excluded.
	Skipped []string

	// Warnings are non-fatal issues, such as kind conflicts in recipes.
	Warnings []string

	// Duration is how long the build took.
	Duration time.Duration
}
