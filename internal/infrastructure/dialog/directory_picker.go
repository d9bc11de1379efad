// Package dialog implements the directory picker in the terminal.
package dialog

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/TinyTaru/VintagestoryModmaker/internal/application/dto"
)

// PromptFunc asks for a directory starting at start and returns the choice.
type PromptFunc func(ctx context.Context, start string) (string, error)

// DirectoryPicker asks for a directory with a huh file picker.
type DirectoryPicker struct {
	prompt PromptFunc
}

// NewDirectoryPicker creates a picker backed by huh.
func NewDirectoryPicker() *DirectoryPicker {
	return &DirectoryPicker{prompt: huhPrompt}
}

// NewDirectoryPickerWithPrompt creates a picker with a custom prompt.
func NewDirectoryPickerWithPrompt(prompt PromptFunc) *DirectoryPicker {
	return &DirectoryPicker{prompt: prompt}
}

// PickDirectory runs the prompt. Path is the parent of the chosen folder and
// Name its base name. Aborting the form, or leaving it without a
// choice, reports Canceled; any other failure reports Error with a message.
func (p *DirectoryPicker) PickDirectory(ctx context.Context, req dto.DirectoryDialogRequest) dto.DirectoryDialogResponse {
	start := req.DefaultPath
	if start == "" {
		if home, err := os.UserHomeDir(); err == nil {
			start = home
		} else {
			start = "."
		}
	}

	selected, err := p.prompt(ctx, start)
	switch {
	case errors.Is(err, huh.ErrUserAborted), errors.Is(err, context.Canceled):
		return dto.DirectoryDialogResponse{Canceled: true}
	case err != nil:
		return dto.DirectoryDialogResponse{Error: true, Message: err.Error()}
	case selected == "":
		return dto.DirectoryDialogResponse{Canceled: true}
	}

	abs, err := filepath.Abs(selected)
	if err != nil {
		return dto.DirectoryDialogResponse{Error: true, Message: err.Error()}
	}
	return selection(abs)
}

// selection splits a chosen folder into its parent directory and base name.
func selection(abs string) dto.DirectoryDialogResponse {
	return dto.DirectoryDialogResponse{Path: filepath.Dir(abs), Name: filepath.Base(abs)}
}

func huhPrompt(ctx context.Context, start string) (string, error) {
	var selected string
	picker := huh.NewFilePicker().
		Title("Select the folder to create the mod in").
		CurrentDirectory(start).
		DirAllowed(true).
		FileAllowed(false).
		Picking(true).
		Value(&selected)

	if err := huh.NewForm(huh.NewGroup(picker)).RunWithContext(ctx); err != nil {
		return "", err
	}
	return selected, nil
}

// StaticPicker answers with a fixed directory, for flags and non-interactive use.
type StaticPicker struct {
	Dir string
}

// PickDirectory returns Dir, or an error response when Dir is empty.
func (p StaticPicker) PickDirectory(_ context.Context, _ dto.DirectoryDialogRequest) dto.DirectoryDialogResponse {
	if p.Dir == "" {
		return dto.DirectoryDialogResponse{Error: true, Message: "no directory given; pass --dir when not running in a terminal"}
	}
	abs, err := filepath.Abs(p.Dir)
	if err != nil {
		return dto.DirectoryDialogResponse{Error: true, Message: err.Error()}
	}
	return selection(abs)
}
