package dialog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"

	"github.com/TinyTaru/VintagestoryModmaker/internal/application/dto"
)

func TestDirectoryPicker(t *testing.T) {
	tests := []struct {
		name   string
		result string
		err    error
		want   dto.DirectoryDialogResponse
	}{
		{
			name:   "picked",
			result: "/home/alice/mods",
			want:   dto.DirectoryDialogResponse{Path: "/home/alice", Name: "mods"},
		},
		{
			name: "aborted",
			err:  huh.ErrUserAborted,
			want: dto.DirectoryDialogResponse{Canceled: true},
		},
		{
			name: "nothing chosen",
			want: dto.DirectoryDialogResponse{Canceled: true},
		},
		{
			name: "terminal failure",
			err:  errors.New("open /dev/tty: no such device"),
			want: dto.DirectoryDialogResponse{Error: true, Message: "open /dev/tty: no such device"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotStart string
			picker := NewDirectoryPickerWithPrompt(func(_ context.Context, start string) (string, error) {
				gotStart = start
				return tt.result, tt.err
			})

			resp := picker.PickDirectory(context.Background(), dto.DirectoryDialogRequest{DefaultPath: "/srv"})
			assert.Equal(t, tt.want, resp)
			assert.Equal(t, "/srv", gotStart)
		})
	}
}

func TestDirectoryPicker_DefaultStart(t *testing.T) {
	var gotStart string
	picker := NewDirectoryPickerWithPrompt(func(_ context.Context, start string) (string, error) {
		gotStart = start
		return "", nil
	})

	picker.PickDirectory(context.Background(), dto.DirectoryDialogRequest{})
	assert.NotEmpty(t, gotStart)
}

func TestStaticPicker(t *testing.T) {
	dir := t.TempDir()
	resp := StaticPicker{Dir: dir}.PickDirectory(context.Background(), dto.DirectoryDialogRequest{})
	assert.Equal(t, filepath.Dir(dir), resp.Path)
	assert.Equal(t, filepath.Base(dir), resp.Name)

	resp = StaticPicker{}.PickDirectory(context.Background(), dto.DirectoryDialogRequest{})
	assert.True(t, resp.Error)
	assert.Contains(t, resp.Message, "--dir")
}
