package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TinyTaru/VintagestoryModmaker/internal/infrastructure/system"
)

func TestParseSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantWidth  int
		wantHeight int
		errMsg     string
	}{
		{name: "square", input: "3x3", wantWidth: 3, wantHeight: 3},
		{name: "wide", input: "3x2", wantWidth: 3, wantHeight: 2},
		{name: "upper case and spaces", input: " 2X3 ", wantWidth: 2, wantHeight: 3},
		{name: "missing separator", input: "33", errMsg: "expected WIDTHxHEIGHT"},
		{name: "bad width", input: "ax3", errMsg: "invalid size"},
		{name: "bad height", input: "3x", errMsg: "invalid size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, h, err := parseSize(tt.input)
			if tt.errMsg != "" {
				assert.ErrorContains(t, err, tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWidth, w)
			assert.Equal(t, tt.wantHeight, h)
		})
	}
}

func TestOutputOptions_ValidateFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		opts   OutputOptions
		errMsg string
	}{
		{name: "defaults", opts: OutputOptions{}},
		{name: "yaml to file", opts: OutputOptions{Format: "yaml", Out: "recipe.yaml"}},
		{name: "table to terminal", opts: OutputOptions{Format: "table"}},
		{name: "invalid format", opts: OutputOptions{Format: "xml"}, errMsg: "invalid format: xml"},
		{name: "table to file", opts: OutputOptions{Format: "table", Out: "x.txt"}, errMsg: "table output is for the terminal"},
		{name: "table to clipboard", opts: OutputOptions{Format: "table", Copy: true}, errMsg: "table output is for the terminal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.opts.ValidateFlags(system.DefaultConfig())
			if tt.errMsg != "" {
				assert.ErrorContains(t, err, tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOutputOptions_ResolveFormat(t *testing.T) {
	t.Parallel()

	cfg := system.DefaultConfig()
	cfg.Output.Format = "yaml"

	assert.Equal(t, "table", (&OutputOptions{Format: "table"}).ResolveFormat(cfg))
	assert.Equal(t, "yaml", (&OutputOptions{}).ResolveFormat(cfg))
}

func TestTitleFromModID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Copperworks", titleFromModID("copperworks"))
	assert.Equal(t, "Mymod2", titleFromModID(" mymod2 "))
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Tyron", "Saraty"}, splitList("Tyron, ,Saraty,"))
	assert.Nil(t, splitList(" "))
}
