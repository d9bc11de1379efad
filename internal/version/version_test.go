package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_IsRelease(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"dev", false},
		{"1.2.0", true},
		{"v1.2.0", true},
		{"1.3.0-rc.1", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Info{Version: tt.version}.IsRelease(), tt.version)
	}
}

func TestInfo_Full(t *testing.T) {
	info := Info{Version: "1.0.0", Commit: "abc123", BuildDate: "2026-01-01", GoVersion: "go1.25.5", Platform: "linux/amd64"}
	assert.Equal(t, "modmaker 1.0.0 (commit abc123, built 2026-01-01, go1.25.5 linux/amd64)", info.Full())
	assert.Equal(t, "1.0.0", info.String())
	assert.Equal(t, Version, Get().Version)
}
