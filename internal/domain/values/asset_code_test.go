package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewAssetCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"namespaced", "game:ingot-copper", "game:ingot-copper", false},
		{"no domain", "stick", "stick", false},
		{"trimmed", "  game:stick ", "game:stick", false},
		{"wildcard", "game:ingot-*", "game:ingot-*", false},
		{"empty", "", "", true},
		{"blank", "   ", "", true},
		{"inner space", "game:oak plank", "", true},
		{"two separators", "a:b:c", "", true},
		{"empty domain", ":stick", "", true},
		{"empty path", "game:", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := NewAssetCode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, code.String())
		})
	}
}

func Test_AssetCode_Parts(t *testing.T) {
	code := MustNewAssetCode("mymod:gear-iron")
	assert.Equal(t, "mymod", code.Domain())
	assert.Equal(t, "gear-iron", code.Path())
	assert.Equal(t, "gear-iron", code.ShortName())

	bare := MustNewAssetCode("stick")
	assert.Equal(t, DefaultDomain, bare.Domain())
	assert.Equal(t, "stick", bare.Path())
}

func Test_AssetCode_Qualified(t *testing.T) {
	assert.Equal(t, "game:stick", MustNewAssetCode("stick").Qualified())
	assert.Equal(t, "mymod:gear-iron", MustNewAssetCode("mymod:gear-iron").Qualified())
	assert.Equal(t, "stick", MustNewAssetCode("stick").String(), "String keeps the authored form")
	assert.Empty(t, AssetCode{}.Qualified())
}

func Test_AssetCode_Equals(t *testing.T) {
	assert.True(t, MustNewAssetCode("game:stick").Equals(MustNewAssetCode("game:stick")))
	assert.False(t, MustNewAssetCode("game:stick").Equals(MustNewAssetCode("stick")))
	assert.True(t, AssetCode{}.IsEmpty())
}
