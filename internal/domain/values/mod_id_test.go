package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewModID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
		errMsg  string
	}{
		{name: "simple", input: "mymod"},
		{name: "with digits", input: "tools2"},
		{name: "trimmed", input: " mymod "},
		{name: "empty", input: "", wantErr: true, errMsg: "mod id is required"},
		{name: "uppercase", input: "MyMod", wantErr: true, errMsg: "lowercase"},
		{name: "hyphen", input: "my-mod", wantErr: true, errMsg: "lowercase"},
		{name: "starts with digit", input: "2mod", wantErr: true, errMsg: "starting with a letter"},
		{name: "path traversal", input: "../etc", wantErr: true, errMsg: "lowercase"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			id, err := NewModID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.False(t, id.IsEmpty())
		})
	}
}

func Test_NewModSide(t *testing.T) {
	side, err := NewModSide("client")
	require.NoError(t, err)
	assert.Equal(t, SideClient, side)

	side, err = NewModSide("")
	require.NoError(t, err)
	assert.Equal(t, SideUniversal, side)

	_, err = NewModSide("both")
	assert.Error(t, err)
}

func Test_NewModType(t *testing.T) {
	mt, err := NewModType("DLC")
	require.NoError(t, err)
	assert.Equal(t, ModTypeDLC, mt)

	mt, err = NewModType("")
	require.NoError(t, err)
	assert.Equal(t, ModTypeCode, mt)

	_, err = NewModType("theme")
	assert.Error(t, err)
}

func Test_ValidateModVersion(t *testing.T) {
	assert.NoError(t, ValidateModVersion("1.0.0"))
	assert.NoError(t, ValidateModVersion("1.2.3-rc.1"))
	assert.Error(t, ValidateModVersion(""))
	assert.Error(t, ValidateModVersion("1.0"))
	assert.Error(t, ValidateModVersion("v1.0.0"))
}

func Test_ValidateDependencyVersion(t *testing.T) {
	assert.NoError(t, ValidateDependencyVersion("*"))
	assert.NoError(t, ValidateDependencyVersion(""))
	assert.NoError(t, ValidateDependencyVersion("1.19.8"))
	assert.Error(t, ValidateDependencyVersion("latest"))
}
