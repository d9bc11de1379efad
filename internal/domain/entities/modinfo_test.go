package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/values"
)

func TestNewModInfo_Defaults(t *testing.T) {
	m := NewModInfo()
	assert.Equal(t, values.ModTypeCode, m.Type)
	assert.Equal(t, "1.0.0", m.Version)
	assert.Equal(t, values.SideUniversal, m.Side)
	assert.NotNil(t, m.Dependencies)
}

func TestModInfo_Authors(t *testing.T) {
	m := NewModInfo()
	m.AddAuthor("Tyron")
	m.AddAuthor("  ")
	m.AddAuthor("Saraty")

	require.NoError(t, m.SetAuthor(1, ""))
	assert.Equal(t, []string{"Tyron", "Saraty"}, m.CleanAuthors())

	require.NoError(t, m.RemoveAuthor(0))
	assert.Equal(t, []string{"", "Saraty"}, m.Authors)

	assert.Error(t, m.RemoveAuthor(5))
	assert.Error(t, m.SetAuthor(-1, "x"))
}

func TestModInfo_Dependencies(t *testing.T) {
	m := NewModInfo()
	m.SetDependency("survival", "*")
	m.SetDependency(" game ", " 1.19.8 ")

	assert.Equal(t, []string{"game", "survival"}, m.DependencyIDs())
	assert.Equal(t, "1.19.8", m.Dependencies["game"])

	m.RemoveDependency("survival")
	assert.Equal(t, []string{"game"}, m.DependencyIDs())
}

func TestModInfo_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ModInfo)
		wantErr string
	}{
		{name: "valid", mutate: func(*ModInfo) {}},
		{name: "missing modid", mutate: func(m *ModInfo) { m.ModID = "" }, wantErr: "mod id is required"},
		{name: "bad modid", mutate: func(m *ModInfo) { m.ModID = "My Mod" }, wantErr: "invalid mod id"},
		{name: "missing name", mutate: func(m *ModInfo) { m.Name = " " }, wantErr: "mod name is required"},
		{name: "bad version", mutate: func(m *ModInfo) { m.Version = "one" }, wantErr: "invalid version"},
		{name: "bad side", mutate: func(m *ModInfo) { m.Side = "Both" }, wantErr: "invalid mod side"},
		{name: "bad dependency", mutate: func(m *ModInfo) { m.SetDependency("game", "newest") }, wantErr: "dependency game"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModInfo()
			m.ModID = "mymod"
			m.Name = "My Mod"
			tt.mutate(m)

			err := m.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestModInfo_ApplyDefaults(t *testing.T) {
	m := &ModInfo{ModID: "mymod", Name: "My Mod"}
	m.ApplyDefaults()
	assert.NoError(t, m.Validate())
	assert.Equal(t, values.SideUniversal, m.Side)
}
