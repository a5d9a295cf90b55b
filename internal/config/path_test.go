package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("SEVOS_TEST_DIR", "/srv/sevos")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/.config/sevos/config.yaml", filepath.Join(home, ".config/sevos/config.yaml")},
		{"$SEVOS_TEST_DIR/config.yaml", "/srv/sevos/config.yaml"},
		{"/etc/sevos.yaml", "/etc/sevos.yaml"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandPath(tt.in), tt.in)
	}
}

func TestSearchPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	paths := SearchPaths()
	require.Len(t, paths, 3)
	assert.Equal(t, ExpandPath("~/.config/sevos"), paths[0])
	assert.Equal(t, "/xdg/sevos", paths[1])
	assert.Equal(t, ".", paths[2])
}
