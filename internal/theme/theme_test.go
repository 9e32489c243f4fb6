package theme

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPersistedPreference(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"dark"}`), 0o600))

	m := Load(path)
	assert.Equal(t, Dark, m.Mode())
	assert.Equal(t, Dark, m.Current().Mode)
}

func TestLoadIgnoresInvalidPreference(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"sepia"}`), 0o600))

	m := Load(path)
	assert.Contains(t, []Mode{Light, Dark}, m.Mode())
}

func TestTogglePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"light"}`), 0o600))

	m := Load(path)
	got := m.Toggle()
	assert.Equal(t, Dark, got.Mode)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var p preference
	require.NoError(t, json.Unmarshal(b, &p))
	assert.Equal(t, Dark, p.Theme)

	// A fresh load sees the flipped preference.
	assert.Equal(t, Dark, Load(path).Mode())
}

func TestToggleCreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "theme.json")
	m := &Manager{path: path, mode: Light}
	m.Toggle()

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
