package mapconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestNewStore_MissingDir(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "nope"), nil)
	require.Error(t, err)
}

func TestStore_Get(t *testing.T) {
	dir := t.TempDir()
	writeConf(t, dir, "heatmap.conf", "version: v1\nconfig:\n  mapStyle: dark\n")

	store, err := NewStore(dir, nil)
	require.NoError(t, err)

	conf, err := store.Get("heatmap")
	require.NoError(t, err)
	assert.Equal(t, "v1", conf["version"])

	nested, ok := conf["config"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "dark", nested["mapStyle"])
}

func TestStore_Get_ExtensionStripped(t *testing.T) {
	dir := t.TempDir()
	writeConf(t, dir, "heatmap.conf", "a: 1\n")

	store, err := NewStore(dir, nil)
	require.NoError(t, err)

	// Callers may pass the name with or without extension.
	conf, err := store.Get("heatmap.conf")
	require.NoError(t, err)
	assert.Equal(t, 1, conf["a"])
}

func TestStore_Get_NotFound(t *testing.T) {
	store, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	_, err = store.Get("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestStore_Get_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeConf(t, dir, "broken.conf", "- just\n- a\n- list\n")
	writeConf(t, dir, "empty.conf", "")

	store, err := NewStore(dir, nil)
	require.NoError(t, err)

	_, err = store.Get("broken")
	assert.ErrorIs(t, err, ErrConfigMalformed)

	_, err = store.Get("empty")
	assert.ErrorIs(t, err, ErrConfigMalformed)
}

func TestStore_Get_PathTraversal(t *testing.T) {
	dir := t.TempDir()
	writeConf(t, dir, "passwd.conf", "safe: true\n")

	store, err := NewStore(dir, nil)
	require.NoError(t, err)

	// Traversal characters are stripped; the lookup stays in the folder.
	conf, err := store.Get("../../etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, true, conf["safe"])
}

func TestStore_List(t *testing.T) {
	dir := t.TempDir()
	writeConf(t, dir, "points.conf", "a: 1\n")
	writeConf(t, dir, "heatmap.conf", "a: 1\n")
	writeConf(t, dir, "readme.txt", "not a conf")

	store, err := NewStore(dir, nil)
	require.NoError(t, err)

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"heatmap", "points"}, names)
}

func TestStore_State(t *testing.T) {
	dir := t.TempDir()
	writeConf(t, dir, "heatmap.conf", "a: 1\n")

	store, err := NewStore(dir, nil)
	require.NoError(t, err)

	state, ok := store.State().(StoreState)
	require.True(t, ok)
	assert.Equal(t, dir, state.Dir)
	assert.Equal(t, []string{"heatmap"}, state.Configs)
	assert.Equal(t, "mapconf", store.ComponentType())
}
