package level

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testdataPath() string {
	return filepath.Join("testdata", "levels")
}

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader(testdataPath())

	lvls, err := loader.LoadAll()
	require.NoError(t, err)

	// broken.yaml fails validation and readme.txt is not a level
	require.Len(t, lvls, 2)
	assert.Equal(t, "canyon", lvls[0].ID)
	assert.Equal(t, "oasis", lvls[1].ID)
}

func TestLoaderLoadByID(t *testing.T) {
	loader := NewLoader(testdataPath())

	lvl, err := loader.LoadByID("canyon")
	require.NoError(t, err)

	assert.Equal(t, "Canyon Run", lvl.Name)
	assert.Equal(t, "#f59e0b", lvl.ThemeColor)
	require.Len(t, lvl.Platforms, 3)
	assert.Equal(t, PlatformHeight, lvl.Platforms[2].H, "default platform height")

	require.Len(t, lvl.Enemies, 2)
	assert.Equal(t, DefaultEnemyVX, lvl.Enemies[0].VX)
	assert.Equal(t, 3.0, lvl.Enemies[1].VX)
	assert.Equal(t, EnemySize, lvl.Enemies[1].W)

	assert.Equal(t, FlagHeight, lvl.Flag.H)

	_, err = loader.LoadByID("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoaderLookup(t *testing.T) {
	loader := NewLoader(testdataPath())

	byID, err := loader.Lookup("oasis")
	require.NoError(t, err)
	assert.Equal(t, "Oasis", byID.Name)

	byPath, err := loader.Lookup(filepath.Join(testdataPath(), "canyon.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "canyon", byPath.ID)

	_, err = loader.Lookup(filepath.Join(testdataPath(), "broken.yaml"))
	assert.Error(t, err, "a file that fails validation is not retried as an ID")
	assert.False(t, errors.Is(err, ErrNotFound))

	_, err = loader.Lookup("dunes")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "available: canyon, oasis")

	_, err = NewLoader(t.TempDir()).Lookup("dunes")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "no levels in")
}

func TestLoaderDefaultsTheme(t *testing.T) {
	lvl, err := NewLoader(testdataPath()).LoadByID("oasis")
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, lvl.ThemeColor)
	assert.Empty(t, lvl.Enemies)
}

func TestLoaderListIDs(t *testing.T) {
	ids, err := NewLoader(testdataPath()).ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"canyon", "oasis"}, ids)
}

func TestLoaderMissingRoot(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll()
	assert.Error(t, err)
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "fallback.yaml")
	orig := Fallback()

	require.NoError(t, SaveFile(path, orig))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, orig, loaded)
}

func TestLoadFileDefaultsID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dunes.yaml")
	lvl := Fallback()
	lvl.ID = ""
	require.NoError(t, SaveFile(path, lvl))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dunes", loaded.ID)
}
