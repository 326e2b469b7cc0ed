package spritegen

import (
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spritegen/spritegen/frame"
)

const walkArtifact = `{
  "color_map": {"@": "#8B0000", " ": "#00000000"},
  "frames": {
    "walk_down_0": ["@@@", "@@"],
    "walk_down_1": ["  @@@"],
    "idle_down_0": ["@"]
  }
}`

func tempSpriteGen(t *testing.T) (*SpriteGen, string, func()) {
	dir, err := ioutil.TempDir("", "spritegen")
	require.NoError(t, err)

	s, err := New(filepath.Join(dir, "catalog.db"), log.New(ioutil.Discard, "", 0))
	require.NoError(t, err)

	return s, dir, func() {
		s.Close()
		os.RemoveAll(dir)
	}
}

func TestScan(t *testing.T) {
	s, dir, done := tempSpriteGen(t)
	defer done()

	sub := filepath.Join(dir, "characters")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, ioutil.WriteFile(filepath.Join(sub, "warrior.json"), []byte(walkArtifact), 0644))

	require.NoError(t, s.Scan(dir, 1))

	f, err := os.Open(filepath.Join(sub, "warrior.png"))
	require.NoError(t, err)
	defer f.Close()

	m, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 4*frame.Width, m.Bounds().Dx())
	assert.Equal(t, 5*frame.Height, m.Bounds().Dy())

	// The rendered sheet is now in the catalog
	crc, err := crcFile(filepath.Join(sub, "warrior.json"))
	require.NoError(t, err)

	stored, err := s.db.FindSheetByCRC(crc)
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestScanUsesCatalog(t *testing.T) {
	s, dir, done := tempSpriteGen(t)
	defer done()

	file := filepath.Join(dir, "warrior.json")
	require.NoError(t, ioutil.WriteFile(file, []byte(walkArtifact), 0644))

	crc, err := crcFile(file)
	require.NoError(t, err)

	canned := []byte("canned sheet bytes")
	require.NoError(t, s.db.AddCharacter("warrior", "", "", crc, canned))

	require.NoError(t, s.Scan(dir, 1))

	out, err := ioutil.ReadFile(filepath.Join(dir, "warrior.png"))
	require.NoError(t, err)
	assert.Equal(t, canned, out)
}

func TestScanSkipsMalformedArtifacts(t *testing.T) {
	s, dir, done := tempSpriteGen(t)
	defer done()

	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "broken.json"), []byte("not json"), 0644))

	require.NoError(t, s.Scan(dir, 1))

	_, err := os.Stat(filepath.Join(dir, "broken.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestScanSkipsHidden(t *testing.T) {
	s, dir, done := tempSpriteGen(t)
	defer done()

	hidden := filepath.Join(dir, ".cache")
	require.NoError(t, os.MkdirAll(hidden, 0755))
	require.NoError(t, ioutil.WriteFile(filepath.Join(hidden, "warrior.json"), []byte(walkArtifact), 0644))

	require.NoError(t, s.Scan(dir, 1))

	_, err := os.Stat(filepath.Join(hidden, "warrior.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestCRCFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "spritegen")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "data")
	require.NoError(t, ioutil.WriteFile(file, []byte("123456789"), 0644))

	// Standard IEEE check value for "123456789"
	crc, err := crcFile(file)
	require.NoError(t, err)
	assert.Equal(t, "CBF43926", crc)
}
