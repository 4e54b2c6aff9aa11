package fontmgr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func TestLoadFontCatalogue(t *testing.T) {
	var got []FontFile
	err := LoadFontCatalogue(func(ff FontFile, err error) error {
		require.NoError(t, err)
		got = append(got, ff)
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "dejavu-serif-bold", got[0].Name)
	assert.Equal(t, "/usr/share/fonts/truetype/dejavu/DejaVuSerif-Bold.ttf", got[0].Filename)
	assert.Equal(t, StyleSerifBold, got[0].Style)
}

func TestLoadFontCatalogue_stop(t *testing.T) {
	var n int
	err := LoadFontCatalogue(func(ff FontFile, err error) error {
		n++
		return errStop
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestListAllFonts(t *testing.T) {
	var embedded []string
	err := ListAllFonts(func(ff FontFile, err error) error {
		if ff.IsEmbedded {
			embedded = append(embedded, ff.Name)
		}
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"keyrus14", "keyrus16", "keyrus8", "lmroman10-bold"}, embedded)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	fnt := filepath.Join(dir, "font8x16.fnt")
	require.NoError(t, os.WriteFile(fnt, make([]byte, 256*16), 0o644))

	bad := filepath.Join(dir, "garbage.ttf")
	require.NoError(t, os.WriteFile(bad, []byte("not a font"), 0o644))

	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{"bitmap font", fnt, false},
		{"unsupported extension", filepath.Join(dir, "font.woff"), true},
		{"missing file", filepath.Join(dir, "missing.ttf"), true},
		{"corrupt ttf", bad, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face, err := LoadFromFile(tt.filename, 16, 72)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, face)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, face)
		})
	}
}

func TestLoadEmbedded(t *testing.T) {
	face, err := LoadEmbedded("lmroman10-bold", 16, 72)
	require.NoError(t, err)
	assert.Positive(t, face.Metrics().Height.Ceil())

	_, err = LoadEmbedded("comic-sans", 16, 72)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadSerifBold(t *testing.T) {
	t.Run("unresolvable files fall back to embedded serif", func(t *testing.T) {
		face := LoadSerifBold(16, 72, filepath.Join(t.TempDir(), "nope.ttf"))
		require.NotNil(t, face)
		assert.NotEqual(t, DefaultFont, face)
		assert.Positive(t, font.MeasureString(face, "MM").Ceil())
	})
	t.Run("zero size still yields a face", func(t *testing.T) {
		face := LoadSerifBold(0, 72, filepath.Join(t.TempDir(), "nope.ttf"))
		assert.NotNil(t, face)
	})
}

func TestFontFile_Available(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "a.ttf")
	require.NoError(t, os.WriteFile(existing, []byte{0}, 0o644))

	assert.True(t, FontFile{Filename: existing}.Available())
	assert.False(t, FontFile{Filename: existing + ".missing"}.Available())
	assert.True(t, FontFile{Name: "keyrus16", IsEmbedded: true}.Available())
}
