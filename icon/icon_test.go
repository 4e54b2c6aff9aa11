//go:build !noimaging

package icon

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"

	"github.com/bollyword/mkicons/fontmgr"
)

var sizes = []int{180, 192, 512}

func openRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := Open(opts...)
	require.NoError(t, err)
	return r
}

func TestRenderer_Generate(t *testing.T) {
	r := openRenderer(t)
	for _, size := range sizes {
		t.Run("", func(t *testing.T) {
			img, err := r.Generate(size)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, size, size), img.Bounds())
			assert.Len(t, img.Pix, size*size*4, "expected 4 channels")

			l := NewLayout(size)
			assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0), "background must be transparent")
			assert.Equal(t, color.RGBA{}, img.RGBAAt(size-1, size-1), "background must be transparent")
			assert.Equal(t, BadgeColor, img.RGBAAt(l.Badge.Min.X+l.BadgeRadius, size/2), "badge")
			assert.Equal(t, GoldColor, img.RGBAAt(size/2, l.Border.Min.Y), "border")
			assert.Equal(t, BaseColor, img.RGBAAt(l.Base.Min.X+l.Base.Dx()/2, l.Base.Min.Y+l.Base.Dy()/2), "base")

			first := l.Stripes[0]
			assert.Equal(t, StripeColor, img.RGBAAt(first.Min.X, first.Min.Y), "first stripe")
			assert.Equal(t, GoldColor, img.RGBAAt(first.Max.X, first.Min.Y), "gap between stripes")
			last := l.Stripes[len(l.Stripes)-1]
			assert.Equal(t, StripeColor, img.RGBAAt(last.Max.X-1, last.Min.Y), "last stripe keeps its full width")
		})
	}
}

func TestRenderer_Generate_badgeBounds(t *testing.T) {
	r := openRenderer(t)
	for _, size := range sizes {
		img, err := r.Generate(size)
		require.NoError(t, err)
		margin := size / 20
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				inside := margin <= x && x < size-margin && margin <= y && y < size-margin
				if !inside && img.RGBAAt(x, y).A != 0 {
					t.Fatalf("size %d: pixel (%d, %d) outside the badge is not transparent", size, x, y)
				}
			}
		}
	}
}

func TestRenderer_Generate_text(t *testing.T) {
	r := openRenderer(t)
	for _, size := range sizes {
		img, err := r.Generate(size)
		require.NoError(t, err)
		l := NewLayout(size)
		region := image.Rect(size/4, l.TextTop, size-size/4, l.TextTop+size/12)
		var lettered int
		for y := region.Min.Y; y < region.Max.Y; y++ {
			for x := region.Min.X; x < region.Max.X; x++ {
				if img.RGBAAt(x, y) != BadgeColor {
					lettered++
				}
			}
		}
		assert.Positive(t, lettered, "size %d: no text drawn", size)
	}
}

func TestRenderer_Generate_fontFallback(t *testing.T) {
	t.Run("unresolvable font file", func(t *testing.T) {
		r := openRenderer(t, WithFontFiles(filepath.Join(t.TempDir(), "DejaVuSerif-Bold.ttf")))
		img, err := r.Generate(192)
		require.NoError(t, err)
		assert.Equal(t, 192, img.Bounds().Dx())
		assert.Equal(t, 192, img.Bounds().Dy())
	})
	t.Run("loader returns no face", func(t *testing.T) {
		r := openRenderer(t, WithFaceLoader(func(float64) font.Face { return nil }))
		img, err := r.Generate(180)
		require.NoError(t, err)
		assert.Equal(t, 180, img.Bounds().Dx())
	})
	t.Run("bitmap default face", func(t *testing.T) {
		var requested float64
		r := openRenderer(t, WithFaceLoader(func(size float64) font.Face {
			requested = size
			return fontmgr.DefaultFont
		}))
		_, err := r.Generate(512)
		require.NoError(t, err)
		assert.Equal(t, float64(512/12), requested)
	})
}

func TestRenderer_Generate_invalidSize(t *testing.T) {
	r := openRenderer(t)
	for _, size := range []int{0, -1} {
		img, err := r.Generate(size)
		assert.ErrorIs(t, err, ErrInvalidSize)
		assert.Nil(t, img)
	}
}

func TestRenderer_Generate_tiny(t *testing.T) {
	r := openRenderer(t)
	for _, size := range []int{1, 2, 17} {
		img, err := r.Generate(size)
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}
