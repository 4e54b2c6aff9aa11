// Package fontmgr locates and loads the fonts used to letter the icons.
package fontmgr

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/rusq/fontpic"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

//go:embed fonts/*
var fontFS embed.FS

// FontFile is a catalogue entry, describing a font file that may or may not
// be present on the machine.
type FontFile struct {
	Name       string
	Filename   string
	Style      string
	IsEmbedded bool // true if the font is compiled into the binary
}

// Available reports whether the font can be loaded on this machine.
func (f FontFile) Available() bool {
	if f.IsEmbedded {
		return true
	}
	fi, err := os.Stat(f.Filename)
	return err == nil && fi.Mode().IsRegular()
}

const (
	StyleSerifBold = "serif-bold"
	StyleBitmap    = "bitmap"
)

// embedded TrueType fonts, keyed by name.
var embeddedTTF = map[string][]byte{
	"lmroman10-bold": lmroman10bold.TTF,
}

// embedded bitmap faces, keyed by name.
var embeddedFaces = map[string]font.Face{
	"keyrus16": fontpic.Face8x16,
	"keyrus14": fontpic.Face8x14,
	"keyrus8":  fontpic.Face8x8,
}

var (
	errStop     = errors.New("stop")
	errSkip     = errors.New("skip")
	ErrNotFound = errors.New("not found")
)

// ListAllFonts calls cb for every catalogue entry, followed by the embedded
// fonts.
func ListAllFonts(cb func(FontFile, error) error) error {
	if err := LoadFontCatalogue(cb); err != nil {
		return fmt.Errorf("error loading font catalogue: %w", err)
	}
	if err := ListEmbedded(cb); err != nil {
		return fmt.Errorf("error listing embedded fonts: %w", err)
	}
	return nil
}

func ListEmbedded(cb func(FontFile, error) error) error {
	var sorted []FontFile
	for name := range embeddedTTF {
		sorted = append(sorted, FontFile{Name: name, Style: StyleSerifBold, IsEmbedded: true})
	}
	for name := range embeddedFaces {
		sorted = append(sorted, FontFile{Name: name, Style: StyleBitmap, IsEmbedded: true})
	}
	slices.SortFunc(sorted, func(a, b FontFile) int {
		return strings.Compare(a.Name, b.Name)
	})
	for _, fnt := range sorted {
		if err := cb(fnt, nil); err != nil {
			if errors.Is(err, errStop) {
				return nil
			}
			return err
		}
	}
	return nil
}

// LoadFontCatalogue reads the embedded catalogue of well-known system font
// locations and calls cb for each entry.  If cb returns errStop, iteration
// ends without an error; errSkip returned for a malformed row skips it.
func LoadFontCatalogue(cb func(FontFile, error) error) error {
	f, err := fontFS.Open("fonts/fonts.csv")
	if err != nil {
		return fmt.Errorf("unable to find font catalogue: %w", err)
	}
	defer f.Close()
	cr := csv.NewReader(f)

	header, err := cr.Read()
	if err != nil {
		return err
	}

	for {
		row, err := cr.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}

		var rec = make(map[string]string)
		for i, key := range header {
			rec[key] = row[i]
		}
		fnt := FontFile{
			Name:     rec["name"],
			Filename: rec["file"],
			Style:    rec["style"],
		}
		if fnt.Filename == "" {
			if err2 := cb(fnt, fmt.Errorf("font %q: empty filename", fnt.Name)); errors.Is(err2, errSkip) {
				continue
			} else {
				return err2
			}
		}

		if err := cb(fnt, nil); err != nil {
			if errors.Is(err, errStop) {
				return nil
			}
			return err
		}
	}
	return nil
}

// CatalogueFiles returns filenames of the catalogue entries of the given
// style, in catalogue order.
func CatalogueFiles(style string) ([]string, error) {
	var files []string
	if err := LoadFontCatalogue(func(ff FontFile, err error) error {
		if err != nil {
			return errSkip
		}
		if ff.Style == style {
			files = append(files, ff.Filename)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return files, nil
}

const defaultFont = "keyrus16"

// DefaultFont is the face of last resort.
var DefaultFont font.Face = embeddedFaces[defaultFont]

func LoadFromFile(filename string, size float64, dpi float64) (font.Face, error) {
	ext := filepath.Ext(strings.ToLower(filename))
	loader, ok := loadFuncs[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported font type: %q", ext)
	}
	return loader(filename, size, dpi)
}

type fontLoadFunc func(filename string, size float64, dpi float64) (font.Face, error)

// loadFuncs maps file extension to appropriate font loader
var loadFuncs = map[string]fontLoadFunc{
	".bin": loadFnt,
	".fnt": loadFnt,
	".ttf": loadTTF,
	".otf": loadTTF,
}

// loadFnt loads the fnt file from disk.  The width is assumed to be 8 bits,
// the height is derived from the file size.  Font is assumed to contain the
// whole ASCII table of 256 characters.
func loadFnt(filename string, _ float64, _ float64) (font.Face, error) {
	const (
		width                = 8
		minHeight, maxHeight = 2, 32 // (minHeight, maxHeight]
	)

	fi, err := os.Stat(filename)
	if err != nil {
		return nil, err
	}
	if maxHeight*256 < fi.Size() { // 32 bytes per each char
		return nil, fmt.Errorf("unsupported file format: %s", filename)
	}
	height := fi.Size() / 256

	if height <= minHeight || maxHeight < height {
		return nil, fmt.Errorf("unsupported or incorrect dimensions: %s", filename)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return fontpic.FntToFace(data, width, int(height)), nil
}

const maxTTFsize = 10 * 1048576 // 10 MB

var errTooLarge = errors.New("font file is too large")

// loadTTF loads a true type font and returns a face with size points.
func loadTTF(filename string, size float64, dpi float64) (font.Face, error) {
	fi, err := os.Stat(filename)
	if err != nil {
		return nil, err
	}
	if maxTTFsize < fi.Size() {
		return nil, errTooLarge
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return parseTTF(data, size, dpi)
}

func parseTTF(data []byte, size float64, dpi float64) (font.Face, error) {
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return face, nil
}

// LoadEmbedded returns an embedded font by name.  Size and dpi are ignored
// for bitmap faces.
func LoadEmbedded(name string, size float64, dpi float64) (font.Face, error) {
	if data, ok := embeddedTTF[name]; ok {
		return parseTTF(data, size, dpi)
	}
	if face, ok := embeddedFaces[name]; ok {
		return face, nil
	}
	return nil, fmt.Errorf("font %q: %w", name, ErrNotFound)
}

// LoadSerifBold returns a bold serif face of the given size.  It tries the
// files in order, or the catalogue entries if files is empty, then the
// embedded serif, and finally DefaultFont.  It never fails; the failures
// are logged at debug level.
func LoadSerifBold(size float64, dpi float64, files ...string) font.Face {
	if len(files) == 0 {
		var err error
		files, err = CatalogueFiles(StyleSerifBold)
		if err != nil {
			slog.Debug("font catalogue unavailable", "error", err)
		}
	}
	for _, filename := range files {
		face, err := LoadFromFile(filename, size, dpi)
		if err != nil {
			slog.Debug("font not loaded", "filename", filename, "error", err)
			continue
		}
		slog.Debug("font loaded", "filename", filename, "size", size)
		return face
	}
	face, err := LoadEmbedded("lmroman10-bold", size, dpi)
	if err == nil {
		slog.Debug("using embedded serif", "size", size)
		return face
	}
	slog.Debug("embedded serif not loaded, using default font", "error", err)
	return DefaultFont
}
