package mkicons

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/disintegration/imaging"
)

var (
	errSizeMismatch = errors.New("size mismatch")
	errNoAlpha      = errors.New("no alpha channel")
)

// Report describes a generated icon file.
type Report struct {
	Target   Target
	Filename string
	Width    int
	Height   int
	Alpha    bool // image has an alpha channel
	Err      error
}

// OK reports whether the file was decoded, has the declared dimensions and
// an alpha channel.
func (r Report) OK() bool {
	return r.Err == nil
}

// Verify decodes the target files under root and checks their dimensions and
// alpha channel.
func Verify(root string, targets []Target) []Report {
	reports := make([]Report, 0, len(targets))
	for _, t := range targets {
		reports = append(reports, verifyOne(root, t))
	}
	return reports
}

func verifyOne(root string, t Target) Report {
	r := Report{Target: t, Filename: t.Filename(root)}
	data, err := os.ReadFile(r.Filename)
	if err != nil {
		r.Err = err
		return r
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		r.Err = fmt.Errorf("%s: %w", r.Filename, err)
		return r
	}
	r.Width, r.Height = img.Bounds().Dx(), img.Bounds().Dy()
	r.Alpha = pngAlpha(data)
	switch {
	case r.Width != t.Size || r.Height != t.Size:
		r.Err = fmt.Errorf("%w: got %dx%d, want %[4]dx%[4]d", errSizeMismatch, r.Width, r.Height, t.Size)
	case !r.Alpha:
		r.Err = errNoAlpha
	}
	return r
}

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// pngAlpha reports whether the PNG header declares a colour type with an
// alpha channel.  The decoded colour model can not tell, as RGB images are
// decoded to *image.RGBA as well.
func pngAlpha(data []byte) bool {
	const colourTypeOffset = 25 // signature, IHDR length and type, width, height, depth
	if len(data) <= colourTypeOffset || !bytes.HasPrefix(data, pngSignature) {
		return false
	}
	switch data[colourTypeOffset] {
	case 4, 6: // greyscale with alpha, truecolour with alpha
		return true
	}
	return false
}
