package cmdfonts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_listFonts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listFonts(&buf))
	out := buf.String()
	assert.Contains(t, out, "dejavu-serif-bold")
	assert.Contains(t, out, "/usr/share/fonts/truetype/dejavu/DejaVuSerif-Bold.ttf")
	assert.Contains(t, out, "lmroman10-bold")
	assert.Contains(t, out, "(embedded)")
}
