//go:build noimaging

package mkicons

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriver_Run_noImaging(t *testing.T) {
	root := t.TempDir()
	var con bytes.Buffer
	d := New(WithRoot(root), WithConsole(&con))

	res := d.Run(context.Background())
	require.NoError(t, res.Err)
	assert.Equal(t, OutcomePlaceholder, res.Outcome)
	assert.Equal(t, statePlaceholder, d.State())
	assert.Equal(t, []string{PlaceholderPath}, listFiles(t, root))

	want, err := Placeholder()
	require.NoError(t, err)
	got, err := os.ReadFile(Target{Path: PlaceholderPath}.Filename(root))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
