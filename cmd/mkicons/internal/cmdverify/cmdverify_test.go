package cmdverify

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bollyword/mkicons"
)

func Test_printReports(t *testing.T) {
	rr := []mkicons.Report{
		{Target: mkicons.Targets[0], Filename: "icon-192.png", Width: 192, Height: 192, Alpha: true},
		{Target: mkicons.Targets[1], Filename: "icon-512.png", Err: errors.New("file does not exist")},
	}
	var buf bytes.Buffer
	require.NoError(t, printReports(&buf, rr))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "192x192")
	assert.Contains(t, string(lines[0]), "ok")
	assert.Contains(t, string(lines[1]), "FAIL")
	assert.Contains(t, string(lines[1]), "file does not exist")
}
