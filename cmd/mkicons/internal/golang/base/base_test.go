package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_Name(t *testing.T) {
	tests := []struct {
		usageLine    string
		wantName     string
		wantLongName string
	}{
		{"mkicons generate [flags]", "generate", "generate"},
		{"mkicons fonts", "fonts", "fonts"},
		{"mkicons", "", ""},
	}
	for _, tt := range tests {
		c := &Command{UsageLine: tt.usageLine}
		assert.Equal(t, tt.wantName, c.Name(), tt.usageLine)
		assert.Equal(t, tt.wantLongName, c.LongName(), tt.usageLine)
	}
}

func TestSetExitStatus(t *testing.T) {
	SetExitStatus(SInvalidParameters)
	SetExitStatus(SGenericError) // lower status does not override
	assert.Equal(t, SInvalidParameters, ExitStatus())
	assert.Equal(t, "invalid parameters", ExitStatus().String())
	assert.Equal(t, "StatusCode(42)", StatusCode(42).String())
}
