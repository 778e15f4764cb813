package efc

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestStatusFlags(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		busy     bool
		err      bool
		errBits  uint32
		contains string
	}{
		{
			name:     "idle",
			status:   0,
			contains: "status 0x00000000",
		},
		{
			name:     "busy",
			status:   StatusBusy,
			busy:     true,
			contains: "busy",
		},
		{
			name:     "program error",
			status:   StatusProgramError,
			err:      true,
			errBits:  StatusProgramError,
			contains: "program error",
		},
		{
			name:     "protection error",
			status:   StatusProtectError,
			err:      true,
			errBits:  StatusProtectError,
			contains: "protection error",
		},
		{
			name:     "both errors",
			status:   StatusProgramError | StatusProtectError,
			err:      true,
			errBits:  StatusProgramError | StatusProtectError,
			contains: "program error, protection error",
		},
		{
			name:     "done only",
			status:   StatusDone,
			contains: "status 0x00000020",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.busy, tt.status.Busy())
			assert.Equal(t, tt.err, tt.status.Err())
			assert.Equal(t, tt.errBits, tt.status.ErrorBits())
			assert.Contains(t, tt.status.String(), tt.contains)
		})
	}
}
