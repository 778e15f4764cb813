package flash

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/mcuflash/go-at32flash/efc"
	"github.com/mcuflash/go-at32flash/target"
	"github.com/retroenv/retrogolib/assert"
)

func testPattern(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i*7 + 3)
	}
	return data
}

func TestWriteNotHalted(t *testing.T) {
	m := newMockTarget(pidF413_64K, 64<<10, f4xxAperture, f4xxAperture+secondBankOff)
	m.state = target.StateRunning
	bank := New(m, efc.Bank1BaseAddress)

	err := bank.Write(context.Background(), testPattern(4), 0)
	assert.True(t, errors.Is(err, ErrNotHalted))
	assert.Len(t, m.trace, 0)
}

func TestWriteMisalignedOffset(t *testing.T) {
	m := newMockTarget(pidF413_64K, 64<<10, f4xxAperture, f4xxAperture+secondBankOff)
	bank := New(m, efc.Bank1BaseAddress)

	err := bank.Write(context.Background(), testPattern(4), 1)
	var alignErr *AlignmentError
	assert.True(t, errors.As(err, &alignErr))
	assert.Equal(t, uint32(1), alignErr.Offset)
}

func TestWriteBeyondFlash(t *testing.T) {
	m := newMockTarget(pidF413_64K, 64<<10, f4xxAperture, f4xxAperture+secondBankOff)
	bank := New(m, efc.Bank1BaseAddress)

	err := bank.Write(context.Background(), testPattern(4), 64<<10-2)
	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestWriteOffsetOverflow(t *testing.T) {
	m := newMockTarget(pidF413_64K, 64<<10, f4xxAperture, f4xxAperture+secondBankOff)
	bank := New(m, efc.Bank1BaseAddress)

	// An offset near the top of the address space must be rejected, not
	// wrap around the bounds check and silently program nothing.
	err := bank.Write(context.Background(), testPattern(4), 0xFFFFFFFE)
	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
	assert.Len(t, m.halfwords, 0)
	assert.Len(t, m.writerCalls, 0)
}

func TestWriteBulkRoundTrip(t *testing.T) {
	m := newMockTarget(pidF413_64K, 64<<10, f4xxAperture, f4xxAperture+secondBankOff)
	bank := New(m, efc.Bank1BaseAddress, testLogger(t))

	data := testPattern(512)
	assert.NoError(t, bank.Write(context.Background(), data, 4))

	assert.Len(t, m.writerCalls, 1)
	call := m.writerCalls[0]
	assert.Equal(t, uint32(f4xxAperture), call.RegisterBase)
	assert.Equal(t, uint32(efc.Bank1BaseAddress+4), call.Address)
	assert.Equal(t, uint32(256), call.HalfwordCount)
	assert.True(t, bytes.Equal(data, m.flash[4:4+512]))

	// Program mode was selected and the controller relocked.
	ctrl := m.ctrlWrites(f4xxAperture)
	assertWrites(t, []uint32{efc.CtrlProgram, efc.CtrlLock}, ctrl)

	// Both working areas were released.
	assert.Equal(t, 2, m.allocs)
	assert.Equal(t, 2, m.frees)
}

func TestWriteOddLengthPadsCopy(t *testing.T) {
	m := newMockTarget(pidF413_64K, 64<<10, f4xxAperture, f4xxAperture+secondBankOff)
	bank := New(m, efc.Bank1BaseAddress, testLogger(t))

	data := testPattern(17)
	orig := make([]byte, len(data))
	copy(orig, data)

	assert.NoError(t, bank.Write(context.Background(), data, 0))

	// The caller's buffer is untouched, the staged copy carries the pad.
	assert.True(t, bytes.Equal(orig, data))
	call := m.writerCalls[0]
	assert.Equal(t, uint32(9), call.HalfwordCount)
	assert.Equal(t, orig[16], call.Data[16])
	assert.Equal(t, byte(0xFF), call.Data[17])
	assert.Equal(t, byte(0xFF), m.flash[17])
}

func TestWriteStagingBufferHalving(t *testing.T) {
	m := newMockTarget(pidF413_64K, 64<<10, f4xxAperture, f4xxAperture+secondBankOff)
	m.maxAlloc = 8192
	bank := New(m, efc.Bank1BaseAddress, testLogger(t))

	data := testPattern(1024)
	assert.NoError(t, bank.Write(context.Background(), data, 0))

	// The initial staging request was halved until it fit.
	call := m.writerCalls[0]
	assert.Equal(t, uint32(8192), call.BufferEnd-call.BufferStart)
	assert.True(t, bytes.Equal(data, m.flash[:1024]))
}

func TestWriteAcrossSubBankBoundary(t *testing.T) {
	m := newMockTarget(pidF403A1M, 1<<20, f4xxAperture, f4xxAperture+secondBankOff)
	bank := New(m, efc.Bank1BaseAddress, testLogger(t))

	boundary := uint32(512 << 10)
	data := testPattern(8)
	assert.NoError(t, bank.Write(context.Background(), data, boundary-4))

	// One clipped piece per sub-bank, programmed through its own aperture.
	assert.Len(t, m.writerCalls, 2)

	first := m.writerCalls[0]
	assert.Equal(t, uint32(f4xxAperture), first.RegisterBase)
	assert.Equal(t, efc.Bank1BaseAddress+boundary-4, first.Address)
	assert.Equal(t, uint32(2), first.HalfwordCount)

	second := m.writerCalls[1]
	assert.Equal(t, uint32(f4xxAperture+secondBankOff), second.RegisterBase)
	assert.Equal(t, efc.Bank1BaseAddress+boundary, second.Address)
	assert.Equal(t, uint32(2), second.HalfwordCount)

	assert.True(t, bytes.Equal(data, m.flash[boundary-4:boundary+4]))

	// Each sub-bank was locked again after its piece.
	assertWrites(t, []uint32{efc.CtrlProgram, efc.CtrlLock}, m.ctrlWrites(f4xxAperture))
	assertWrites(t, []uint32{efc.CtrlProgram, efc.CtrlLock}, m.ctrlWrites(f4xxAperture+secondBankOff))
}

func TestWriteFallbackToHalfwords(t *testing.T) {
	m := newMockTarget(pidF413_64K, 64<<10, f4xxAperture, f4xxAperture+secondBankOff)
	m.failAlloc = true
	bank := New(m, efc.Bank1BaseAddress, testLogger(t))

	data := testPattern(18)
	assert.NoError(t, bank.Write(context.Background(), data, 0))

	// No writer run, nine individual halfword programs instead.
	assert.Len(t, m.writerCalls, 0)
	assert.Len(t, m.halfwords, 9)
	for i, hw := range m.halfwords {
		assert.Equal(t, efc.Bank1BaseAddress+uint32(i*2), hw.addr)
	}
	assert.True(t, bytes.Equal(data, m.flash[:18]))

	assertWrites(t, []uint32{efc.CtrlProgram, efc.CtrlLock}, m.ctrlWrites(f4xxAperture))
}

func TestWriteFallbackTimeout(t *testing.T) {
	m := newMockTarget(pidF413_64K, 64<<10, f4xxAperture, f4xxAperture+secondBankOff)
	m.failAlloc = true
	m.statusBusyPolls = 50
	bank := New(m, efc.Bank1BaseAddress)

	err := bank.Write(context.Background(), testPattern(2), 0)
	var timeoutErr *TimeoutError
	assert.True(t, errors.As(err, &timeoutErr))
	assert.Equal(t, "halfword program", timeoutErr.Op)
	assert.Equal(t, efc.HalfwordTimeout, timeoutErr.Timeout)

	// The controller was still relocked on the error path.
	ctrl := m.ctrlWrites(f4xxAperture)
	assert.Equal(t, uint32(efc.CtrlLock), ctrl[len(ctrl)-1])
}

func TestWriteFailureReportsStatus(t *testing.T) {
	m := newMockTarget(pidF413_64K, 64<<10, f4xxAperture, f4xxAperture+secondBankOff)
	m.writerFail = true
	m.writerStatus = efc.StatusProgramError
	m.writerFailAddr = efc.Bank1BaseAddress + 0x40
	bank := New(m, efc.Bank1BaseAddress)

	err := bank.Write(context.Background(), testPattern(128), 0)
	var progErr *ProgrammingError
	assert.True(t, errors.As(err, &progErr))
	assert.Equal(t, uint32(efc.Bank1BaseAddress+0x40), progErr.Address)
	assert.Equal(t, uint32(efc.StatusProgramError), uint32(progErr.Status))

	// The error bit was written back to clear it, then the bank relocked.
	assertWrites(t, []uint32{efc.StatusProgramError}, m.writesTo(f4xxAperture+efc.RegStatus))
	ctrl := m.ctrlWrites(f4xxAperture)
	assert.Equal(t, uint32(efc.CtrlLock), ctrl[len(ctrl)-1])
}
