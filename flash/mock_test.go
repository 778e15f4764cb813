package flash

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/mcuflash/go-at32flash/chip"
	"github.com/mcuflash/go-at32flash/efc"
	"github.com/mcuflash/go-at32flash/target"
	"github.com/retroenv/retrogolib/assert"
)

// regWrite records one 32-bit write issued by the engine.
type regWrite struct {
	addr  uint32
	value uint32
}

// mockTarget simulates a halted AT32 target: flash controller registers,
// the flash array, working area allocation and the flash writer routine.
// Tests assert against the recorded register trace.
type mockTarget struct {
	state     target.State
	productID uint32
	apertures []uint32

	mem       map[uint32]uint32
	flashBase uint32
	flash     []byte

	trace     []regWrite // every WriteWord
	halfwords []regWrite // every WriteHalfword
	reads     int

	// statusBusyPolls status reads report busy before the flag clears
	statusBusyPolls int

	// statusErr is returned once busy clears; cleared by write-1 like
	// the hardware. statusErrAperture restricts it to one aperture.
	statusErr         uint32
	statusErrAperture uint32

	failAlloc bool
	maxAlloc  uint32
	nextArea  uint32
	allocs    int
	frees     int

	writerCalls    []target.FlashWriterCall
	writerFail     bool
	writerStatus   efc.Status
	writerFailAddr uint32
}

func newMockTarget(productID, flashSize uint32, apertures ...uint32) *mockTarget {
	return &mockTarget{
		state:     target.StateHalted,
		productID: productID,
		apertures: apertures,
		mem:       make(map[uint32]uint32),
		flashBase: efc.Bank1BaseAddress,
		flash:     make([]byte, flashSize),
		nextArea:  0x20000000,
	}
}

func (m *mockTarget) statusReg(addr uint32) (uint32, bool) {
	for _, a := range m.apertures {
		if addr == a+efc.RegStatus {
			return a, true
		}
	}
	return 0, false
}

func (m *mockTarget) inFlash(addr uint32) bool {
	return addr >= m.flashBase && addr < m.flashBase+uint32(len(m.flash))
}

func (m *mockTarget) ReadWord(_ context.Context, addr uint32) (uint32, error) {
	m.reads++

	if addr == chip.ProductIDAddress {
		return m.productID, nil
	}

	if aperture, ok := m.statusReg(addr); ok {
		if m.statusBusyPolls > 0 {
			m.statusBusyPolls--
			return efc.StatusBusy, nil
		}
		if m.statusErrAperture != 0 && aperture != m.statusErrAperture {
			return 0, nil
		}
		return m.statusErr, nil
	}

	if m.inFlash(addr) && addr+4 <= m.flashBase+uint32(len(m.flash)) {
		return binary.LittleEndian.Uint32(m.flash[addr-m.flashBase:]), nil
	}

	return m.mem[addr], nil
}

func (m *mockTarget) WriteWord(_ context.Context, addr, value uint32) error {
	m.trace = append(m.trace, regWrite{addr: addr, value: value})

	if _, ok := m.statusReg(addr); ok {
		m.statusErr &^= value
		return nil
	}
	m.mem[addr] = value
	return nil
}

func (m *mockTarget) WriteHalfword(_ context.Context, addr uint32, value uint16) error {
	m.halfwords = append(m.halfwords, regWrite{addr: addr, value: uint32(value)})
	if m.inFlash(addr) {
		binary.LittleEndian.PutUint16(m.flash[addr-m.flashBase:], value)
	}
	return nil
}

func (m *mockTarget) WriteBuffer(_ context.Context, addr uint32, data []byte) error {
	if m.inFlash(addr) {
		copy(m.flash[addr-m.flashBase:], data)
	}
	return nil
}

func (m *mockTarget) State() target.State { return m.state }

func (m *mockTarget) AllocWorkingArea(size uint32) (*target.WorkingArea, error) {
	if m.failAlloc {
		return nil, target.ErrNoWorkingArea
	}
	if m.maxAlloc > 0 && size > m.maxAlloc {
		return nil, target.ErrNoWorkingArea
	}
	area := &target.WorkingArea{Address: m.nextArea, Size: size}
	m.nextArea += size
	m.allocs++
	return area, nil
}

func (m *mockTarget) FreeWorkingArea(area *target.WorkingArea) {
	if area != nil {
		m.frees++
	}
}

func (m *mockTarget) FlashWriterCode() []byte {
	return make([]byte, 32)
}

func (m *mockTarget) RunFlashWriter(_ context.Context, call target.FlashWriterCall) (target.FlashWriterResult, error) {
	m.writerCalls = append(m.writerCalls, call)

	if m.writerFail {
		return target.FlashWriterResult{
			Status:  m.writerStatus,
			Address: m.writerFailAddr,
			Failed:  true,
		}, nil
	}

	addr := call.Address
	// The option byte region lives outside the flash array window.
	if m.inFlash(addr) {
		copy(m.flash[addr-m.flashBase:], call.Data[:call.HalfwordCount*2])
	}
	return target.FlashWriterResult{}, nil
}

// ctrlWrites returns the values written to the control register of one
// aperture, in order.
func (m *mockTarget) ctrlWrites(aperture uint32) []uint32 {
	return m.writesTo(aperture + efc.RegCtrl)
}

// writesTo returns the values written to one address, in order.
func (m *mockTarget) writesTo(addr uint32) []uint32 {
	var values []uint32
	for _, w := range m.trace {
		if w.addr == addr {
			values = append(values, w.value)
		}
	}
	return values
}

// assertWrites compares a recorded write sequence element by element.
func assertWrites(t *testing.T, expected, got []uint32) {
	t.Helper()

	assert.Len(t, got, len(expected))
	for i := range expected {
		if i >= len(got) {
			return
		}
		assert.Equal(t, expected[i], got[i], "write %d", i)
	}
}
