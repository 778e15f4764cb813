package flash

import (
	"context"
	"testing"

	"github.com/mcuflash/go-at32flash/efc"
	"github.com/retroenv/retrogolib/assert"
)

func TestNewNilTransport(t *testing.T) {
	defer func() {
		assert.NotNil(t, recover())
	}()
	New(nil, efc.Bank1BaseAddress)
}

func TestAccessorsBeforeProbe(t *testing.T) {
	m := newMockTarget(pidF403A256K, 256<<10, f4xxAperture, f4xxAperture+secondBankOff)
	bank := New(m, efc.Bank1BaseAddress)

	assert.Equal(t, uint32(efc.Bank1BaseAddress), bank.BaseAddress())
	assert.Nil(t, bank.Descriptor())
	assert.Equal(t, uint32(0), bank.FlashSize())
	assert.Equal(t, uint32(0), bank.SectorSize())
	assert.Len(t, bank.Sectors(), 0)
	assert.Len(t, bank.ProtectionBlocks(), 0)

	// No transport traffic happened yet.
	assert.Equal(t, 0, m.reads)
}

func TestInfoSPIM(t *testing.T) {
	m := newMockTarget(pidF403_128K, 0, f4xxAperture+efc.SPIMRegisterOffset)
	bank := New(m, efc.SPIMBaseAddress, WithSPIM(0, 1, 1<<20))

	info, err := bank.Info(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "AT32F403CBT6 spim flash size: 0x100000, sector size: 0x1000", info)
}
