package flash

import (
	"context"
	"fmt"

	"github.com/mcuflash/go-at32flash/chip"
	"github.com/mcuflash/go-at32flash/efc"
	"github.com/retroenv/retrogolib/log"
)

// Peripheral registers touched by the serial memory interface bring-up.
const (
	rccAPB2Enable    = 0x40021018
	gpioAConfigHigh  = 0x40010804
	gpioBConfigLow   = 0x40010C00
	gpioBConfigHigh  = 0x40010C04
	afioRemapF403    = 0x4001001C
	afioSelectSPIF   = 0x40010030
	spifRemapEnable  = 1 << 21
	spifSelectValue  = 0x00000009
	gpioClocksEnable = 0xD
)

// resolveGeometry reads the product ID, looks the device up in the
// catalog and computes the sub-bank set for the configured base address.
func (b *Bank) resolveGeometry(ctx context.Context) error {
	pid, err := b.transport.ReadWord(ctx, b.config.ProductIDAddress)
	if err != nil {
		return fmt.Errorf("reading product ID: %w", err)
	}

	desc, err := chip.Lookup(pid)
	if err != nil {
		return err
	}
	b.desc = desc

	switch b.base {
	case efc.SPIMBaseAddress:
		if b.config.SPIM == nil {
			return &ConfigurationError{
				Reason: "serial memory window requires SPIM configuration",
			}
		}
		if err := b.initSPIM(ctx); err != nil {
			return err
		}
	case efc.Bank1BaseAddress:
		if err := b.initMainFlash(); err != nil {
			return err
		}
	default:
		b.logError("invalid flash bank address", log.Hex("address", b.base))
		return &ConfigurationError{
			Reason: fmt.Sprintf("invalid flash bank address 0x%08X", b.base),
		}
	}

	// Assign address ranges and sector counts in address order.
	base := b.base
	first := uint32(0)
	for i := range b.subBanks {
		sb := &b.subBanks[i]
		sb.bank = b
		sb.base = base
		sb.firstSector = first
		sb.sectors = sb.size / b.sectorSize
		if sb.size == 0 {
			continue
		}
		base += sb.size
		first += sb.sectors
		b.logInfo("sub-bank resolved",
			log.Int("index", i),
			log.Int("size_kb", int(sb.size>>10)),
			log.Hex("register_base", sb.regBase),
		)
	}

	return nil
}

// initMainFlash resolves the embedded main array geometry from the
// catalog entry, splitting into two sub-banks above the family capacity
// threshold.
func (b *Bank) initMainFlash() error {
	desc := b.desc

	b.flashSize = desc.FlashSizeKB << 10
	b.sectorSize = desc.SectorSize
	b.usdAddr = desc.Family.OptionByteBase

	split := uint32(efc.SubBankSplit)
	if desc.FlashSizeKB > efc.LargeDeviceKB {
		split = efc.LargeSubBankSplit
	}
	if split > b.flashSize {
		split = b.flashSize
	}

	b.subBanks[0].regBase = desc.Family.RegisterBase
	b.subBanks[0].size = split
	b.subBanks[1].regBase = desc.Family.RegisterBase + efc.SubBank2Offset
	b.subBanks[1].size = b.flashSize - split

	b.logInfo("main flash probed",
		log.String("device", desc.Name()),
		log.Int("size_kb", int(b.flashSize>>10)),
		log.Int("sector_size", int(b.sectorSize)),
	)

	return nil
}

// initSPIM brings up the external serial memory interface: pin
// multiplexing, interface clock and device type selection. Geometry comes
// from the SPIM configuration, not the catalog.
func (b *Bank) initSPIM(ctx context.Context) error {
	spim := b.config.SPIM

	b.sectorSize = efc.SPIMSectorSize
	b.flashSize = spim.FlashSize
	b.subBanks[0].size = spim.FlashSize
	b.subBanks[0].regBase = b.desc.Family.RegisterBase + efc.SPIMRegisterOffset
	b.subBanks[1] = subBank{}

	if err := b.transport.WriteWord(ctx, rccAPB2Enable, gpioClocksEnable); err != nil {
		return err
	}

	// PA8 to alternate function push-pull.
	if err := b.updateWord(ctx, gpioAConfigHigh, 0xF, 0x9); err != nil {
		return err
	}

	// PB1, PB6, PB7.
	if err := b.updateWord(ctx, gpioBConfigLow, 0xFF0000F0, 0x99000090); err != nil {
		return err
	}

	if spim.IOMux != 0 {
		// PB10, PB11.
		if err := b.updateWord(ctx, gpioBConfigHigh, 0x0000FF00, 0x00009900); err != nil {
			return err
		}
	} else {
		// PA11, PA12.
		if err := b.updateWord(ctx, gpioAConfigHigh, 0x000FF000, 0x00099000); err != nil {
			return err
		}
	}

	// Enable the serial flash interface; F403 routes it through the
	// remap register, later families through the pin select register.
	if b.desc.Family == chip.AT32F403 {
		if err := b.transport.WriteWord(ctx, afioRemapF403, spifRemapEnable); err != nil {
			return err
		}
	} else {
		if err := b.transport.WriteWord(ctx, afioSelectSPIF, spifSelectValue); err != nil {
			return err
		}
	}

	if err := b.transport.WriteWord(ctx, efc.SPIMFlashTypeRegister, spim.FlashType); err != nil {
		return err
	}

	b.logInfo("spim flash configured",
		log.String("device", b.desc.Name()),
		log.Hex("size", b.flashSize),
		log.Hex("sector_size", b.sectorSize),
	)

	return nil
}

// updateWord reads a word, clears the clear mask, sets the set mask and
// writes it back.
func (b *Bank) updateWord(ctx context.Context, addr, clear, set uint32) error {
	v, err := b.transport.ReadWord(ctx, addr)
	if err != nil {
		return err
	}
	v &^= clear
	v |= set
	return b.transport.WriteWord(ctx, addr, v)
}
