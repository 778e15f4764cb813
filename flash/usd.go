package flash

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/mcuflash/go-at32flash/efc"
	"github.com/mcuflash/go-at32flash/target"
	"github.com/retroenv/retrogolib/log"
)

// OptionBytes is the user system data record: a small fixed-layout
// non-volatile block holding access protection, boot configuration and
// the sector write protection bitmap. Like the main array it can only be
// changed through an erase/reprogram cycle, so the engine re-reads it at
// the start of every mutation and never caches it.
type OptionBytes struct {
	// FAP is the flash access protection byte
	FAP uint8

	// SSB is the system setting byte
	SSB uint8

	// Data is the user data word
	Data uint16

	// Protection is the sector write protection bitmap, one bit per
	// protection block, active low
	Protection uint32
}

// readUSD unpacks the option byte record from its four-word region. Each
// word interleaves a value byte with its complement; only the value bytes
// are kept.
func (b *Bank) readUSD(ctx context.Context) (OptionBytes, error) {
	var usd OptionBytes

	w, err := b.transport.ReadWord(ctx, b.usdAddr)
	if err != nil {
		return usd, err
	}
	usd.FAP = uint8(w & 0xFF)
	usd.SSB = uint8((w >> 16) & 0xFF)

	w, err = b.transport.ReadWord(ctx, b.usdAddr+4)
	if err != nil {
		return usd, err
	}
	usd.Data = uint16((w>>8)&0xFF00 | w&0xFF)

	w, err = b.transport.ReadWord(ctx, b.usdAddr+8)
	if err != nil {
		return usd, err
	}
	usd.Protection = (w>>8)&0xFF00 | w&0xFF

	w, err = b.transport.ReadWord(ctx, b.usdAddr+12)
	if err != nil {
		return usd, err
	}
	usd.Protection |= ((w>>8)&0xFF00 | w&0xFF) << 16

	return usd, nil
}

// eraseUSD reads the current option byte record, then erases the option
// byte page. The returned record is the caller's working copy for the
// following writeUSD. Option bytes are not banked; this always operates
// on sub-bank 0.
func (b *Bank) eraseUSD(ctx context.Context) (OptionBytes, error) {
	usd, err := b.readUSD(ctx)
	if err != nil {
		return usd, err
	}

	sb := &b.subBanks[0]
	if err := sb.unlock(ctx); err != nil {
		return usd, err
	}
	if err := sb.unlockUSD(ctx); err != nil {
		return usd, err
	}

	op := uint32(efc.CtrlUSDErase | efc.CtrlUSDUnlocked)
	if err := sb.writeReg(ctx, efc.RegCtrl, op); err != nil {
		return usd, err
	}
	if err := sb.writeReg(ctx, efc.RegCtrl, op|efc.CtrlEraseStart); err != nil {
		return usd, err
	}
	if err := sb.waitBusy(ctx, "option byte erase", efc.SectorEraseTimeout); err != nil {
		return usd, err
	}

	return usd, nil
}

// writeUSD reprograms the full option byte record. Each record byte is
// staged as the low byte of one halfword; the controller generates the
// complement bytes itself.
func (b *Bank) writeUSD(ctx context.Context, usd OptionBytes) error {
	sb := &b.subBanks[0]

	if err := sb.unlock(ctx); err != nil {
		return err
	}
	if err := sb.unlockUSD(ctx); err != nil {
		return err
	}
	if err := sb.writeReg(ctx, efc.RegCtrl, efc.CtrlUSDProgram|efc.CtrlUSDUnlocked); err != nil {
		return err
	}

	staged := make([]byte, efc.USDHalfwords*2)
	binary.LittleEndian.PutUint16(staged[0:], uint16(usd.FAP))
	binary.LittleEndian.PutUint16(staged[2:], uint16(usd.SSB))
	binary.LittleEndian.PutUint16(staged[4:], uint16(usd.Data&0xFF))
	binary.LittleEndian.PutUint16(staged[6:], uint16(usd.Data>>8)&0xFF)
	binary.LittleEndian.PutUint16(staged[8:], uint16(usd.Protection&0xFF))
	binary.LittleEndian.PutUint16(staged[10:], uint16(usd.Protection>>8)&0xFF)
	binary.LittleEndian.PutUint16(staged[12:], uint16(usd.Protection>>16)&0xFF)
	binary.LittleEndian.PutUint16(staged[14:], uint16(usd.Protection>>24)&0xFF)

	if err := b.writeBlock(ctx, sb, staged, b.usdAddr, efc.USDHalfwords); err != nil {
		if errors.Is(err, target.ErrNoWorkingArea) {
			b.logError("working area required to program option bytes")
		}
		return err
	}

	return sb.lock(ctx)
}

// Protect enables or disables write protection for the inclusive
// protection block range [first, last]. The protection bitmap is active
// low: enabling protection clears bits, disabling sets them. The change
// takes effect on the next system reset of the target.
//
// The target must be halted.
func (b *Bank) Protect(ctx context.Context, enable bool, first, last uint32) error {
	if err := b.requireHalted(); err != nil {
		return err
	}
	if err := b.autoProbe(ctx); err != nil {
		return err
	}

	if first > last || last >= uint32(len(b.protBlocks)) {
		return &ConfigurationError{
			Reason: fmt.Sprintf("protection block range %d..%d outside bank with %d blocks",
				first, last, len(b.protBlocks)),
		}
	}

	usd, err := b.eraseUSD(ctx)
	if err != nil {
		b.logError("failed to erase option bytes",
			log.String("device", b.deviceName()),
			log.Err(err),
		)
		return err
	}

	for i := first; i <= last; i++ {
		if enable {
			usd.Protection &^= 1 << i
		} else {
			usd.Protection |= 1 << i
		}
	}

	return b.writeUSD(ctx, usd)
}

// ProtectionStatus reads the controller's protection status register and
// returns the protection block array with refreshed Protected flags.
func (b *Bank) ProtectionStatus(ctx context.Context) ([]ProtectionBlock, error) {
	if err := b.autoProbe(ctx); err != nil {
		return nil, err
	}

	v, err := b.subBanks[0].readReg(ctx, efc.RegEPPS)
	if err != nil {
		return nil, err
	}

	for i := range b.protBlocks {
		b.protBlocks[i].Protected = v&(1<<i) == 0
	}
	return b.protBlocks, nil
}

// DisableAccessProtection removes flash access protection by erasing the
// option bytes and reprogramming them with the FAP byte set to the
// disable value. The target performs the actual unprotection (including
// the implied mass erase) on its next reset.
//
// Failures of the erase or write step are logged but not returned; the
// option bytes are then left in the erased state.
//
// The target must be halted.
func (b *Bank) DisableAccessProtection(ctx context.Context) error {
	if err := b.requireHalted(); err != nil {
		return err
	}
	if err := b.autoProbe(ctx); err != nil {
		return err
	}

	usd, err := b.eraseUSD(ctx)
	if err != nil {
		b.logError("failed to erase user system data", log.Err(err))
		return nil
	}

	usd.FAP = efc.USDDisableFAP
	if err := b.writeUSD(ctx, usd); err != nil {
		b.logError("failed to write user system data", log.Err(err))
		return nil
	}

	b.logInfo("disable access protection complete",
		log.String("device", b.deviceName()),
	)
	return nil
}
