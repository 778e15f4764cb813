package flash

import (
	"context"
	"fmt"

	"github.com/mcuflash/go-at32flash/efc"
	"github.com/retroenv/retrogolib/log"
)

// Erase erases the inclusive sector range [first, last] of the bank. The
// range may span the sub-bank boundary; it is clipped to each sub-bank in
// address order. A range covering the whole bank short-circuits to a mass
// erase.
//
// The target must be halted.
func (b *Bank) Erase(ctx context.Context, first, last uint32) error {
	if err := b.requireHalted(); err != nil {
		return err
	}
	if err := b.autoProbe(ctx); err != nil {
		return err
	}

	b.logInfo("erasing sectors",
		log.Hex("first", first),
		log.Hex("last", last),
	)

	numSectors := uint32(len(b.sectors))
	if first > last || last >= numSectors {
		return &ConfigurationError{
			Reason: fmt.Sprintf("sector range %d..%d outside bank with %d sectors",
				first, last, numSectors),
		}
	}

	if first == 0 && last == numSectors-1 {
		return b.massErase(ctx)
	}

	for i := range b.subBanks {
		sb := &b.subBanks[i]
		if first < sb.sectors {
			l := last
			if l > sb.sectors-1 {
				l = sb.sectors - 1
			}
			if err := b.eraseRange(ctx, sb, first, l); err != nil {
				return err
			}
			if last == l {
				break
			}
			first = 0
		} else {
			first -= sb.sectors
		}
		last -= sb.sectors
	}

	return nil
}

// eraseRange erases the local sector range [first, last] of one sub-bank.
// A range covering the whole sub-bank is turned into a bank erase, which
// has the same electrical effect in far fewer register transactions.
func (b *Bank) eraseRange(ctx context.Context, sb *subBank, first, last uint32) (err error) {
	if first == 0 && last == sb.sectors-1 {
		return b.massEraseSubBank(ctx, sb)
	}

	if err = sb.unlock(ctx); err != nil {
		return err
	}
	defer func() {
		lockErr := sb.lock(ctx)
		if err == nil {
			err = lockErr
		}
	}()

	sectorSize := sb.size / sb.sectors
	for i := first; i <= last; i++ {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = sb.writeReg(ctx, efc.RegCtrl, efc.CtrlSectorErase); err != nil {
			return err
		}
		if err = sb.writeReg(ctx, efc.RegAddr, sb.base+i*sectorSize); err != nil {
			return err
		}
		if err = sb.writeReg(ctx, efc.RegCtrl, efc.CtrlSectorErase|efc.CtrlEraseStart); err != nil {
			return err
		}
		if err = sb.waitBusy(ctx, "sector erase", efc.SectorEraseTimeout); err != nil {
			return err
		}
		b.sectors[sb.firstSector+i].Erased = true
	}

	return nil
}

// MassErase erases the entire bank, every sub-bank independently.
//
// The target must be halted.
func (b *Bank) MassErase(ctx context.Context) error {
	if err := b.requireHalted(); err != nil {
		return err
	}
	if err := b.autoProbe(ctx); err != nil {
		return err
	}
	return b.massErase(ctx)
}

func (b *Bank) massErase(ctx context.Context) error {
	b.logInfo("mass erase", log.Hex("base", b.base))

	for i := range b.subBanks {
		if err := b.massEraseSubBank(ctx, &b.subBanks[i]); err != nil {
			return err
		}
	}
	return nil
}

// massEraseSubBank bank-erases one sub-bank. Zero-size sub-banks (the
// absent second half on small devices and in serial memory mode) are
// skipped.
func (b *Bank) massEraseSubBank(ctx context.Context, sb *subBank) (err error) {
	if sb.size == 0 {
		return nil
	}

	if err = sb.unlock(ctx); err != nil {
		return err
	}
	defer func() {
		lockErr := sb.lock(ctx)
		if err == nil {
			err = lockErr
		}
	}()

	if err = sb.writeReg(ctx, efc.RegCtrl, efc.CtrlBankErase); err != nil {
		return err
	}
	if err = sb.writeReg(ctx, efc.RegCtrl, efc.CtrlBankErase|efc.CtrlEraseStart); err != nil {
		return err
	}
	if err = sb.waitBusy(ctx, "mass erase", efc.MassEraseTimeout); err != nil {
		return err
	}

	for i := sb.firstSector; i < sb.firstSector+sb.sectors; i++ {
		b.sectors[i].Erased = true
	}
	return nil
}
