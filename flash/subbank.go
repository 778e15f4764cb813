package flash

import (
	"context"
	"time"

	"github.com/mcuflash/go-at32flash/efc"
	"github.com/retroenv/retrogolib/log"
)

// subBank is one independently addressed half of the logical bank, with
// its own controller register aperture. Small devices use a single
// sub-bank; the second entry then has size zero.
type subBank struct {
	bank *Bank

	// regBase is the absolute controller aperture for this sub-bank
	regBase uint32

	// base is the sub-bank start in the flash address space
	base uint32

	// size is the sub-bank size in bytes
	size uint32

	// sectors is the number of erase sectors in this sub-bank
	sectors uint32

	// firstSector is the bank-global index of the first local sector
	firstSector uint32
}

func (sb *subBank) regAddr(offset uint32) uint32 {
	return sb.regBase + offset
}

func (sb *subBank) readReg(ctx context.Context, offset uint32) (uint32, error) {
	return sb.bank.transport.ReadWord(ctx, sb.regAddr(offset))
}

func (sb *subBank) writeReg(ctx context.Context, offset, value uint32) error {
	return sb.bank.transport.WriteWord(ctx, sb.regAddr(offset), value)
}

// unlock opens the main array write path with the two-word key sequence.
func (sb *subBank) unlock(ctx context.Context) error {
	if err := sb.writeReg(ctx, efc.RegUnlock, efc.UnlockKey1); err != nil {
		return err
	}
	return sb.writeReg(ctx, efc.RegUnlock, efc.UnlockKey2)
}

// unlockUSD opens the user system data write path. The main array unlock
// must already have been issued.
func (sb *subBank) unlockUSD(ctx context.Context) error {
	if err := sb.writeReg(ctx, efc.RegUSDUnlock, efc.UnlockKey1); err != nil {
		return err
	}
	return sb.writeReg(ctx, efc.RegUSDUnlock, efc.UnlockKey2)
}

// lock relocks the controller. Issued unconditionally at the end of every
// erase and write sequence so the device is never left unlocked.
func (sb *subBank) lock(ctx context.Context) error {
	return sb.writeReg(ctx, efc.RegCtrl, efc.CtrlLock)
}

// waitBusy polls the status register until the busy flag clears, sleeping
// one millisecond between polls up to timeoutMS. Error bits observed
// after busy clears are logged, written back to clear them, and reported
// as a ProgrammingError.
func (sb *subBank) waitBusy(ctx context.Context, op string, timeoutMS int) error {
	b := sb.bank

	var status efc.Status
	for remaining := timeoutMS; ; remaining-- {
		v, err := sb.readReg(ctx, efc.RegStatus)
		if err != nil {
			return err
		}
		status = efc.Status(v)
		b.logDebug("flash status", log.Hex("status", v))
		if !status.Busy() {
			break
		}
		if remaining <= 0 {
			b.logError("timed out waiting for flash",
				log.String("op", op),
				log.Int("timeout_ms", timeoutMS),
			)
			return &TimeoutError{Op: op, Timeout: timeoutMS}
		}
		time.Sleep(time.Millisecond)
	}

	if status.Err() {
		b.logError("device programming failed",
			log.String("device", b.deviceName()),
			log.String("status", status.String()),
		)
		// Clear but report the errors.
		_ = sb.writeReg(ctx, efc.RegStatus, status.ErrorBits())
		return &ProgrammingError{Device: b.deviceName(), Status: status}
	}

	return nil
}
