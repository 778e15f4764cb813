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

// Write block allocation bounds: the staging buffer starts at
// stagingBufferSize and is halved on allocation failure down to the
// floor, kept 4-byte aligned.
const (
	stagingBufferSize  = 16384
	stagingBufferFloor = 256
)

// Write programs data at the given byte offset into the bank. The offset
// must be 2-byte aligned; an odd number of bytes is padded with a single
// 0xFF on an internal copy, the caller's buffer is never modified. Writes
// spanning the sub-bank boundary are split and each piece is programmed
// through that sub-bank's controller aperture.
//
// Each piece first attempts a block write through the writer routine
// uploaded into target RAM and falls back to single halfword programming
// when no working area can be reserved.
//
// The target must be halted and the destination range erased.
func (b *Bank) Write(ctx context.Context, data []byte, offset uint32) error {
	if err := b.requireHalted(); err != nil {
		return err
	}
	if err := b.autoProbe(ctx); err != nil {
		return err
	}

	b.logInfo("writing flash",
		log.Hex("address", b.base+offset),
		log.Hex("count", uint32(len(data))),
	)

	if offset&1 != 0 {
		b.logError("write offset not halfword aligned", log.Hex("offset", offset))
		return &AlignmentError{Offset: offset}
	}

	if len(data)&1 != 0 {
		b.logInfo("odd number of bytes to write, padding with 0xff")
		padded := make([]byte, len(data)+1)
		copy(padded, data)
		padded[len(data)] = 0xFF
		data = padded
	}

	// Checked without adding, so huge offsets cannot wrap around.
	if offset > b.flashSize || uint32(len(data)) > b.flashSize-offset {
		return &ConfigurationError{
			Reason: fmt.Sprintf("write of %d bytes at offset 0x%X exceeds bank size 0x%X",
				len(data), offset, b.flashSize),
		}
	}

	count := uint32(len(data))
	for i := range b.subBanks {
		sb := &b.subBanks[i]
		if count == 0 {
			break
		}
		if offset >= sb.size {
			offset -= sb.size
			continue
		}
		c := sb.size - offset
		if c > count {
			c = count
		}
		if err := b.writeSubBank(ctx, sb, data[:c], offset); err != nil {
			return err
		}
		data = data[c:]
		count -= c
		offset = 0
	}

	return nil
}

// writeSubBank programs one contiguous piece inside a single sub-bank:
// unlock, program mode, block write with halfword fallback, lock. The
// lock write is issued on every exit path; its failure never masks an
// earlier one.
func (b *Bank) writeSubBank(ctx context.Context, sb *subBank, data []byte, offset uint32) (err error) {
	if err = sb.unlock(ctx); err != nil {
		return err
	}
	defer func() {
		lockErr := sb.lock(ctx)
		if err == nil {
			err = lockErr
		}
	}()

	if err = sb.writeReg(ctx, efc.RegCtrl, efc.CtrlProgram); err != nil {
		return err
	}

	halfwords := uint32(len(data)) / 2
	err = b.writeBlock(ctx, sb, data, sb.base+offset, halfwords)
	if !errors.Is(err, target.ErrNoWorkingArea) {
		return err
	}

	// No room for the writer routine or its staging buffer; program one
	// halfword at a time through the transport.
	b.logWarn("couldn't use block writes, falling back to single memory accesses")

	address := sb.base + offset
	for i := uint32(0); i < halfwords; i++ {
		value := binary.LittleEndian.Uint16(data[i*2:])
		if err = b.transport.WriteHalfword(ctx, address, value); err != nil {
			return err
		}
		if err = sb.waitBusy(ctx, "halfword program", efc.HalfwordTimeout); err != nil {
			return err
		}
		address += 2
	}

	return nil
}

// writeBlock uploads the flash writer routine into a reserved working
// area, reserves a staging buffer (halving on failure down to the floor)
// and runs the routine over the data. Returns target.ErrNoWorkingArea
// when either reservation fails, so the caller can fall back.
func (b *Bank) writeBlock(ctx context.Context, sb *subBank, data []byte, address, halfwords uint32) error {
	code := b.transport.FlashWriterCode()

	writer, err := b.transport.AllocWorkingArea(uint32(len(code)))
	if err != nil {
		b.logWarn("no working area available, can't do block memory writes")
		return err
	}
	defer b.transport.FreeWorkingArea(writer)

	if err := b.transport.WriteBuffer(ctx, writer.Address, code); err != nil {
		return err
	}

	bufferSize := uint32(stagingBufferSize)
	var staging *target.WorkingArea
	for {
		staging, err = b.transport.AllocWorkingArea(bufferSize)
		if err == nil {
			break
		}
		bufferSize /= 2
		bufferSize &^= 3
		if bufferSize <= stagingBufferFloor {
			b.logWarn("no large enough working area available, can't do block memory writes")
			return err
		}
	}
	defer b.transport.FreeWorkingArea(staging)

	result, err := b.transport.RunFlashWriter(ctx, target.FlashWriterCall{
		CodeAddress:   writer.Address,
		RegisterBase:  sb.regBase,
		HalfwordCount: halfwords,
		BufferStart:   staging.Address,
		BufferEnd:     staging.Address + staging.Size,
		Address:       address,
		Data:          data,
	})
	if err != nil {
		return err
	}

	if result.Failed {
		b.logError("flash write failed", log.Hex("address", result.Address))

		// Clear but report the errors.
		if result.Status&efc.StatusProgramError != 0 {
			b.logError("flash memory not erased before writing")
			_ = sb.writeReg(ctx, efc.RegStatus, efc.StatusProgramError)
		}
		if result.Status&efc.StatusProtectError != 0 {
			b.logError("flash memory write protected")
			_ = sb.writeReg(ctx, efc.RegStatus, efc.StatusProtectError)
		}

		return &ProgrammingError{
			Device:  b.deviceName(),
			Address: result.Address,
			Status:  result.Status,
		}
	}

	return nil
}
