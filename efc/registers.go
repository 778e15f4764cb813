package efc

import "fmt"

// Register offsets within a flash controller aperture.
const (
	// RegPSR is the performance select register
	RegPSR = 0x00

	// RegUnlock is the main array unlock key register
	RegUnlock = 0x04

	// RegUSDUnlock is the user system data unlock key register
	RegUSDUnlock = 0x08

	// RegStatus is the operation status register
	RegStatus = 0x0C

	// RegCtrl is the operation control register
	RegCtrl = 0x10

	// RegAddr is the erase target address register
	RegAddr = 0x14

	// RegUSD is the user system data read-out register
	RegUSD = 0x1C

	// RegEPPS is the erase/program protection status register
	RegEPPS = 0x20

	// RegEPPS1 is the second protection status register (large devices)
	RegEPPS1 = 0x2C
)

// Control register bits.
const (
	// CtrlProgram selects halfword programming mode
	CtrlProgram = 1 << 0

	// CtrlSectorErase selects single sector erase
	CtrlSectorErase = 1 << 1

	// CtrlBankErase selects whole bank (mass) erase
	CtrlBankErase = 1 << 2

	// CtrlUSDProgram selects user system data programming
	CtrlUSDProgram = 1 << 4

	// CtrlUSDErase selects user system data erase
	CtrlUSDErase = 1 << 5

	// CtrlEraseStart starts the selected erase operation
	CtrlEraseStart = 1 << 6

	// CtrlLock relocks the controller; always written at the end of a
	// sequence regardless of its outcome
	CtrlLock = 1 << 7

	// CtrlUSDUnlocked reflects/holds the user system data unlock state
	CtrlUSDUnlocked = 1 << 9
)

// Status register bits. Error bits use write-1-to-clear semantics.
const (
	// StatusBusy is set while an erase or program operation is running
	StatusBusy = 1 << 0

	// StatusProgramError reports a programming failure (e.g. not erased)
	StatusProgramError = 1 << 2

	// StatusProtectError reports an erase/program protection violation
	StatusProtectError = 1 << 4

	// StatusDone is set when the last operation completed
	StatusDone = 1 << 5

	// StatusErrorMask covers all error bits
	StatusErrorMask = StatusProgramError | StatusProtectError
)

// Unlock key sequence, written twice in order to RegUnlock or RegUSDUnlock.
const (
	UnlockKey1 = 0x45670123
	UnlockKey2 = 0xCDEF89AB
)

// Operation timeouts in milliseconds. The busy-wait loop polls the status
// register once per millisecond up to the timeout.
const (
	// WriteTimeout bounds a block write status poll
	WriteTimeout = 100

	// HalfwordTimeout bounds a single halfword program in the slow path
	HalfwordTimeout = 5

	// SectorEraseTimeout bounds a single sector or option byte erase
	SectorEraseTimeout = 1000

	// MassEraseTimeout bounds a whole-bank erase
	MassEraseTimeout = 120000
)

// Address space and geometry constants.
const (
	// Bank1BaseAddress is where the main flash array is mapped
	Bank1BaseAddress = 0x08000000

	// SPIMBaseAddress is the external serial memory interface window
	SPIMBaseAddress = 0x08400000

	// SubBankSplit is the first sub-bank capacity for devices up to
	// LargeDeviceKB of flash
	SubBankSplit = 512 << 10

	// LargeSubBankSplit is the first sub-bank capacity for devices above
	// LargeDeviceKB of flash
	LargeSubBankSplit = 2 << 20

	// LargeDeviceKB is the flash size above which LargeSubBankSplit applies
	LargeDeviceKB = 1024

	// SubBank2Offset separates the second sub-bank aperture from the first
	SubBank2Offset = 0x40

	// SPIMRegisterOffset separates the serial memory controller aperture
	// from the main flash controller aperture
	SPIMRegisterOffset = 0x80

	// SPIMSectorSize is the erase sector size of serial memory flash
	SPIMSectorSize = 4096

	// SPIMFlashTypeRegister selects the attached serial flash device type
	SPIMFlashTypeRegister = 0x40022088
)

// User system data layout.
const (
	// USDHalfwords is the number of programmed halfwords in the record
	USDHalfwords = 8

	// USDDisableFAP is the access protection byte value that disables
	// flash access protection
	USDDisableFAP = 0xA5

	// ProtectionBlockCount is the width of the sector protection bitmap
	ProtectionBlockCount = 32

	// ProtectionBlockSize is the address range covered by one protection
	// bit (two 2 KiB sectors); the final block absorbs any remainder
	ProtectionBlockSize = 4096
)

// Status is a snapshot of the controller status register.
type Status uint32

// Busy reports whether an operation is still running.
func (s Status) Busy() bool { return s&StatusBusy != 0 }

// Err reports whether any error bit is set.
func (s Status) Err() bool { return s&StatusErrorMask != 0 }

// ErrorBits returns only the error bits, suitable for write-1-to-clear.
func (s Status) ErrorBits() uint32 { return uint32(s) & StatusErrorMask }

func (s Status) String() string {
	switch {
	case s&StatusProgramError != 0 && s&StatusProtectError != 0:
		return fmt.Sprintf("status 0x%08X (program error, protection error)", uint32(s))
	case s&StatusProgramError != 0:
		return fmt.Sprintf("status 0x%08X (program error)", uint32(s))
	case s&StatusProtectError != 0:
		return fmt.Sprintf("status 0x%08X (protection error)", uint32(s))
	case s.Busy():
		return fmt.Sprintf("status 0x%08X (busy)", uint32(s))
	default:
		return fmt.Sprintf("status 0x%08X", uint32(s))
	}
}
