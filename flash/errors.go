package flash

import (
	"errors"
	"fmt"

	"github.com/mcuflash/go-at32flash/efc"
)

// ErrNotHalted is returned by every mutating operation when the target
// core is not halted. No register writes have been issued.
var ErrNotHalted = errors.New("target not halted")

// TimeoutError indicates that the flash controller stayed busy past the
// operation timeout. The controller may be left in an unlocked state; the
// engine still issues the final lock write on a best-effort basis.
type TimeoutError struct {
	// Op is the operation that timed out
	Op string

	// Timeout is the poll limit in milliseconds
	Timeout int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out waiting for flash after %d ms (%s)", e.Timeout, e.Op)
}

// ProgrammingError indicates that the controller reported error status
// bits after an erase or program operation. The bits have already been
// cleared; the operation's side effect must not be assumed.
type ProgrammingError struct {
	// Device is the chip name the bank probed as
	Device string

	// Address is the last attempted destination, zero when unknown
	Address uint32

	// Status holds the offending status bits
	Status efc.Status
}

func (e *ProgrammingError) Error() string {
	if e.Address != 0 {
		return fmt.Sprintf("%s device programming failed at 0x%08X: %s", e.Device, e.Address, e.Status)
	}
	return fmt.Sprintf("%s device programming failed: %s", e.Device, e.Status)
}

// AlignmentError indicates a write offset that breaks the required 2-byte
// alignment. Offsets are never corrected silently.
type AlignmentError struct {
	Offset uint32
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("offset 0x%X breaks required 2-byte alignment", e.Offset)
}

// ConfigurationError indicates unusable bank construction parameters,
// such as a base address that matches neither the main flash array nor
// the serial memory window.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}
