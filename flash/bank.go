package flash

import (
	"context"
	"fmt"

	"github.com/mcuflash/go-at32flash/chip"
	"github.com/mcuflash/go-at32flash/efc"
	"github.com/mcuflash/go-at32flash/target"
	"github.com/retroenv/retrogolib/log"
)

// Sector describes one erase sector of the logical bank.
type Sector struct {
	// Offset is the sector start relative to the bank base address
	Offset uint32

	// Size is the sector size in bytes
	Size uint32

	// Erased is set after the sector has been erased by this engine
	Erased bool
}

// ProtectionBlock describes one unit of the write protection bitmap.
// A block normally covers efc.ProtectionBlockSize bytes; the final block
// absorbs the remainder on devices with more capacity than the bitmap
// can address.
type ProtectionBlock struct {
	// Offset is the block start relative to the bank base address
	Offset uint32

	// Size is the block size in bytes
	Size uint32

	// Protected reflects the last protection status read
	Protected bool
}

// Bank is the programming engine for one logical flash bank. All bank
// state lives here; create one Bank per flash bank of the target.
//
// Bank is not safe for concurrent use.
type Bank struct {
	transport target.Transport
	base      uint32
	config    Config

	probed     bool
	desc       *chip.Descriptor
	flashSize  uint32
	sectorSize uint32
	usdAddr    uint32
	subBanks   [2]subBank
	sectors    []Sector
	protBlocks []ProtectionBlock
}

// New creates a Bank for the flash array at baseAddress, driven through
// the given transport.
//
// Example:
//
//	bank := flash.New(t, efc.Bank1BaseAddress,
//	    flash.WithLogger(logger),
//	)
func New(t target.Transport, baseAddress uint32, opts ...Option) *Bank {
	if t == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Bank{
		transport: t,
		base:      baseAddress,
		config:    cfg,
	}
}

// Probe identifies the silicon, resolves the bank geometry and builds the
// sector and protection block arrays. Probing an already probed bank is a
// no-op; all other operations probe implicitly when needed.
func (b *Bank) Probe(ctx context.Context) error {
	if b.probed {
		return nil
	}

	if err := b.resolveGeometry(ctx); err != nil {
		return err
	}

	numSectors := b.flashSize / b.sectorSize
	b.sectors = make([]Sector, numSectors)
	for i := range b.sectors {
		b.sectors[i] = Sector{
			Offset: uint32(i) * b.sectorSize,
			Size:   b.sectorSize,
		}
	}

	numBlocks := (b.flashSize + efc.ProtectionBlockSize - 1) / efc.ProtectionBlockSize
	if numBlocks > efc.ProtectionBlockCount {
		numBlocks = efc.ProtectionBlockCount
	}
	b.protBlocks = make([]ProtectionBlock, numBlocks)
	for i := range b.protBlocks {
		b.protBlocks[i] = ProtectionBlock{
			Offset: uint32(i) * efc.ProtectionBlockSize,
			Size:   efc.ProtectionBlockSize,
		}
	}
	if numBlocks == efc.ProtectionBlockCount {
		// The last block absorbs every sector past the bitmap range.
		covered := uint32(efc.ProtectionBlockCount-1) * efc.ProtectionBlockSize
		b.protBlocks[numBlocks-1].Size = b.flashSize - covered
	}

	b.probed = true
	return nil
}

// autoProbe runs before every geometry-dependent operation.
func (b *Bank) autoProbe(ctx context.Context) error {
	return b.Probe(ctx)
}

// requireHalted checks the target state before any mutating operation.
func (b *Bank) requireHalted() error {
	if b.transport.State() != target.StateHalted {
		b.logError("target not halted")
		return ErrNotHalted
	}
	return nil
}

// BaseAddress returns the bank base in the flash address space.
func (b *Bank) BaseAddress() uint32 { return b.base }

// Descriptor returns the probed chip descriptor, nil before probing.
func (b *Bank) Descriptor() *chip.Descriptor { return b.desc }

// FlashSize returns the total bank size in bytes, zero before probing.
func (b *Bank) FlashSize() uint32 { return b.flashSize }

// SectorSize returns the erase sector size, zero before probing.
func (b *Bank) SectorSize() uint32 { return b.sectorSize }

// Sectors returns the sector array of the bank.
func (b *Bank) Sectors() []Sector { return b.sectors }

// ProtectionBlocks returns the protection block array of the bank.
func (b *Bank) ProtectionBlocks() []ProtectionBlock { return b.protBlocks }

// Info probes the bank if necessary and returns a one-line summary of the
// device and its geometry.
func (b *Bank) Info(ctx context.Context) (string, error) {
	if err := b.autoProbe(ctx); err != nil {
		return "", err
	}
	if b.config.SPIM != nil {
		return fmt.Sprintf("%s spim flash size: 0x%X, sector size: 0x%X",
			b.desc.Name(), b.flashSize, b.sectorSize), nil
	}
	return fmt.Sprintf("%s: main flash size: %dkB, sector size: %d",
		b.desc.Name(), b.flashSize>>10, b.sectorSize), nil
}

// deviceName is safe to call before a successful probe.
func (b *Bank) deviceName() string {
	if b.desc == nil {
		return "at32"
	}
	return b.desc.Name()
}

func (b *Bank) logDebug(msg string, fields ...log.Field) {
	if b.config.Logger != nil {
		b.config.Logger.Debug(msg, fields...)
	}
}

func (b *Bank) logInfo(msg string, fields ...log.Field) {
	if b.config.Logger != nil {
		b.config.Logger.Info(msg, fields...)
	}
}

func (b *Bank) logWarn(msg string, fields ...log.Field) {
	if b.config.Logger != nil {
		b.config.Logger.Warn(msg, fields...)
	}
}

func (b *Bank) logError(msg string, fields ...log.Field) {
	if b.config.Logger != nil {
		b.config.Logger.Error(msg, fields...)
	}
}
