package flash

import (
	"github.com/mcuflash/go-at32flash/chip"
	"github.com/retroenv/retrogolib/log"
)

// SPIMConfig configures the external serial memory interface mode.
// Only meaningful for a bank constructed at efc.SPIMBaseAddress.
type SPIMConfig struct {
	// IOMux selects the alternate pin multiplexing set when non-zero
	IOMux uint32

	// FlashType is the device type code written to the type select
	// register during bring-up
	FlashType uint32

	// FlashSize is the size of the external flash device in bytes
	FlashSize uint32
}

// Config holds the bank configuration.
type Config struct {
	// Logger receives operation and diagnostic output (optional)
	Logger *log.Logger

	// ProductIDAddress is where the silicon product ID is read from
	ProductIDAddress uint32

	// SPIM enables serial memory interface mode when non-nil
	SPIM *SPIMConfig
}

func defaultConfig() Config {
	return Config{
		ProductIDAddress: chip.ProductIDAddress,
	}
}

// Option is a functional option for configuring a Bank.
type Option func(*Config)

// WithLogger sets the logger for bank operations. Without a logger the
// bank is silent.
//
// Example:
//
//	logger := log.NewWithConfig(log.DefaultConfig())
//	bank := flash.New(t, efc.Bank1BaseAddress, flash.WithLogger(logger))
func WithLogger(logger *log.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithSPIM puts the bank into serial memory interface mode. The bank base
// address must be efc.SPIMBaseAddress; size, flash type code and pin
// multiplexing come from the caller instead of the chip catalog.
//
// Example:
//
//	bank := flash.New(t, efc.SPIMBaseAddress, flash.WithSPIM(0, 2, 4<<20))
func WithSPIM(ioMux, flashType, size uint32) Option {
	return func(c *Config) {
		c.SPIM = &SPIMConfig{
			IOMux:     ioMux,
			FlashType: flashType,
			FlashSize: size,
		}
	}
}

// WithProductIDAddress overrides the address the product ID is read from.
func WithProductIDAddress(addr uint32) Option {
	return func(c *Config) {
		c.ProductIDAddress = addr
	}
}
