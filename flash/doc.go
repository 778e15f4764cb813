// Package flash implements the flash programming engine for Artery AT32
// microcontrollers.
//
// # Overview
//
// A Bank binds one logical flash bank of a target device to a debug
// transport and drives the embedded flash controller through the full
// unlock, erase/program, wait-busy, error-check, lock sequence:
//   - Probing the silicon and resolving the bank geometry, including the
//     two-sub-bank split on large devices
//   - Sector, bank and mass erase
//   - Block writes through an uploaded writer routine, with fallback to
//     single halfword programming when target RAM is scarce
//   - User system data (option byte) management: write protection and
//     access protection
//
// # Basic Usage
//
//	// User provides the debug transport (target.Transport)
//	t := myprobe.Open("...")
//
//	bank := flash.New(t, efc.Bank1BaseAddress)
//	if err := bank.Probe(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	if err := bank.Erase(ctx, 0, 3); err != nil {
//	    log.Fatal(err)
//	}
//	if err := bank.Write(ctx, firmware, 0); err != nil {
//	    log.Fatal(err)
//	}
//
// Probing is implicit: any geometry-dependent operation probes the device
// first if it has not been probed yet.
//
// # Serial Memory Interface
//
// A bank constructed at efc.SPIMBaseAddress addresses an external flash
// device behind the serial memory interface controller and requires the
// WithSPIM option:
//
//	bank := flash.New(t, efc.SPIMBaseAddress,
//	    flash.WithSPIM(0, 2, 4<<20),
//	)
//
// # Error Handling
//
// Operations return typed errors:
//   - ErrNotHalted: the target must be halted first
//   - TimeoutError: the controller stayed busy past the timeout
//   - ProgrammingError: the controller reported program/protection errors
//   - AlignmentError: write offset not halfword aligned
//   - ConfigurationError: unusable bank base address or SPIM setup
//   - target.ErrNoWorkingArea: no target RAM for the option byte block
//     write, which has no halfword fallback
//   - chip.UnknownDeviceError: product ID not in the catalog
//
// Hardware-reported error bits are always logged and cleared before the
// error is returned, so the controller is left in a clean state.
//
// # Concurrency
//
// A Bank is not safe for concurrent use. Every operation is a synchronous
// sequence of register transactions; the only suspension points are the
// bounded busy-wait polls and the writer routine execution.
package flash
