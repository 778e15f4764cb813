// Package chip contains the catalog of known Artery AT32 devices.
//
// Each device is identified by the 32-bit product ID read from the DBGMCU
// peripheral and maps to its flash geometry (total size and sector size)
// and the register layout of its embedded flash controller.
//
// The same product ID can appear multiple times in the catalog for
// different mechanical packages of the same silicon; all fields relevant
// to flash programming are identical across packages, so Lookup returns
// the first match.
package chip
