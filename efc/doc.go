// Package efc defines the register-level interface of the AT32 embedded
// flash controller (EFC).
//
// It contains the register offsets inside a controller aperture, the
// control and status bit assignments, the unlock key sequence, and the
// operation timeouts. The Status type decodes the controller status
// register.
//
// This package is pure data and pure functions; all actual register
// traffic goes through the flash package and the target transport.
package efc
