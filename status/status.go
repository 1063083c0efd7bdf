// Package status implements the 6502 processor status register as a
// single byte with bit-level accessors.
package status

import "strings"

// Flag is a single bit of the processor status register.
type Flag uint8

// https://www.nesdev.org/obelisk-6502-guide/registers.html
const (
	Carry            Flag = 1 << 0 // C
	Zero             Flag = 1 << 1 // Z
	InterruptDisable Flag = 1 << 2 // I
	Decimal          Flag = 1 << 3 // D
	Break1           Flag = 1 << 4 // B (software break)
	Break2           Flag = 1 << 5 // unused, always pushed as 1
	Overflow         Flag = 1 << 6 // V
	Negative         Flag = 1 << 7 // N
)

// Register holds the eight processor flags.
type Register struct {
	bits uint8
}

// FromByte builds a Register from a raw status byte.
func FromByte(b uint8) Register {
	return Register{bits: b}
}

// ToByte returns the raw status byte.
func (r Register) ToByte() uint8 {
	return r.bits
}

// Has reports whether every bit in f is set.
func (r Register) Has(f Flag) bool {
	return r.bits&uint8(f) == uint8(f)
}

// Set forces the bits in f on.
func (r *Register) Set(f Flag) {
	r.bits |= uint8(f)
}

// Clear forces the bits in f off.
func (r *Register) Clear(f Flag) {
	r.bits &^= uint8(f)
}

// Assign sets or clears f depending on cond.
func (r *Register) Assign(f Flag, cond bool) {
	if cond {
		r.Set(f)
	} else {
		r.Clear(f)
	}
}

// SetZN sets the Zero and Negative flags from the low 8 bits of v.
func (r *Register) SetZN(v uint8) {
	r.Assign(Zero, v == 0)
	r.Assign(Negative, v&0x80 != 0)
}

var names = [8]struct {
	f Flag
	c byte
}{
	{Negative, 'N'},
	{Overflow, 'V'},
	{Break2, '-'},
	{Break1, 'B'},
	{Decimal, 'D'},
	{InterruptDisable, 'I'},
	{Zero, 'Z'},
	{Carry, 'C'},
}

// String renders the flags in NV-BDIZC order, matching nestest-style traces.
func (r Register) String() string {
	var sb strings.Builder
	for _, n := range names {
		if r.Has(n.f) {
			sb.WriteByte(n.c)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
