// Package nes assembles the CPU, bus and PPU into a runnable machine
// and exposes the small surface a host shell needs: load, reset, run
// one frame, read the framebuffer, feed controller input.
package nes

import (
	"nesgo/bus"
	"nesgo/cartridge"
	"nesgo/cpu"
	"nesgo/ppu"
)

// Machine is a fully wired NES: CPU, bus, PPU and the loaded cartridge.
type Machine struct {
	CPU *cpu.CPU
	bus *bus.Bus

	// Running reports whether the host's run loop should keep calling
	// RunUntilFrame. The host shell owns when to flip it; this is not
	// touched internally except by Stop.
	Running bool
}

// New constructs a Machine around an already-loaded cartridge.
func New(cart *cartridge.Cartridge) *Machine {
	b := bus.New(cart)
	m := &Machine{
		bus:     b,
		Running: true,
	}
	m.CPU = cpu.New(b)
	return m
}

// Reset puts the CPU into its power-on/reset state.
func (m *Machine) Reset() {
	m.CPU.Reset()
}

// RunUntilFrame steps the CPU until the PPU has just finished a frame
// (entered vblank), then returns. Returns any decode error the
// CPU hits along the way.
func (m *Machine) RunUntilFrame() error {
	return m.CPU.RunUntilFrame(m.bus.FrameReady)
}

// Framebuffer returns the PPU's current 256x240 RGB framebuffer.
func (m *Machine) Framebuffer() *[ppu.Width * ppu.Height]ppu.RGB {
	return m.bus.PPU().Framebuffer()
}

// SetButtons updates the live controller-1 button mask (bit 0 = A
// through bit 7 = Right, per the controller package's Button constants).
func (m *Machine) SetButtons(mask uint8) {
	m.bus.SetButtons(mask)
}

// Stop tells the host's run loop to halt gracefully at its next check.
func (m *Machine) Stop() {
	m.Running = false
}
