// Package bus implements the memory bus that routes CPU reads and
// writes to RAM, the PPU's registers, the controller ports and the
// cartridge, applying the mirroring rules each region requires.
package bus

import (
	"nesgo/cartridge"
	"nesgo/controller"
	"nesgo/ppu"
)

const (
	ramSize     = 0x0800
	ramEnd      = 0x1FFF
	ppuRegStart = 0x2000
	ppuRegEnd   = 0x3FFF
	oamDMA      = 0x4014
	controller1 = 0x4016
	controller2 = 0x4017
	ioEnd       = 0x4017
	prgStart    = 0x8000
)

// Bus owns every addressable device in the machine and implements
// cpu.Bus without importing the cpu package, keeping the dependency
// pointed one way: cpu knows nothing about bus, ppu or cartridge.
type Bus struct {
	ram  [ramSize]uint8
	ppu  *ppu.PPU
	cart *cartridge.Cartridge
	pad1 controller.Controller

	dmaStolenCycles int
	oddCycle        bool
}

// New wires a bus to an already-loaded cartridge, constructing its own
// PPU with the cartridge's declared mirroring.
func New(cart *cartridge.Cartridge) *Bus {
	mirroring := ppu.MirrorHorizontal
	if cart.Mirroring() == cartridge.MirrorVertical {
		mirroring = ppu.MirrorVertical
	}

	b := &Bus{cart: cart}
	b.ppu = ppu.New(&chrAdapter{cart: cart}, mirroring)
	return b
}

// chrAdapter lets the PPU read CHR through the cartridge without the
// ppu package needing to know about cartridge.Cartridge directly.
type chrAdapter struct {
	cart *cartridge.Cartridge
}

func (a *chrAdapter) CHRRead(addr uint16) uint8 { return a.cart.CHRRead(addr) }

// PPU exposes the owned PPU for the host shell to pull a framebuffer
// from and for the nes package to drive frame-complete detection.
func (b *Bus) PPU() *ppu.PPU { return b.ppu }

// SetButtons forwards the live controller-1 button mask.
func (b *Bus) SetButtons(mask uint8) { b.pad1.SetButtons(mask) }

func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= ramEnd:
		return b.ram[addr&0x07FF]
	case addr <= ppuRegEnd:
		return b.ppu.ReadRegister(uint8(addr & 0x0007))
	case addr == controller1:
		return b.pad1.Read()
	case addr == controller2:
		return 0 // second controller is out of scope
	case addr <= ioEnd:
		return 0 // APU and remaining I/O registers: unimplemented, read as 0
	case addr >= prgStart:
		return b.cart.PrgRead(addr)
	default:
		return 0 // unmapped expansion/SRAM region
	}
}

func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= ramEnd:
		b.ram[addr&0x07FF] = val
	case addr <= ppuRegEnd:
		b.ppu.WriteRegister(uint8(addr&0x0007), val)
	case addr == oamDMA:
		b.runOAMDMA(val)
	case addr == controller1:
		b.pad1.Write(val)
	case addr <= ioEnd:
		// APU registers: writes are accepted and discarded.
	case addr >= prgStart:
		// PRG-ROM is read-only in this core; cartridge writes are dropped.
	}
}

// runOAMDMA copies 256 bytes starting at val*$100 into OAM. Real
// hardware stalls the CPU for 513 cycles (514 if the DMA starts on an
// odd CPU cycle); this core doesn't model the per-cycle bus conflicts
// that cause the stall, only its cost.
func (b *Bus) runOAMDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.ppu.DMAWrite(b.Read(base + uint16(i)))
	}

	stall := 513
	if b.oddCycle {
		stall = 514
	}
	b.dmaStolenCycles += stall
}

// PeekBytes reads n bytes starting at addr with no side effects other
// than the reads themselves; used only for instruction operand fetch,
// where a PPUDATA/controller read must never be triggered.
func (b *Bus) PeekBytes(addr uint16, n int) []uint8 {
	out := make([]uint8, n)
	for i := 0; i < n; i++ {
		out[i] = b.peek(addr + uint16(i))
	}
	return out
}

// peek reads a byte the same way Read does for RAM and PRG-ROM, but
// never touches PPU/controller registers, which real operand fetches
// never address (opcode and operand bytes always come from PRG space).
func (b *Bus) peek(addr uint16) uint8 {
	switch {
	case addr <= ramEnd:
		return b.ram[addr&0x07FF]
	case addr >= prgStart:
		return b.cart.PrgRead(addr)
	default:
		return 0
	}
}

// Tick advances the PPU by 3 dots per CPU cycle and tracks CPU-cycle
// parity for the OAM DMA stall calculation.
func (b *Bus) Tick(cpuCycles int) {
	b.ppu.Tick(cpuCycles * 3)
	if cpuCycles%2 != 0 {
		b.oddCycle = !b.oddCycle
	}
}

// PollNMI reports and consumes a pending, edge-triggered NMI raised by
// the PPU entering vblank with NMI generation enabled.
func (b *Bus) PollNMI() bool { return b.ppu.PollNMI() }

// StealCycles reports and resets any CPU cycles consumed out-of-band
// by OAM DMA since the last call.
func (b *Bus) StealCycles() int {
	n := b.dmaStolenCycles
	b.dmaStolenCycles = 0
	return n
}

// FrameReady reports and consumes the PPU's "frame complete" signal,
// raised when the PPU enters vblank.
func (b *Bus) FrameReady() bool { return b.ppu.FrameReady() }
