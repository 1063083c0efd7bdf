// Package cpu implements the 6502-family CPU core: instruction decode,
// addressing modes, cycle accounting, stack, status flags and NMI
// delivery.
package cpu

import (
	"fmt"

	"nesgo/status"
)

// 6502 interrupt vectors.
const (
	VectorNMI   = 0xFFFA
	VectorReset = 0xFFFC
	VectorIRQ   = 0xFFFE
	VectorBRK   = VectorIRQ
)

const stackPage = 0x0100

// Bus is everything the CPU needs from the memory bus. It deliberately
// excludes PPU-specific or cartridge-specific concerns; the bus package
// implements this by routing through RAM, I/O registers, the PPU and the
// cartridge.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
	// PeekBytes returns n bytes starting at addr with no side effects;
	// used only for instruction operand fetch.
	PeekBytes(addr uint16, n int) []uint8
	// Tick advances the bus (and transitively the PPU) by cycles CPU
	// cycles worth of time.
	Tick(cycles int)
	// PollNMI reports and consumes a pending, edge-triggered NMI.
	PollNMI() bool
	// StealCycles reports and consumes any CPU cycles the bus has
	// counted out-of-band (OAM DMA's 513/514-cycle stall). Step adds
	// them to its returned cycle count and to Cycles; they are not
	// passed to Tick, so the PPU does not advance for them.
	StealCycles() int
}

// CPU holds the full register state of a 6502-family processor and
// drives execution via a borrowed Bus.
type CPU struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	P       status.Register
	Cycles  uint64

	bus Bus

	// extraCycles accumulates cycle penalties an operation handler adds
	// beyond the opcode's base cost and addressing-mode page-cross
	// penalty (branch-taken/branch-page-cross).
	extraCycles int

	// instrStart is the address of the opcode byte of the instruction
	// currently executing; JSR and BRK need it to compute their pushed
	// return address.
	instrStart uint16
}

// New constructs a CPU wired to bus. Callers must call Reset before
// running it (mirroring real hardware power-on behavior).
func New(bus Bus) *CPU {
	return &CPU{bus: bus}
}

// Reset puts the CPU into its documented power-on/reset state: A=X=Y=0,
// SP=$FD, P=0x24 (interrupt-disable set, the unused bit always on), PC
// read from the reset vector, and the cycle counter starting at 7 to
// match canonical CPU reset behavior.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = status.FromByte(uint8(status.InterruptDisable | status.Break2))
	c.PC = c.read16(VectorReset)
	c.Cycles = 7
}

// read16 is a little convenience wrapper since Bus itself only exposes
// single-byte reads; kept as a method, not on Bus, so callers of Bus
// never need a 16-bit read in the interface.
func (c *CPU) read16(addr uint16) uint16 {
	lo := c.bus.Read(addr)
	hi := c.bus.Read(addr + 1)
	return littleEndian(lo, hi)
}

// SetPC forces the program counter; used by host tooling (e.g. nestest
// automation mode, which starts execution at $C000).
func (c *CPU) SetPC(pc uint16) {
	c.PC = pc
}

// Step executes exactly one unit of work: servicing a pending NMI if
// one is raised, otherwise decoding and executing the instruction at PC.
// It returns the number of CPU cycles consumed.
func (c *CPU) Step() (int, error) {
	if c.bus.PollNMI() {
		return c.serviceNMI(), nil
	}

	opcodeByte := c.bus.Read(c.PC)
	desc := dispatchTable[opcodeByte]
	if desc == nil {
		return 0, &DecodeError{PC: c.PC, Opcode: opcodeByte}
	}

	c.instrStart = c.PC
	c.PC++
	opBytes := c.bus.PeekBytes(c.PC, int(desc.length)-1)

	op := c.resolveOperand(desc.mode, opBytes, c.PC)

	pcBeforeExec := c.PC
	desc.exec(c, desc.mode, op)

	if c.PC == pcBeforeExec {
		c.PC += uint16(desc.length) - 1
	}

	cycles := int(desc.baseCycles)
	if desc.pageCrossPenalty && op.pageCrossed {
		cycles++
	}
	cycles += c.extraCycles
	c.extraCycles = 0

	c.bus.Tick(cycles)

	total := cycles + c.bus.StealCycles()
	c.Cycles += uint64(total)

	return total, nil
}

// serviceNMI pushes PC and P (break1=0, break2=1), sets the
// interrupt-disable flag, ticks the bus by 2 cycles and vectors through
// $FFFA/$FFFB. NMI is edge-triggered: PollNMI already consumed the
// pending flag.
func (c *CPU) serviceNMI() int {
	c.pushAddress(c.PC)
	p := c.P
	p.Clear(status.Break1)
	p.Set(status.Break2)
	c.pushStack(p.ToByte())
	c.P.Set(status.InterruptDisable)

	const nmiCycles = 2
	c.Cycles += uint64(nmiCycles)
	c.bus.Tick(nmiCycles)

	c.PC = c.read16(VectorNMI)
	return nmiCycles
}

// RunUntilFrame repeatedly steps the CPU until frameDone reports that a
// frame has completed (i.e. the PPU just entered vblank), then returns.
// frameDone is polled after every instruction and should be cheap (a
// flag check), not a blocking call.
func (c *CPU) RunUntilFrame(frameDone func() bool) error {
	for {
		if _, err := c.Step(); err != nil {
			return err
		}
		if frameDone() {
			return nil
		}
	}
}

func (c *CPU) stackAddr() uint16 {
	return stackPage + uint16(c.SP)
}

func (c *CPU) pushStack(v uint8) {
	c.bus.Write(c.stackAddr(), v)
	c.SP--
}

func (c *CPU) popStack() uint8 {
	c.SP++
	return c.bus.Read(c.stackAddr())
}

// pushAddress pushes a 16-bit address high-byte-first.
func (c *CPU) pushAddress(addr uint16) {
	c.pushStack(uint8(addr >> 8))
	c.pushStack(uint8(addr & 0x00FF))
}

// popAddress pulls a 16-bit address low-byte-first.
func (c *CPU) popAddress() uint16 {
	lo := uint16(c.popStack())
	hi := uint16(c.popStack())
	return hi<<8 | lo
}

func (c *CPU) String() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X(%s) SP:%02X PC:%04X CYC:%d",
		c.A, c.X, c.Y, c.P.ToByte(), c.P, c.SP, c.PC, c.Cycles)
}
