package cpu

// Mode identifies one of the 6502's 13 addressing modes.
type Mode uint8

const (
	Implicit Mode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

// operand is the resolved effective address (or immediate location) for
// one instruction, along with whether resolving it crossed a page
// boundary. Implicit and Accumulator modes carry no address; callers
// that need the accumulator check the mode directly.
type operand struct {
	addr        uint16
	pageCrossed bool
}

// resolveOperand computes the effective address for mode given the raw
// operand bytes following the opcode (peeked, not yet consumed from the
// instruction stream) and the PC value pointing at the first operand
// byte (i.e. one past the opcode).
func (c *CPU) resolveOperand(mode Mode, opBytes []uint8, operandPC uint16) operand {
	switch mode {
	case Immediate:
		return operand{addr: operandPC}
	case ZeroPage:
		return operand{addr: uint16(opBytes[0])}
	case ZeroPageX:
		return operand{addr: uint16(opBytes[0] + c.X)}
	case ZeroPageY:
		return operand{addr: uint16(opBytes[0] + c.Y)}
	case Relative:
		base := operandPC + 1
		target := base + uint16(int8(opBytes[0]))
		return operand{addr: target, pageCrossed: pageDiffers(base, target)}
	case Absolute:
		return operand{addr: littleEndian(opBytes[0], opBytes[1])}
	case AbsoluteX:
		base := littleEndian(opBytes[0], opBytes[1])
		addr := base + uint16(c.X)
		return operand{addr: addr, pageCrossed: pageDiffers(base, addr)}
	case AbsoluteY:
		base := littleEndian(opBytes[0], opBytes[1])
		addr := base + uint16(c.Y)
		return operand{addr: addr, pageCrossed: pageDiffers(base, addr)}
	case Indirect:
		ptr := littleEndian(opBytes[0], opBytes[1])
		return operand{addr: c.read16Bugged(ptr)}
	case IndirectX:
		zp := opBytes[0] + c.X
		lo := c.bus.Read(uint16(zp))
		hi := c.bus.Read(uint16(zp + 1))
		return operand{addr: littleEndian(lo, hi)}
	case IndirectY:
		zp := opBytes[0]
		lo := c.bus.Read(uint16(zp))
		hi := c.bus.Read(uint16(zp + 1))
		base := littleEndian(lo, hi)
		addr := base + uint16(c.Y)
		return operand{addr: addr, pageCrossed: pageDiffers(base, addr)}
	default:
		// Implicit, Accumulator: callers never resolve an address for these.
		return operand{}
	}
}

// read16Bugged reproduces the 6502 indirect-JMP page-wrap bug: when the
// low byte of the pointer is $FF, the high byte is fetched from $xx00 of
// the same page rather than rolling into the next page.
func (c *CPU) read16Bugged(ptr uint16) uint16 {
	lo := c.bus.Read(ptr)
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := c.bus.Read(hiAddr)
	return littleEndian(lo, hi)
}

func littleEndian(lo, hi uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

func pageDiffers(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}
