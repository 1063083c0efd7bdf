package cpu

import (
	"fmt"

	"nesgo/status"
)

// execFunc implements one opcode given its resolved operand.
type execFunc func(c *CPU, mode Mode, op operand)

// opDesc is one entry of the 256-entry dispatch table: mnemonic,
// addressing mode, instruction length in bytes, base cycle cost,
// whether a page-cross adds a cycle, and the operation itself.
type opDesc struct {
	mnemonic         string
	mode             Mode
	length           uint8
	baseCycles       uint8
	pageCrossPenalty bool
	exec             execFunc
}

var dispatchTable [256]*opDesc

func reg(code uint8, mnemonic string, mode Mode, length, cycles uint8, pageCross bool, exec execFunc) {
	if dispatchTable[code] != nil {
		panic(fmt.Sprintf("opcode $%02X already registered for %s", code, dispatchTable[code].mnemonic))
	}
	dispatchTable[code] = &opDesc{
		mnemonic:         mnemonic,
		mode:             mode,
		length:           length,
		baseCycles:       cycles,
		pageCrossPenalty: pageCross,
		exec:             exec,
	}
}

// --- operand helpers -------------------------------------------------

func (c *CPU) loadOperand(mode Mode, op operand) uint8 {
	if mode == Accumulator {
		return c.A
	}
	return c.bus.Read(op.addr)
}

func (c *CPU) storeOperand(mode Mode, op operand, v uint8) {
	if mode == Accumulator {
		c.A = v
		return
	}
	c.bus.Write(op.addr, v)
}

func (c *CPU) compare(reg, m uint8) {
	c.P.Assign(status.Carry, reg >= m)
	c.P.SetZN(reg - m)
}

// adcValue implements the shared ADC/SBC arithmetic: SBC is ADC with
// the operand bitwise complemented.
func (c *CPU) adcValue(m uint8) {
	a := c.A
	var carryIn uint16
	if c.P.Has(status.Carry) {
		carryIn = 1
	}
	sum := uint16(a) + uint16(m) + carryIn
	result := uint8(sum)

	c.P.Assign(status.Carry, sum > 0xFF)
	c.P.Assign(status.Overflow, (^(a^m)&(a^result)&0x80) != 0)

	c.A = result
	c.P.SetZN(c.A)
}

func (c *CPU) branch(taken bool, op operand) {
	if !taken {
		return
	}
	c.extraCycles++
	if op.pageCrossed {
		c.extraCycles++
	}
	c.PC = op.addr
}

// --- official operations ----------------------------------------------

func opADC(c *CPU, mode Mode, op operand) { c.adcValue(c.loadOperand(mode, op)) }
func opSBC(c *CPU, mode Mode, op operand) { c.adcValue(^c.loadOperand(mode, op)) }

func opAND(c *CPU, mode Mode, op operand) {
	c.A &= c.loadOperand(mode, op)
	c.P.SetZN(c.A)
}

func opASL(c *CPU, mode Mode, op operand) {
	old := c.loadOperand(mode, op)
	new := old << 1
	c.storeOperand(mode, op, new)
	c.P.Assign(status.Carry, old&0x80 != 0)
	c.P.SetZN(new)
}

func opBCC(c *CPU, mode Mode, op operand) { c.branch(!c.P.Has(status.Carry), op) }
func opBCS(c *CPU, mode Mode, op operand) { c.branch(c.P.Has(status.Carry), op) }
func opBEQ(c *CPU, mode Mode, op operand) { c.branch(c.P.Has(status.Zero), op) }
func opBMI(c *CPU, mode Mode, op operand) { c.branch(c.P.Has(status.Negative), op) }
func opBNE(c *CPU, mode Mode, op operand) { c.branch(!c.P.Has(status.Zero), op) }
func opBPL(c *CPU, mode Mode, op operand) { c.branch(!c.P.Has(status.Negative), op) }
func opBVC(c *CPU, mode Mode, op operand) { c.branch(!c.P.Has(status.Overflow), op) }
func opBVS(c *CPU, mode Mode, op operand) { c.branch(c.P.Has(status.Overflow), op) }

func opBIT(c *CPU, mode Mode, op operand) {
	m := c.loadOperand(mode, op)
	c.P.Assign(status.Zero, (c.A&m) == 0)
	c.P.Assign(status.Negative, m&0x80 != 0)
	c.P.Assign(status.Overflow, m&0x40 != 0)
}

func opBRK(c *CPU, mode Mode, op operand) {
	c.pushAddress(c.instrStart + 2)
	p := c.P
	p.Set(status.Break1)
	p.Set(status.Break2)
	c.pushStack(p.ToByte())
	c.P.Set(status.InterruptDisable)
	c.PC = c.read16(VectorBRK)
}

func opCLC(c *CPU, mode Mode, op operand) { c.P.Clear(status.Carry) }
func opCLD(c *CPU, mode Mode, op operand) { c.P.Clear(status.Decimal) }
func opCLI(c *CPU, mode Mode, op operand) { c.P.Clear(status.InterruptDisable) }
func opCLV(c *CPU, mode Mode, op operand) { c.P.Clear(status.Overflow) }

func opCMP(c *CPU, mode Mode, op operand) { c.compare(c.A, c.loadOperand(mode, op)) }
func opCPX(c *CPU, mode Mode, op operand) { c.compare(c.X, c.loadOperand(mode, op)) }
func opCPY(c *CPU, mode Mode, op operand) { c.compare(c.Y, c.loadOperand(mode, op)) }

func opDEC(c *CPU, mode Mode, op operand) {
	v := c.loadOperand(mode, op) - 1
	c.storeOperand(mode, op, v)
	c.P.SetZN(v)
}
func opDEX(c *CPU, mode Mode, op operand) { c.X--; c.P.SetZN(c.X) }
func opDEY(c *CPU, mode Mode, op operand) { c.Y--; c.P.SetZN(c.Y) }

func opEOR(c *CPU, mode Mode, op operand) {
	c.A ^= c.loadOperand(mode, op)
	c.P.SetZN(c.A)
}

func opINC(c *CPU, mode Mode, op operand) {
	v := c.loadOperand(mode, op) + 1
	c.storeOperand(mode, op, v)
	c.P.SetZN(v)
}
func opINX(c *CPU, mode Mode, op operand) { c.X++; c.P.SetZN(c.X) }
func opINY(c *CPU, mode Mode, op operand) { c.Y++; c.P.SetZN(c.Y) }

func opJMP(c *CPU, mode Mode, op operand) { c.PC = op.addr }

func opJSR(c *CPU, mode Mode, op operand) {
	c.pushAddress(c.instrStart + 2)
	c.PC = op.addr
}

func opLDA(c *CPU, mode Mode, op operand) { c.A = c.loadOperand(mode, op); c.P.SetZN(c.A) }
func opLDX(c *CPU, mode Mode, op operand) { c.X = c.loadOperand(mode, op); c.P.SetZN(c.X) }
func opLDY(c *CPU, mode Mode, op operand) { c.Y = c.loadOperand(mode, op); c.P.SetZN(c.Y) }

func opLSR(c *CPU, mode Mode, op operand) {
	old := c.loadOperand(mode, op)
	new := old >> 1
	c.storeOperand(mode, op, new)
	c.P.Assign(status.Carry, old&0x01 != 0)
	c.P.SetZN(new)
}

func opNOP(c *CPU, mode Mode, op operand) {}

func opORA(c *CPU, mode Mode, op operand) {
	c.A |= c.loadOperand(mode, op)
	c.P.SetZN(c.A)
}

func opPHA(c *CPU, mode Mode, op operand) { c.pushStack(c.A) }
func opPHP(c *CPU, mode Mode, op operand) {
	p := c.P
	p.Set(status.Break1)
	p.Set(status.Break2)
	c.pushStack(p.ToByte())
}
func opPLA(c *CPU, mode Mode, op operand) { c.A = c.popStack(); c.P.SetZN(c.A) }
func opPLP(c *CPU, mode Mode, op operand) {
	pulled := status.FromByte(c.popStack())
	pulled.Assign(status.Break1, c.P.Has(status.Break1))
	pulled.Assign(status.Break2, c.P.Has(status.Break2))
	c.P = pulled
}

func opROL(c *CPU, mode Mode, op operand) {
	old := c.loadOperand(mode, op)
	var carryIn uint8
	if c.P.Has(status.Carry) {
		carryIn = 1
	}
	new := old<<1 | carryIn
	c.storeOperand(mode, op, new)
	c.P.Assign(status.Carry, old&0x80 != 0)
	c.P.SetZN(new)
}

func opROR(c *CPU, mode Mode, op operand) {
	old := c.loadOperand(mode, op)
	var carryIn uint8
	if c.P.Has(status.Carry) {
		carryIn = 1
	}
	new := (old >> 1) | (carryIn << 7)
	c.storeOperand(mode, op, new)
	c.P.Assign(status.Carry, old&0x01 != 0)
	c.P.SetZN(new)
}

func opRTI(c *CPU, mode Mode, op operand) {
	p := status.FromByte(c.popStack())
	p.Clear(status.Break1)
	p.Clear(status.Break2)
	c.P = p
	c.PC = c.popAddress()
}

func opRTS(c *CPU, mode Mode, op operand) { c.PC = c.popAddress() + 1 }

func opSEC(c *CPU, mode Mode, op operand) { c.P.Set(status.Carry) }
func opSED(c *CPU, mode Mode, op operand) { c.P.Set(status.Decimal) }
func opSEI(c *CPU, mode Mode, op operand) { c.P.Set(status.InterruptDisable) }

func opSTA(c *CPU, mode Mode, op operand) { c.storeOperand(mode, op, c.A) }
func opSTX(c *CPU, mode Mode, op operand) { c.storeOperand(mode, op, c.X) }
func opSTY(c *CPU, mode Mode, op operand) { c.storeOperand(mode, op, c.Y) }

func opTAX(c *CPU, mode Mode, op operand) { c.X = c.A; c.P.SetZN(c.X) }
func opTAY(c *CPU, mode Mode, op operand) { c.Y = c.A; c.P.SetZN(c.Y) }
func opTSX(c *CPU, mode Mode, op operand) { c.X = c.SP; c.P.SetZN(c.X) }
func opTXA(c *CPU, mode Mode, op operand) { c.A = c.X; c.P.SetZN(c.A) }
func opTXS(c *CPU, mode Mode, op operand) { c.SP = c.X }
func opTYA(c *CPU, mode Mode, op operand) { c.A = c.Y; c.P.SetZN(c.A) }

// --- common unofficial opcodes ----------------------------------------

// LAX loads both A and X from memory in one cycle-cheaper instruction.
func opLAX(c *CPU, mode Mode, op operand) {
	v := c.loadOperand(mode, op)
	c.A = v
	c.X = v
	c.P.SetZN(v)
}

// SAX stores A&X to memory without touching flags.
func opSAX(c *CPU, mode Mode, op operand) {
	c.storeOperand(mode, op, c.A&c.X)
}

// DCP: DEC memory, then CMP A against the new value.
func opDCP(c *CPU, mode Mode, op operand) {
	v := c.loadOperand(mode, op) - 1
	c.storeOperand(mode, op, v)
	c.compare(c.A, v)
}

// ISB (ISC): INC memory, then SBC A with the new value.
func opISB(c *CPU, mode Mode, op operand) {
	v := c.loadOperand(mode, op) + 1
	c.storeOperand(mode, op, v)
	c.adcValue(^v)
}

// SLO: ASL memory, then ORA A with the new value.
func opSLO(c *CPU, mode Mode, op operand) {
	old := c.loadOperand(mode, op)
	new := old << 1
	c.storeOperand(mode, op, new)
	c.P.Assign(status.Carry, old&0x80 != 0)
	c.A |= new
	c.P.SetZN(c.A)
}

// RLA: ROL memory, then AND A with the new value.
func opRLA(c *CPU, mode Mode, op operand) {
	old := c.loadOperand(mode, op)
	var carryIn uint8
	if c.P.Has(status.Carry) {
		carryIn = 1
	}
	new := old<<1 | carryIn
	c.storeOperand(mode, op, new)
	c.P.Assign(status.Carry, old&0x80 != 0)
	c.A &= new
	c.P.SetZN(c.A)
}

// SRE: LSR memory, then EOR A with the new value.
func opSRE(c *CPU, mode Mode, op operand) {
	old := c.loadOperand(mode, op)
	new := old >> 1
	c.storeOperand(mode, op, new)
	c.P.Assign(status.Carry, old&0x01 != 0)
	c.A ^= new
	c.P.SetZN(c.A)
}

// RRA: ROR memory, then ADC A with the new value.
func opRRA(c *CPU, mode Mode, op operand) {
	old := c.loadOperand(mode, op)
	var carryIn uint8
	if c.P.Has(status.Carry) {
		carryIn = 1
	}
	new := (old >> 1) | (carryIn << 7)
	c.storeOperand(mode, op, new)
	c.P.Assign(status.Carry, old&0x01 != 0)
	c.adcValue(new)
}

func init() {
	// ADC
	reg(0x69, "ADC", Immediate, 2, 2, false, opADC)
	reg(0x65, "ADC", ZeroPage, 2, 3, false, opADC)
	reg(0x75, "ADC", ZeroPageX, 2, 4, false, opADC)
	reg(0x6D, "ADC", Absolute, 3, 4, false, opADC)
	reg(0x7D, "ADC", AbsoluteX, 3, 4, true, opADC)
	reg(0x79, "ADC", AbsoluteY, 3, 4, true, opADC)
	reg(0x61, "ADC", IndirectX, 2, 6, false, opADC)
	reg(0x71, "ADC", IndirectY, 2, 5, true, opADC)

	// AND
	reg(0x29, "AND", Immediate, 2, 2, false, opAND)
	reg(0x25, "AND", ZeroPage, 2, 3, false, opAND)
	reg(0x35, "AND", ZeroPageX, 2, 4, false, opAND)
	reg(0x2D, "AND", Absolute, 3, 4, false, opAND)
	reg(0x3D, "AND", AbsoluteX, 3, 4, true, opAND)
	reg(0x39, "AND", AbsoluteY, 3, 4, true, opAND)
	reg(0x21, "AND", IndirectX, 2, 6, false, opAND)
	reg(0x31, "AND", IndirectY, 2, 5, true, opAND)

	// ASL
	reg(0x0A, "ASL", Accumulator, 1, 2, false, opASL)
	reg(0x06, "ASL", ZeroPage, 2, 5, false, opASL)
	reg(0x16, "ASL", ZeroPageX, 2, 6, false, opASL)
	reg(0x0E, "ASL", Absolute, 3, 6, false, opASL)
	reg(0x1E, "ASL", AbsoluteX, 3, 7, false, opASL)

	// Branches
	reg(0x90, "BCC", Relative, 2, 2, false, opBCC)
	reg(0xB0, "BCS", Relative, 2, 2, false, opBCS)
	reg(0xF0, "BEQ", Relative, 2, 2, false, opBEQ)
	reg(0x30, "BMI", Relative, 2, 2, false, opBMI)
	reg(0xD0, "BNE", Relative, 2, 2, false, opBNE)
	reg(0x10, "BPL", Relative, 2, 2, false, opBPL)
	reg(0x50, "BVC", Relative, 2, 2, false, opBVC)
	reg(0x70, "BVS", Relative, 2, 2, false, opBVS)

	// BIT
	reg(0x24, "BIT", ZeroPage, 2, 3, false, opBIT)
	reg(0x2C, "BIT", Absolute, 3, 4, false, opBIT)

	// BRK
	reg(0x00, "BRK", Implicit, 2, 7, false, opBRK)

	// flag clears
	reg(0x18, "CLC", Implicit, 1, 2, false, opCLC)
	reg(0xD8, "CLD", Implicit, 1, 2, false, opCLD)
	reg(0x58, "CLI", Implicit, 1, 2, false, opCLI)
	reg(0xB8, "CLV", Implicit, 1, 2, false, opCLV)

	// CMP/CPX/CPY
	reg(0xC9, "CMP", Immediate, 2, 2, false, opCMP)
	reg(0xC5, "CMP", ZeroPage, 2, 3, false, opCMP)
	reg(0xD5, "CMP", ZeroPageX, 2, 4, false, opCMP)
	reg(0xCD, "CMP", Absolute, 3, 4, false, opCMP)
	reg(0xDD, "CMP", AbsoluteX, 3, 4, true, opCMP)
	reg(0xD9, "CMP", AbsoluteY, 3, 4, true, opCMP)
	reg(0xC1, "CMP", IndirectX, 2, 6, false, opCMP)
	reg(0xD1, "CMP", IndirectY, 2, 5, true, opCMP)
	reg(0xE0, "CPX", Immediate, 2, 2, false, opCPX)
	reg(0xE4, "CPX", ZeroPage, 2, 3, false, opCPX)
	reg(0xEC, "CPX", Absolute, 3, 4, false, opCPX)
	reg(0xC0, "CPY", Immediate, 2, 2, false, opCPY)
	reg(0xC4, "CPY", ZeroPage, 2, 3, false, opCPY)
	reg(0xCC, "CPY", Absolute, 3, 4, false, opCPY)

	// DEC/DEX/DEY
	reg(0xC6, "DEC", ZeroPage, 2, 5, false, opDEC)
	reg(0xD6, "DEC", ZeroPageX, 2, 6, false, opDEC)
	reg(0xCE, "DEC", Absolute, 3, 6, false, opDEC)
	reg(0xDE, "DEC", AbsoluteX, 3, 7, false, opDEC)
	reg(0xCA, "DEX", Implicit, 1, 2, false, opDEX)
	reg(0x88, "DEY", Implicit, 1, 2, false, opDEY)

	// EOR
	reg(0x49, "EOR", Immediate, 2, 2, false, opEOR)
	reg(0x45, "EOR", ZeroPage, 2, 3, false, opEOR)
	reg(0x55, "EOR", ZeroPageX, 2, 4, false, opEOR)
	reg(0x4D, "EOR", Absolute, 3, 4, false, opEOR)
	reg(0x5D, "EOR", AbsoluteX, 3, 4, true, opEOR)
	reg(0x59, "EOR", AbsoluteY, 3, 4, true, opEOR)
	reg(0x41, "EOR", IndirectX, 2, 6, false, opEOR)
	reg(0x51, "EOR", IndirectY, 2, 5, true, opEOR)

	// INC/INX/INY
	reg(0xE6, "INC", ZeroPage, 2, 5, false, opINC)
	reg(0xF6, "INC", ZeroPageX, 2, 6, false, opINC)
	reg(0xEE, "INC", Absolute, 3, 6, false, opINC)
	reg(0xFE, "INC", AbsoluteX, 3, 7, false, opINC)
	reg(0xE8, "INX", Implicit, 1, 2, false, opINX)
	reg(0xC8, "INY", Implicit, 1, 2, false, opINY)

	// JMP/JSR
	reg(0x4C, "JMP", Absolute, 3, 3, false, opJMP)
	reg(0x6C, "JMP", Indirect, 3, 5, false, opJMP)
	reg(0x20, "JSR", Absolute, 3, 6, false, opJSR)

	// LDA/LDX/LDY
	reg(0xA9, "LDA", Immediate, 2, 2, false, opLDA)
	reg(0xA5, "LDA", ZeroPage, 2, 3, false, opLDA)
	reg(0xB5, "LDA", ZeroPageX, 2, 4, false, opLDA)
	reg(0xAD, "LDA", Absolute, 3, 4, false, opLDA)
	reg(0xBD, "LDA", AbsoluteX, 3, 4, true, opLDA)
	reg(0xB9, "LDA", AbsoluteY, 3, 4, true, opLDA)
	reg(0xA1, "LDA", IndirectX, 2, 6, false, opLDA)
	reg(0xB1, "LDA", IndirectY, 2, 5, true, opLDA)
	reg(0xA2, "LDX", Immediate, 2, 2, false, opLDX)
	reg(0xA6, "LDX", ZeroPage, 2, 3, false, opLDX)
	reg(0xB6, "LDX", ZeroPageY, 2, 4, false, opLDX)
	reg(0xAE, "LDX", Absolute, 3, 4, false, opLDX)
	reg(0xBE, "LDX", AbsoluteY, 3, 4, true, opLDX)
	reg(0xA0, "LDY", Immediate, 2, 2, false, opLDY)
	reg(0xA4, "LDY", ZeroPage, 2, 3, false, opLDY)
	reg(0xB4, "LDY", ZeroPageX, 2, 4, false, opLDY)
	reg(0xAC, "LDY", Absolute, 3, 4, false, opLDY)
	reg(0xBC, "LDY", AbsoluteX, 3, 4, true, opLDY)

	// LSR
	reg(0x4A, "LSR", Accumulator, 1, 2, false, opLSR)
	reg(0x46, "LSR", ZeroPage, 2, 5, false, opLSR)
	reg(0x56, "LSR", ZeroPageX, 2, 6, false, opLSR)
	reg(0x4E, "LSR", Absolute, 3, 6, false, opLSR)
	reg(0x5E, "LSR", AbsoluteX, 3, 7, false, opLSR)

	// NOP (official)
	reg(0xEA, "NOP", Implicit, 1, 2, false, opNOP)

	// ORA
	reg(0x09, "ORA", Immediate, 2, 2, false, opORA)
	reg(0x05, "ORA", ZeroPage, 2, 3, false, opORA)
	reg(0x15, "ORA", ZeroPageX, 2, 4, false, opORA)
	reg(0x0D, "ORA", Absolute, 3, 4, false, opORA)
	reg(0x1D, "ORA", AbsoluteX, 3, 4, true, opORA)
	reg(0x19, "ORA", AbsoluteY, 3, 4, true, opORA)
	reg(0x01, "ORA", IndirectX, 2, 6, false, opORA)
	reg(0x11, "ORA", IndirectY, 2, 5, true, opORA)

	// stack ops
	reg(0x48, "PHA", Implicit, 1, 3, false, opPHA)
	reg(0x08, "PHP", Implicit, 1, 3, false, opPHP)
	reg(0x68, "PLA", Implicit, 1, 4, false, opPLA)
	reg(0x28, "PLP", Implicit, 1, 4, false, opPLP)

	// ROL/ROR
	reg(0x2A, "ROL", Accumulator, 1, 2, false, opROL)
	reg(0x26, "ROL", ZeroPage, 2, 5, false, opROL)
	reg(0x36, "ROL", ZeroPageX, 2, 6, false, opROL)
	reg(0x2E, "ROL", Absolute, 3, 6, false, opROL)
	reg(0x3E, "ROL", AbsoluteX, 3, 7, false, opROL)
	reg(0x6A, "ROR", Accumulator, 1, 2, false, opROR)
	reg(0x66, "ROR", ZeroPage, 2, 5, false, opROR)
	reg(0x76, "ROR", ZeroPageX, 2, 6, false, opROR)
	reg(0x6E, "ROR", Absolute, 3, 6, false, opROR)
	reg(0x7E, "ROR", AbsoluteX, 3, 7, false, opROR)

	// RTI/RTS
	reg(0x40, "RTI", Implicit, 1, 6, false, opRTI)
	reg(0x60, "RTS", Implicit, 1, 6, false, opRTS)

	// SBC
	reg(0xE9, "SBC", Immediate, 2, 2, false, opSBC)
	reg(0xE5, "SBC", ZeroPage, 2, 3, false, opSBC)
	reg(0xF5, "SBC", ZeroPageX, 2, 4, false, opSBC)
	reg(0xED, "SBC", Absolute, 3, 4, false, opSBC)
	reg(0xFD, "SBC", AbsoluteX, 3, 4, true, opSBC)
	reg(0xF9, "SBC", AbsoluteY, 3, 4, true, opSBC)
	reg(0xE1, "SBC", IndirectX, 2, 6, false, opSBC)
	reg(0xF1, "SBC", IndirectY, 2, 5, true, opSBC)

	// flag sets
	reg(0x38, "SEC", Implicit, 1, 2, false, opSEC)
	reg(0xF8, "SED", Implicit, 1, 2, false, opSED)
	reg(0x78, "SEI", Implicit, 1, 2, false, opSEI)

	// STA/STX/STY
	reg(0x85, "STA", ZeroPage, 2, 3, false, opSTA)
	reg(0x95, "STA", ZeroPageX, 2, 4, false, opSTA)
	reg(0x8D, "STA", Absolute, 3, 4, false, opSTA)
	reg(0x9D, "STA", AbsoluteX, 3, 5, false, opSTA)
	reg(0x99, "STA", AbsoluteY, 3, 5, false, opSTA)
	reg(0x81, "STA", IndirectX, 2, 6, false, opSTA)
	reg(0x91, "STA", IndirectY, 2, 6, false, opSTA)
	reg(0x86, "STX", ZeroPage, 2, 3, false, opSTX)
	reg(0x96, "STX", ZeroPageY, 2, 4, false, opSTX)
	reg(0x8E, "STX", Absolute, 3, 4, false, opSTX)
	reg(0x84, "STY", ZeroPage, 2, 3, false, opSTY)
	reg(0x94, "STY", ZeroPageX, 2, 4, false, opSTY)
	reg(0x8C, "STY", Absolute, 3, 4, false, opSTY)

	// transfers
	reg(0xAA, "TAX", Implicit, 1, 2, false, opTAX)
	reg(0xA8, "TAY", Implicit, 1, 2, false, opTAY)
	reg(0xBA, "TSX", Implicit, 1, 2, false, opTSX)
	reg(0x8A, "TXA", Implicit, 1, 2, false, opTXA)
	reg(0x9A, "TXS", Implicit, 1, 2, false, opTXS)
	reg(0x98, "TYA", Implicit, 1, 2, false, opTYA)

	// --- unofficial opcodes ---

	// LAX
	reg(0xA7, "LAX", ZeroPage, 2, 3, false, opLAX)
	reg(0xB7, "LAX", ZeroPageY, 2, 4, false, opLAX)
	reg(0xAF, "LAX", Absolute, 3, 4, false, opLAX)
	reg(0xBF, "LAX", AbsoluteY, 3, 4, true, opLAX)
	reg(0xA3, "LAX", IndirectX, 2, 6, false, opLAX)
	reg(0xB3, "LAX", IndirectY, 2, 5, true, opLAX)

	// SAX
	reg(0x87, "SAX", ZeroPage, 2, 3, false, opSAX)
	reg(0x97, "SAX", ZeroPageY, 2, 4, false, opSAX)
	reg(0x8F, "SAX", Absolute, 3, 4, false, opSAX)
	reg(0x83, "SAX", IndirectX, 2, 6, false, opSAX)

	// DCP
	reg(0xC7, "DCP", ZeroPage, 2, 5, false, opDCP)
	reg(0xD7, "DCP", ZeroPageX, 2, 6, false, opDCP)
	reg(0xCF, "DCP", Absolute, 3, 6, false, opDCP)
	reg(0xDF, "DCP", AbsoluteX, 3, 7, false, opDCP)
	reg(0xDB, "DCP", AbsoluteY, 3, 7, false, opDCP)
	reg(0xC3, "DCP", IndirectX, 2, 8, false, opDCP)
	reg(0xD3, "DCP", IndirectY, 2, 8, false, opDCP)

	// ISB/ISC
	reg(0xE7, "ISB", ZeroPage, 2, 5, false, opISB)
	reg(0xF7, "ISB", ZeroPageX, 2, 6, false, opISB)
	reg(0xEF, "ISB", Absolute, 3, 6, false, opISB)
	reg(0xFF, "ISB", AbsoluteX, 3, 7, false, opISB)
	reg(0xFB, "ISB", AbsoluteY, 3, 7, false, opISB)
	reg(0xE3, "ISB", IndirectX, 2, 8, false, opISB)
	reg(0xF3, "ISB", IndirectY, 2, 8, false, opISB)

	// SLO
	reg(0x07, "SLO", ZeroPage, 2, 5, false, opSLO)
	reg(0x17, "SLO", ZeroPageX, 2, 6, false, opSLO)
	reg(0x0F, "SLO", Absolute, 3, 6, false, opSLO)
	reg(0x1F, "SLO", AbsoluteX, 3, 7, false, opSLO)
	reg(0x1B, "SLO", AbsoluteY, 3, 7, false, opSLO)
	reg(0x03, "SLO", IndirectX, 2, 8, false, opSLO)
	reg(0x13, "SLO", IndirectY, 2, 8, false, opSLO)

	// RLA
	reg(0x27, "RLA", ZeroPage, 2, 5, false, opRLA)
	reg(0x37, "RLA", ZeroPageX, 2, 6, false, opRLA)
	reg(0x2F, "RLA", Absolute, 3, 6, false, opRLA)
	reg(0x3F, "RLA", AbsoluteX, 3, 7, false, opRLA)
	reg(0x3B, "RLA", AbsoluteY, 3, 7, false, opRLA)
	reg(0x23, "RLA", IndirectX, 2, 8, false, opRLA)
	reg(0x33, "RLA", IndirectY, 2, 8, false, opRLA)

	// SRE
	reg(0x47, "SRE", ZeroPage, 2, 5, false, opSRE)
	reg(0x57, "SRE", ZeroPageX, 2, 6, false, opSRE)
	reg(0x4F, "SRE", Absolute, 3, 6, false, opSRE)
	reg(0x5F, "SRE", AbsoluteX, 3, 7, false, opSRE)
	reg(0x5B, "SRE", AbsoluteY, 3, 7, false, opSRE)
	reg(0x43, "SRE", IndirectX, 2, 8, false, opSRE)
	reg(0x53, "SRE", IndirectY, 2, 8, false, opSRE)

	// RRA
	reg(0x67, "RRA", ZeroPage, 2, 5, false, opRRA)
	reg(0x77, "RRA", ZeroPageX, 2, 6, false, opRRA)
	reg(0x6F, "RRA", Absolute, 3, 6, false, opRRA)
	reg(0x7F, "RRA", AbsoluteX, 3, 7, false, opRRA)
	reg(0x7B, "RRA", AbsoluteY, 3, 7, false, opRRA)
	reg(0x63, "RRA", IndirectX, 2, 8, false, opRRA)
	reg(0x73, "RRA", IndirectY, 2, 8, false, opRRA)

	// unofficial NOPs, including those that read and discard an operand
	reg(0x80, "NOP", Immediate, 2, 2, false, opNOP)
	reg(0x04, "NOP", ZeroPage, 2, 3, false, opNOP)
	reg(0x44, "NOP", ZeroPage, 2, 3, false, opNOP)
	reg(0x64, "NOP", ZeroPage, 2, 3, false, opNOP)
	reg(0x0C, "NOP", Absolute, 3, 4, false, opNOP)
	reg(0x14, "NOP", ZeroPageX, 2, 4, false, opNOP)
	reg(0x34, "NOP", ZeroPageX, 2, 4, false, opNOP)
	reg(0x54, "NOP", ZeroPageX, 2, 4, false, opNOP)
	reg(0x74, "NOP", ZeroPageX, 2, 4, false, opNOP)
	reg(0xD4, "NOP", ZeroPageX, 2, 4, false, opNOP)
	reg(0xF4, "NOP", ZeroPageX, 2, 4, false, opNOP)
	reg(0x1A, "NOP", Implicit, 1, 2, false, opNOP)
	reg(0x3A, "NOP", Implicit, 1, 2, false, opNOP)
	reg(0x5A, "NOP", Implicit, 1, 2, false, opNOP)
	reg(0x7A, "NOP", Implicit, 1, 2, false, opNOP)
	reg(0xDA, "NOP", Implicit, 1, 2, false, opNOP)
	reg(0xFA, "NOP", Implicit, 1, 2, false, opNOP)
	reg(0x1C, "NOP", AbsoluteX, 3, 4, true, opNOP)
	reg(0x3C, "NOP", AbsoluteX, 3, 4, true, opNOP)
	reg(0x5C, "NOP", AbsoluteX, 3, 4, true, opNOP)
	reg(0x7C, "NOP", AbsoluteX, 3, 4, true, opNOP)
	reg(0xDC, "NOP", AbsoluteX, 3, 4, true, opNOP)
	reg(0xFC, "NOP", AbsoluteX, 3, 4, true, opNOP)
}
