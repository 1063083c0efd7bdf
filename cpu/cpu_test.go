package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nesgo/status"
)

type testBus struct {
	mem         [0x10000]uint8
	nmiPending  bool
	tickedTotal int
}

func (m *testBus) Read(addr uint16) uint8  { return m.mem[addr] }
func (m *testBus) Write(addr uint16, val uint8) { m.mem[addr] = val }
func (m *testBus) PeekBytes(addr uint16, n int) []uint8 {
	out := make([]uint8, n)
	for i := 0; i < n; i++ {
		out[i] = m.mem[addr+uint16(i)]
	}
	return out
}
func (m *testBus) Tick(cycles int) { m.tickedTotal += cycles }
func (m *testBus) PollNMI() bool {
	if m.nmiPending {
		m.nmiPending = false
		return true
	}
	return false
}
func (m *testBus) StealCycles() int { return 0 }

func newTestCPU() (*CPU, *testBus) {
	b := &testBus{}
	c := New(b)
	return c, b
}

func TestResetState(t *testing.T) {
	c, b := newTestCPU()
	b.mem[VectorReset] = 0x00
	b.mem[VectorReset+1] = 0x80

	c.Reset()

	assert.Equal(t, uint8(0), c.A)
	assert.Equal(t, uint8(0), c.X)
	assert.Equal(t, uint8(0), c.Y)
	assert.Equal(t, uint8(0xFD), c.SP)
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.True(t, c.P.Has(status.InterruptDisable))
	assert.True(t, c.P.Has(status.Break2))
	assert.Equal(t, uint64(7), c.Cycles)
}

func TestLDAImmediate(t *testing.T) {
	c, b := newTestCPU()
	c.SetPC(0x0200)
	b.mem[0x0200] = 0xA9 // LDA #$00
	b.mem[0x0201] = 0x00

	cycles, err := c.Step()

	assert.NoError(t, err)
	assert.Equal(t, 2, cycles)
	assert.Equal(t, uint8(0), c.A)
	assert.True(t, c.P.Has(status.Zero))
	assert.False(t, c.P.Has(status.Negative))
	assert.Equal(t, uint16(0x0202), c.PC)
}

func TestLDASetsNegativeFlag(t *testing.T) {
	c, b := newTestCPU()
	c.SetPC(0x0200)
	b.mem[0x0200] = 0xA9
	b.mem[0x0201] = 0x80

	c.Step()

	assert.True(t, c.P.Has(status.Negative))
	assert.False(t, c.P.Has(status.Zero))
}

func TestJSRThenRTSRoundTrips(t *testing.T) {
	c, b := newTestCPU()
	c.SetPC(0x0200)
	c.SP = 0xFF
	b.mem[0x0200] = 0x20 // JSR $0300
	b.mem[0x0201] = 0x00
	b.mem[0x0202] = 0x03
	b.mem[0x0300] = 0x60 // RTS

	_, err := c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0300), c.PC)

	_, err = c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0203), c.PC)
	assert.Equal(t, uint8(0xFF), c.SP)
}

func TestDecodeErrorOnUnknownOpcode(t *testing.T) {
	c, b := newTestCPU()
	c.SetPC(0x0200)
	b.mem[0x0200] = 0x02 // unassigned opcode (KIL/JAM family, not implemented)

	_, err := c.Step()

	assert.Error(t, err)
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	c, b := newTestCPU()
	c.SetPC(0x0200)
	b.mem[0x0200] = 0x6C // JMP ($03FF)
	b.mem[0x0201] = 0xFF
	b.mem[0x0202] = 0x03
	b.mem[0x03FF] = 0x00 // low byte of the target
	b.mem[0x0300] = 0x40 // buggy high-byte source: same page, $03FF & $FF00
	b.mem[0x0400] = 0x12 // what the high byte would be without the bug

	c.Step()

	assert.Equal(t, uint16(0x4000), c.PC, "high byte must wrap to $0300, not roll into $0400")
}

func TestNMIDeliverySequence(t *testing.T) {
	c, b := newTestCPU()
	c.SetPC(0x0200)
	c.SP = 0xFF
	c.P = status.FromByte(0x00)
	b.mem[VectorNMI] = 0x00
	b.mem[VectorNMI+1] = 0x90
	b.nmiPending = true

	cycles, err := c.Step()

	assert.NoError(t, err)
	assert.Equal(t, 2, cycles)
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.True(t, c.P.Has(status.InterruptDisable))

	poppedP := b.mem[0x0100+int(c.SP)+1]
	assert.Zero(t, poppedP&uint8(status.Break1))
	assert.NotZero(t, poppedP&uint8(status.Break2))

	retHi := b.mem[0x0100+int(c.SP)+3]
	retLo := b.mem[0x0100+int(c.SP)+2]
	assert.Equal(t, uint16(0x0200), uint16(retHi)<<8|uint16(retLo))
}

func TestADCOverflowFormula(t *testing.T) {
	c, b := newTestCPU()
	c.SetPC(0x0200)
	c.A = 0x7F // +127
	c.P.Clear(status.Carry)
	b.mem[0x0200] = 0x69 // ADC #$01
	b.mem[0x0201] = 0x01

	c.Step()

	assert.Equal(t, uint8(0x80), c.A)
	assert.True(t, c.P.Has(status.Overflow), "127+1 overflows into negative")
	assert.True(t, c.P.Has(status.Negative))
	assert.False(t, c.P.Has(status.Carry))
}

func TestSBCBorrowClearsCarry(t *testing.T) {
	c, _ := newTestCPU()
	c.A = 0x00
	c.P.Set(status.Carry) // no borrow going in
	c.adcValue(^uint8(0x01))

	assert.Equal(t, uint8(0xFF), c.A)
	assert.False(t, c.P.Has(status.Carry), "borrow occurred")
}

func TestBranchCycleCosts(t *testing.T) {
	cases := []struct {
		name       string
		pc         uint16
		carrySet   bool
		offset     uint8
		wantPC     uint16
		wantCycles int
	}{
		{"not taken", 0x0000, true, 0x20, 0x0002, 2},
		{"taken, no page cross", 0x0000, false, 0x20, 0x0022, 3},
		{"taken, page cross", 0x00F0, false, 0x20, 0x0112, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, b := newTestCPU()
			c.SetPC(tc.pc)
			if tc.carrySet {
				c.P.Set(status.Carry)
			} else {
				c.P.Clear(status.Carry)
			}
			b.mem[tc.pc] = 0x90 // BCC
			b.mem[tc.pc+1] = tc.offset

			cycles, err := c.Step()

			assert.NoError(t, err)
			assert.Equal(t, tc.wantCycles, cycles)
			assert.Equal(t, tc.wantPC, c.PC)
		})
	}
}

func TestStringFormatMatchesTraceLayout(t *testing.T) {
	c, _ := newTestCPU()
	c.A, c.X, c.Y = 0x01, 0x02, 0x03
	c.SP = 0xFD
	c.PC = 0xC000
	c.P = status.FromByte(0x24)

	got := c.String()
	assert.Contains(t, got, "A:01 X:02 Y:03")
	assert.Contains(t, got, "SP:FD PC:C000")
}
