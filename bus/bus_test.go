package bus

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"nesgo/cartridge"
)

// rom builds a minimal one-bank iNES image (16KB PRG, no CHR) for tests
// that only need a bus and don't care about program content.
func rom(t *testing.T) *cartridge.Cartridge {
	t.Helper()
	header := []byte{'N', 'E', 'S', 0x1A, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, 16384)
	c, err := cartridge.Load(bytes.NewReader(append(header, prg...)))
	if err != nil {
		t.Fatalf("building test cartridge: %v", err)
	}
	return c
}

func TestRAMMirroring(t *testing.T) {
	b := New(rom(t))

	for i := 0; i < 10; i++ {
		b.Write(uint16(i), uint8(i+1))
	}

	for _, base := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		for i := 0; i < 10; i++ {
			assert.Equal(t, uint8(i+1), b.Read(base+uint16(i)), "mirror at $%04X", base)
		}
	}
}

func TestPRGFoldFor16KiBCart(t *testing.T) {
	b := New(rom(t))
	// PrgRead mirrors $C000-$FFFF onto $8000-$BFFF for a one-bank cart.
	assert.Equal(t, b.Read(0x8000), b.Read(0xC000))
	assert.Equal(t, b.Read(0xBFFF), b.Read(0xFFFF))
}

func TestPPURegisterMirroring(t *testing.T) {
	b := New(rom(t))
	b.Write(0x2000, 0x80)
	assert.Equal(t, b.Read(0x2000), b.Read(0x2008))
}

func TestControllerShiftOrder(t *testing.T) {
	b := New(rom(t))
	b.SetButtons(0x01) // A pressed
	b.Write(0x4016, 1) // strobe high
	b.Write(0x4016, 0) // strobe low, start shifting

	assert.Equal(t, uint8(1), b.Read(0x4016), "bit 0 (A) reported first")
	for i := 0; i < 7; i++ {
		assert.Equal(t, uint8(0), b.Read(0x4016))
	}
}

func TestOAMDMAStealsCycles(t *testing.T) {
	b := New(rom(t))
	b.Write(0x0200, 0xAA) // first byte of the source page
	b.Write(0x4014, 0x02) // DMA from $0200

	stolen := b.StealCycles()
	assert.True(t, stolen == 513 || stolen == 514)
	assert.Equal(t, 0, b.StealCycles(), "StealCycles must reset after reporting")
}
