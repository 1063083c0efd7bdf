package nes

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"nesgo/cartridge"
)

func testROM(t *testing.T, resetLo, resetHi byte) *cartridge.Cartridge {
	t.Helper()
	header := []byte{'N', 'E', 'S', 0x1A, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, 16384)
	// Reset vector lives at the end of the 16KB-mirrored bank: $FFFC/$FFFD.
	prg[0x3FFC] = resetLo
	prg[0x3FFD] = resetHi
	c, err := cartridge.Load(bytes.NewReader(append(header, prg...)))
	if err != nil {
		t.Fatalf("building test cartridge: %v", err)
	}
	return c
}

func TestNewAndResetStartAtResetVector(t *testing.T) {
	cart := testROM(t, 0x00, 0x80)
	m := New(cart)
	m.Reset()
	assert.Equal(t, uint16(0x8000), m.CPU.PC)
	assert.True(t, m.Running)
}

func TestRunUntilFrameCompletesWithoutError(t *testing.T) {
	cart := testROM(t, 0x00, 0x80)
	m := New(cart)
	m.Reset()

	err := m.RunUntilFrame()

	assert.NoError(t, err)
	assert.NotNil(t, m.Framebuffer())
}

func TestSetButtonsReachesController(t *testing.T) {
	cart := testROM(t, 0x00, 0x80)
	m := New(cart)
	m.Reset()
	m.SetButtons(0xFF) // should not panic and should be visible through $4016

	m.bus.Write(0x4016, 1)
	m.bus.Write(0x4016, 0)
	assert.Equal(t, uint8(1), m.bus.Read(0x4016))
}

func TestStopClearsRunning(t *testing.T) {
	cart := testROM(t, 0x00, 0x80)
	m := New(cart)
	m.Stop()
	assert.False(t, m.Running)
}
