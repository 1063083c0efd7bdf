package ppu

import "testing"

func TestSpriteFromBytesAttributes(t *testing.T) {
	cases := []struct {
		attr                  uint8
		wantPalette           uint8
		wantPriority          spritePriority
		wantFlipH, wantFlipV  bool
	}{
		{0b11111111, 0x03, priorityBehind, true, true},
		{0b01111111, 0x03, priorityBehind, true, false},
		{0b00111111, 0x03, priorityBehind, false, false},
		{0b00111101, 0x01, priorityBehind, false, false},
		{0b00011101, 0x01, priorityFront, false, false},
		{0b10011101, 0x01, priorityFront, false, true},
		{0b10011110, 0x02, priorityFront, false, true},
	}

	for i, tc := range cases {
		s := spriteFromBytes(0, []uint8{0x40, 0x07, tc.attr, 0x10})
		if s.palette != tc.wantPalette || s.priority != tc.wantPriority || s.flipH != tc.wantFlipH || s.flipV != tc.wantFlipV {
			t.Errorf("%d: got palette=%02x priority=%d flipH=%t flipV=%t; want %02x %d %t %t",
				i, s.palette, s.priority, s.flipH, s.flipV, tc.wantPalette, tc.wantPriority, tc.wantFlipH, tc.wantFlipV)
		}
		if s.y != 0x40 || s.tile != 0x07 || s.x != 0x10 {
			t.Errorf("%d: y/tile/x decoded wrong: %02x %02x %02x", i, s.y, s.tile, s.x)
		}
	}
}
