package ppu

// spritePriority controls whether a sprite draws in front of or behind
// opaque background pixels.
type spritePriority uint8

const (
	priorityFront spritePriority = iota
	priorityBehind
)

// sprite is one decoded 4-byte OAM entry.
type sprite struct {
	index    int
	y        uint8
	tile     uint8
	palette  uint8
	priority spritePriority
	flipH    bool
	flipV    bool
	x        uint8
}

// spriteFromBytes decodes a 4-byte OAM entry per the standard layout:
// Y, tile index, attribute byte, X.
func spriteFromBytes(index int, b []uint8) sprite {
	attr := b[2]
	return sprite{
		index:    index,
		y:        b[0],
		tile:     b[1],
		palette:  attr & 0x03,
		priority: spritePriority((attr >> 5) & 0x01),
		flipH:    attr&0x40 != 0,
		flipV:    attr&0x80 != 0,
		x:        b[3],
	}
}
