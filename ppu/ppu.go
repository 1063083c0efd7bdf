// Package ppu implements the picture processing unit: the
// memory-mapped register interface, VRAM/palette/OAM storage,
// scanline/dot timing, NMI generation and background+sprite rendering
// to an RGB framebuffer.
package ppu

const (
	vramSize    = 2048
	oamSize     = 256
	paletteSize = 32
)

// Display resolution.
const (
	Width  = 256
	Height = 240
)

// PPUSTATUS bits.
const (
	statusSpriteOverflow = 1 << 5
	statusSprite0Hit     = 1 << 6
	statusVBlank         = 1 << 7
)

// PPUCTRL bits.
const (
	ctrlVRAMIncrement  = 1 << 2
	ctrlSpriteTable    = 1 << 3
	ctrlBGTable        = 1 << 4
	ctrlSpriteSize     = 1 << 5
	ctrlGenerateNMI    = 1 << 7
)

// PPUMASK bits.
const (
	maskShowBackground = 1 << 3
	maskShowSprites    = 1 << 4
)

// Mirroring selects how the PPU's two physical 1KB nametables are
// mapped onto the four logical nametable slots. Set at construction
// time from the cartridge header; this core does not support
// four-screen mirroring (it would require cartridge-provided VRAM,
// which mapper 0 never has).
type Mirroring uint8

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
)

// Bus is everything the PPU needs from its cartridge, borrowed through
// the owning bus package. PollNMI/NMI delivery is exposed by the PPU
// itself, not by this interface, since the bus polls the PPU rather
// than the other way around.
type Bus interface {
	CHRRead(addr uint16) uint8
}

// PPU holds the full picture-processing state: registers, VRAM,
// palette RAM, OAM, scroll/address latches and scanline/dot position.
type PPU struct {
	bus       Bus
	mirroring Mirroring

	ctrl   uint8
	mask   uint8
	status uint8

	oamAddr uint8
	oam     [oamSize]uint8

	nt      [vramSize]uint8
	palette [paletteSize]uint8

	v, t        vram
	fineX       uint8
	writeToggle bool
	dataBuffer  uint8

	dot      int
	scanline int
	frameOdd bool

	nmiPending  bool
	frameReady  bool
	spriteCount int

	fb [Width * Height]RGB
}

// New constructs a PPU wired to bus, with nametable mirroring fixed at
// the mode the cartridge declares.
func New(bus Bus, mirroring Mirroring) *PPU {
	return &PPU{
		bus:       bus,
		mirroring: mirroring,
		scanline:  261,
	}
}

// Framebuffer returns the PPU's own backing framebuffer. The caller
// must treat it as read-only between RunUntilFrame calls: the PPU
// writes to it as it renders each scanline.
func (p *PPU) Framebuffer() *[Width * Height]RGB {
	return &p.fb
}

// PollNMI reports and consumes a pending, edge-triggered NMI, mirroring
// the same contract as cpu.Bus.PollNMI.
func (p *PPU) PollNMI() bool {
	if p.nmiPending {
		p.nmiPending = false
		return true
	}
	return false
}

// FrameReady reports and consumes the "frame complete" signal, raised
// once per frame at the start of vblank (scanline 241, dot 1). The
// bus exposes this to the CPU's RunUntilFrame loop.
func (p *PPU) FrameReady() bool {
	if p.frameReady {
		p.frameReady = false
		return true
	}
	return false
}

// ReadRegister handles a CPU read of one of the eight PPU registers
// (index 0-7, already reduced from the mirrored $2000-$3FFF range).
func (p *PPU) ReadRegister(index uint8) uint8 {
	switch index {
	case 2: // PPUSTATUS
		result := p.status
		p.status &^= statusVBlank
		p.writeToggle = false
		return result
	case 4: // OAMDATA
		return p.oam[p.oamAddr]
	case 7: // PPUDATA
		addr := p.v.data & 0x3FFF
		var result uint8
		if addr >= 0x3F00 {
			result = p.readVRAM(addr)
			p.dataBuffer = p.readVRAM(addr - 0x1000)
		} else {
			result = p.dataBuffer
			p.dataBuffer = p.readVRAM(addr)
		}
		p.v.data += p.vramIncrement()
		return result
	default:
		return 0
	}
}

// WriteRegister handles a CPU write to one of the eight PPU registers.
func (p *PPU) WriteRegister(index uint8, val uint8) {
	switch index {
	case 0: // PPUCTRL
		oldNMI := p.ctrl & ctrlGenerateNMI
		p.ctrl = val
		p.t.data = (p.t.data &^ 0x0C00) | (uint16(val&0x03) << 10)
		if oldNMI == 0 && p.ctrl&ctrlGenerateNMI != 0 && p.status&statusVBlank != 0 {
			p.nmiPending = true
		}
	case 1: // PPUMASK
		p.mask = val
	case 2: // PPUSTATUS is read-only
	case 3: // OAMADDR
		p.oamAddr = val
	case 4: // OAMDATA
		p.oam[p.oamAddr] = val
		p.oamAddr++
	case 5: // PPUSCROLL
		if !p.writeToggle {
			p.t.setCoarseX(uint16(val) >> 3)
			p.fineX = val & 0x07
			p.writeToggle = true
		} else {
			p.t.setCoarseY(uint16(val) >> 3)
			p.t.setFineY(uint16(val & 0x07))
			p.writeToggle = false
		}
	case 6: // PPUADDR
		if !p.writeToggle {
			p.t.data = (p.t.data & 0x00FF) | (uint16(val&0x3F) << 8)
			p.writeToggle = true
		} else {
			p.t.data = (p.t.data & 0xFF00) | uint16(val)
			p.v = p.t
			p.writeToggle = false
		}
	case 7: // PPUDATA
		p.writeVRAM(p.v.data&0x3FFF, val)
		p.v.data += p.vramIncrement()
	}
}

// DMAWrite is used by the bus's OAMDMA ($4014) handler: it writes val
// at the current OAM address and advances it, exactly as OAMDATA would.
func (p *PPU) DMAWrite(val uint8) {
	p.oam[p.oamAddr] = val
	p.oamAddr++
}

func (p *PPU) vramIncrement() uint16 {
	if p.ctrl&ctrlVRAMIncrement != 0 {
		return 32
	}
	return 1
}

// nametableIndex maps a $2000-$3EFF nametable address onto one of the
// PPU's two physical 1KB nametables, per the cartridge's mirroring.
func (p *PPU) nametableIndex(addr uint16) uint16 {
	a := (addr - 0x2000) % 0x1000
	table := a / 0x0400
	offset := a % 0x0400
	switch p.mirroring {
	case MirrorVertical:
		return (table%2)*0x0400 + offset
	default: // MirrorHorizontal
		return (table/2)*0x0400 + offset
	}
}

func (p *PPU) readVRAM(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return p.bus.CHRRead(addr)
	case addr < 0x3F00:
		return p.nt[p.nametableIndex(addr)]
	default:
		return p.palette[paletteIndex(addr)]
	}
}

func (p *PPU) writeVRAM(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		// CHR is cartridge ROM in this core; writes are discarded.
	case addr < 0x3F00:
		p.nt[p.nametableIndex(addr)] = val
	default:
		p.palette[paletteIndex(addr)] = val
	}
}

// paletteIndex applies the 32-byte palette RAM mirror, including the
// sprite-palette-backdrop-color aliasing at $3F10/$3F14/$3F18/$3F1C.
func paletteIndex(addr uint16) uint16 {
	i := (addr - 0x3F00) % 0x20
	if i >= 0x10 && i%4 == 0 {
		i -= 0x10
	}
	return i
}

// Tick advances the PPU by n PPU dots (three per CPU cycle).
func (p *PPU) Tick(n int) {
	for i := 0; i < n; i++ {
		p.tickOne()
	}
}

func (p *PPU) tickOne() {
	if p.scanline == 261 && p.dot == 1 {
		p.status &^= statusVBlank | statusSprite0Hit | statusSpriteOverflow
	}
	if p.scanline == 241 && p.dot == 1 {
		p.status |= statusVBlank
		p.frameReady = true
		if p.ctrl&ctrlGenerateNMI != 0 {
			p.nmiPending = true
		}
	}
	if p.scanline < Height && p.dot == Width {
		p.renderScanline(p.scanline)
	}
	if p.dot >= 257 && p.dot <= 320 && (p.scanline < Height || p.scanline == 261) {
		p.oamAddr = 0
	}

	p.dot++
	if p.dot > 340 {
		p.dot = 0
		p.scanline++
		if p.scanline > 261 {
			p.scanline = 0
			p.frameOdd = !p.frameOdd
		}
	}
}

// renderScanline composites background and sprite pixels for row y into
// the framebuffer. Rendering happens once per scanline rather than dot
// by dot: the visible result matches hardware for all but mid-scanline
// register writes, which this core does not attempt to emulate.
func (p *PPU) renderScanline(y int) {
	var bgOpaque [Width]bool

	if p.mask&maskShowBackground != 0 {
		p.renderBackground(y, &bgOpaque)
	}
	if p.mask&maskShowSprites != 0 {
		p.renderSprites(y, &bgOpaque)
	}
}

func (p *PPU) renderBackground(y int, bgOpaque *[Width]bool) {
	fineY := (uint16(y) + p.v.fineY()) % 8
	row := y

	bgTableBase := uint16(0)
	if p.ctrl&ctrlBGTable != 0 {
		bgTableBase = 0x1000
	}

	for x := 0; x < Width; x++ {
		scrolledX := uint16(x) + uint16(p.fineX)
		coarseX := (p.v.coarseX() + scrolledX/8) % 32
		coarseY := (p.v.coarseY() + uint16(row)/8) % 30
		nametableBase := uint16(0x2000) + p.v.nametable()*0x0400

		ntAddr := nametableBase + coarseY*32 + coarseX
		tileIdx := p.readVRAM(ntAddr)

		attrAddr := nametableBase + 0x03C0 + (coarseY/4)*8 + coarseX/4
		attr := p.readVRAM(attrAddr)
		shift := ((coarseY % 4) / 2 * 2) + (coarseX%4)/2*4
		paletteIdx := (attr >> shift) & 0x03

		bit := 7 - (scrolledX % 8)
		lo := p.bus.CHRRead(bgTableBase + uint16(tileIdx)*16 + fineY)
		hi := p.bus.CHRRead(bgTableBase + uint16(tileIdx)*16 + fineY + 8)
		pixel := ((hi>>bit)&1)<<1 | (lo>>bit)&1

		if pixel != 0 {
			bgOpaque[x] = true
		}
		colorIdx := p.palette[0]
		if pixel != 0 {
			colorIdx = p.readVRAM(0x3F00 + uint16(paletteIdx)*4 + uint16(pixel))
		}
		p.fb[row*Width+x] = systemPalette[colorIdx&0x3F]
	}
}

func (p *PPU) renderSprites(y int, bgOpaque *[Width]bool) {
	height := 8
	if p.ctrl&ctrlSpriteSize != 0 {
		height = 16
	}

	spriteTableBase := uint16(0)
	if p.ctrl&ctrlSpriteTable != 0 {
		spriteTableBase = 0x1000
	}

	// Evaluate in forward OAM order, same as hardware's sprite
	// evaluation pass: the first 8 in-range sprites are kept, a 9th
	// sets the overflow flag.
	var onLine []sprite
	for i := 0; i < 64; i++ {
		base := i * 4
		spr := spriteFromBytes(i, p.oam[base:base+4])
		spriteTop := int(spr.y) + 1
		if y < spriteTop || y >= spriteTop+height {
			continue
		}
		if len(onLine) == 8 {
			p.status |= statusSpriteOverflow
			break
		}
		onLine = append(onLine, spr)
	}

	// Render in reverse OAM order so lower-indexed sprites draw on top
	// of higher-indexed ones at overlapping pixels.
	for i := len(onLine) - 1; i >= 0; i-- {
		spr := onLine[i]
		spriteTop := int(spr.y) + 1
		line := y - spriteTop
		if spr.flipV {
			line = height - 1 - line
		}

		tile := uint16(spr.tile)
		table := spriteTableBase
		if height == 16 {
			table = uint16(spr.tile&0x01) * 0x1000
			tile = uint16(spr.tile &^ 0x01)
			if line >= 8 {
				tile++
				line -= 8
			}
		}

		lo := p.bus.CHRRead(table + tile*16 + uint16(line))
		hi := p.bus.CHRRead(table + tile*16 + uint16(line) + 8)

		for col := 0; col < 8; col++ {
			px := int(spr.x) + col
			if px < 0 || px >= Width {
				continue
			}
			bit := col
			if !spr.flipH {
				bit = 7 - col
			}
			pixel := ((hi>>uint(bit))&1)<<1 | (lo>>uint(bit))&1
			if pixel == 0 {
				continue
			}
			if spr.index == 0 && bgOpaque[px] {
				p.status |= statusSprite0Hit
			}
			if spr.priority == priorityBehind && bgOpaque[px] {
				continue
			}
			colorIdx := p.readVRAM(0x3F10 + uint16(spr.palette)*4 + uint16(pixel))
			p.fb[y*Width+px] = systemPalette[colorIdx&0x3F]
		}
	}
}
