// Command nesgo is the playable host shell: it loads a ROM, wires up a
// Machine, and drives it from an ebiten window.
package main

import (
	"context"
	"flag"
	"image/color"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"nesgo/cartridge"
	"nesgo/controller"
	"nesgo/nes"
	"nesgo/ppu"
)

var romPath = flag.String("rom", "", "path to an iNES (.nes) ROM to run")

// keymap mirrors the controller's bit order: A, B, Select, Start, Up,
// Down, Left, Right.
var keymap = []struct {
	key    ebiten.Key
	button controller.Button
}{
	{ebiten.KeyZ, controller.A},
	{ebiten.KeyX, controller.B},
	{ebiten.KeyShift, controller.Select},
	{ebiten.KeyEnter, controller.Start},
	{ebiten.KeyUp, controller.Up},
	{ebiten.KeyDown, controller.Down},
	{ebiten.KeyLeft, controller.Left},
	{ebiten.KeyRight, controller.Right},
}

func pollButtons() uint8 {
	var mask uint8
	for _, k := range keymap {
		if ebiten.IsKeyPressed(k.key) {
			mask |= uint8(k.button)
		}
	}
	return mask
}

// game adapts a nes.Machine to the ebiten.Game interface. The CPU/PPU
// run synchronously inside Update, one emulated frame per call, which
// keeps the emulator's own frame cadence locked to ebiten's.
type game struct {
	mach *nes.Machine
}

func (g *game) Update() error {
	if !g.mach.Running {
		return ebiten.Termination
	}
	g.mach.SetButtons(pollButtons())
	return g.mach.RunUntilFrame()
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.mach.Framebuffer()
	for y := 0; y < ppu.Height; y++ {
		for x := 0; x < ppu.Width; x++ {
			rgb := fb[y*ppu.Width+x]
			screen.Set(x, y, color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xFF})
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.Width, ppu.Height
}

func main() {
	flag.Parse()
	if *romPath == "" {
		log.Fatal("usage: nesgo -rom path/to/game.nes")
	}

	f, err := os.Open(*romPath)
	if err != nil {
		log.Fatalf("opening ROM: %v", err)
	}
	defer f.Close()

	cart, err := cartridge.Load(f)
	if err != nil {
		log.Fatalf("loading ROM: %v", err)
	}

	mach := nes.New(cart)
	mach.Reset()

	ebiten.SetWindowSize(ppu.Width*2, ppu.Height*2)
	ebiten.SetWindowTitle("nesgo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			mach.Stop()
		case <-ctx.Done():
		}
	}()

	if err := ebiten.RunGame(&game{mach: mach}); err != nil {
		log.Fatal(err)
	}
}
