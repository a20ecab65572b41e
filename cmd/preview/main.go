// Command preview shows the demo scenes in a desktop window. Left/right
// arrows (or space) cycle scenes; the watch scene follows the wall clock.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"roundel/internal/demo"
	"roundel/screen"
	"roundel/sim"
)

func main() {
	size := flag.Int("size", 128, "logical display size in pixels")
	flag.Parse()

	backend := sim.New(*size, *size)
	scr, err := screen.New(backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, "preview:", err)
		os.Exit(1)
	}

	g := &game{
		backend: backend,
		scr:     scr,
		scenes:  append(demo.Scenes(), demo.FaceScenes()...),
		size:    *size,
	}

	ebiten.SetWindowTitle("roundel preview")
	ebiten.SetWindowSize(*size*4, *size*4)
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintln(os.Stderr, "preview:", err)
		os.Exit(1)
	}
}

type game struct {
	backend *sim.Simulator
	scr     *screen.Screen
	scenes  []demo.Scene
	index   int
	size    int
	fbImg   *ebiten.Image
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.index = (g.index + 1) % len(g.scenes)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.index = (g.index + len(g.scenes) - 1) % len(g.scenes)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(dst *ebiten.Image) {
	sc := g.scenes[g.index]

	g.scr.Clear()
	if sc.Name == "watch" {
		now := time.Now()
		g.scr.Watch(now.Hour(), now.Minute(), now.Second())
	} else {
		sc.Draw(g.scr)
	}

	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(g.size, g.size)
	}
	g.fbImg.WritePixels(g.backend.Image().Pix)
	dst.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size, g.size
}
