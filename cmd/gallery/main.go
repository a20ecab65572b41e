// Command gallery renders the stock demo scenes through the simulator
// backend and writes one PNG per scene, masked to the round panel shape.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"roundel/internal/demo"
	"roundel/screen"
	"roundel/sim"
)

func main() {
	var (
		outDir  = flag.String("out", "gallery", "output directory for PNG files")
		size    = flag.Int("size", 128, "logical display size in pixels")
		scale   = flag.Int("scale", 2, "supersampling factor for the PNGs")
		square  = flag.Bool("square", false, "skip the circular mask")
		noRing  = flag.Bool("no-ring", false, "skip the border ring")
		pattern = flag.String("only", "", "render only the scene with this name")
	)
	flag.Parse()

	if err := run(*outDir, *size, *scale, !*square, !*noRing, *pattern); err != nil {
		fmt.Fprintln(os.Stderr, "gallery:", err)
		os.Exit(1)
	}
}

func run(outDir string, size, scale int, circular, ring bool, only string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	scenes := append(demo.Scenes(), demo.FaceScenes()...)
	for _, sc := range scenes {
		if only != "" && sc.Name != only {
			continue
		}
		backend := sim.NewScaled(size, size, scale)
		scr, err := screen.New(backend)
		if err != nil {
			return err
		}

		scr.Clear()
		sc.Draw(scr)
		if err := scr.Show(); err != nil {
			return err
		}

		path := filepath.Join(outDir, sc.Name+".png")
		if err := backend.Save(path, circular, ring); err != nil {
			return err
		}
		fmt.Println(path)
	}
	return nil
}
