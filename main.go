// Package main implements the entry point of the Chip-8 emulator.
package main

import (
	"os"

	"github.com/beanboi7/chyp8/cmd"
	"github.com/faiface/pixel/pixelgl"
	"github.com/retroenv/retrogolib/app"
)

func main() {
	pixelgl.Run(runChyp8)
}

// runChyp8 runs on the main thread, which the window requires.
func runChyp8() {
	ctx := app.Context()
	if err := cmd.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
