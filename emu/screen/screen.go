// Package screen implements the pixelgl window that shows the framebuffer
// and reads the keyboard.
package screen

import (
	"fmt"

	"github.com/beanboi7/chyp8/emu/display"
	"github.com/beanboi7/chyp8/emu/keypad"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

// Window is a scaled window for the 64x32 display.
type Window struct {
	*pixelgl.Window
	KeyMap map[uint8]pixelgl.Button

	scale  float64
	pixels *imdraw.IMDraw
}

// NewWindow opens a window with every display pixel drawn as a scale x scale
// square. It has to be called from the function passed to pixelgl.Run.
func NewWindow(title string, scale int) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, float64(display.Width*scale), float64(display.Height*scale)),
		VSync:  true,
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	return &Window{
		Window: win,
		KeyMap: DefaultKeyMap,
		scale:  float64(scale),
		pixels: imdraw.New(nil),
	}, nil
}

// Closed reports whether the window was closed or escape was pressed.
func (w *Window) Closed() bool {
	return w.Window.Closed() || w.Window.Pressed(pixelgl.KeyEscape)
}

// PollKeys copies the state of the mapped keyboard keys into the keypad.
func (w *Window) PollKeys(keys *keypad.Keypad) {
	var state keypad.State
	for key, button := range w.KeyMap {
		state[key&0xF] = w.Window.Pressed(button)
	}
	keys.Update(state)
}

// Draw rebuilds the lit pixels from the frame. Display row 0 is the top of
// the window, pixel coordinates grow upwards.
func (w *Window) Draw(frame display.Frame) {
	w.pixels.Clear()
	w.pixels.Color = colornames.White

	for y := 0; y < display.Height; y++ {
		top := float64(display.Height-y) * w.scale
		for x := 0; x < display.Width; x++ {
			if !frame.Pixel(x, y) {
				continue
			}
			left := float64(x) * w.scale
			w.pixels.Push(pixel.V(left, top-w.scale), pixel.V(left+w.scale, top))
			w.pixels.Rectangle(0)
		}
	}
}

// Update presents the last drawn frame and processes window events.
func (w *Window) Update() {
	w.Window.Clear(colornames.Black)
	w.pixels.Draw(w.Window)
	w.Window.Update()
}
