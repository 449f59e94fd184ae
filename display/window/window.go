// Package window previews an LED matrix in a desktop window.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/ledps/display"
	"github.com/lixenwraith/ledps/render"
)

// Window is an ebiten game that calls a step function once per update and
// shows the last flushed frame scaled up with nearest filtering
// It implements render.Sink; frames are written on the ebiten update goroutine
type Window struct {
	width, height int
	scale         int

	frame   *display.Memory
	pixels  []byte
	texture *ebiten.Image

	step  func(sink render.Sink) error
	binds map[ebiten.Key]func()
}

// New creates a window for a width x height matrix; each LED is scale
// screen pixels
func New(width, height, scale int, step func(sink render.Sink) error) *Window {
	return &Window{
		width:  width,
		height: height,
		scale:  max(scale, 1),
		frame:  display.NewMemory(width, height),
		step:   step,
		binds:  make(map[ebiten.Key]func()),
	}
}

// Bind runs fn when key is pressed; Escape always quits
func (w *Window) Bind(key ebiten.Key, fn func()) {
	w.binds[key] = fn
}

// SetPixel implements render.Sink
func (w *Window) SetPixel(x, y int, c render.HSV) {
	w.frame.SetPixel(x, y, c)
}

func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, fn := range w.binds {
		if inpututil.IsKeyJustPressed(key) {
			fn()
		}
	}
	return w.step(w)
}

func (w *Window) Draw(screen *ebiten.Image) {
	if w.texture == nil {
		w.texture = ebiten.NewImage(w.width, w.height)
	}
	w.pixels = w.frame.RGBA(w.pixels)
	w.texture.WritePixels(w.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.scale), float64(w.scale))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(w.texture, op)
}

func (w *Window) Layout(outW, outH int) (int, int) {
	return w.width * w.scale, w.height * w.scale
}

// Run opens the window and blocks until it is closed or Escape is pressed
// tps is the update rate, and thus the simulation tick rate
func (w *Window) Run(title string, tps int) error {
	ebiten.SetWindowSize(w.width*w.scale, w.height*w.scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(tps)
	return ebiten.RunGame(w)
}
