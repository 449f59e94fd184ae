package display

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ledps/render"
)

// LED glyphs; each LED spans two terminal cells to keep pixels square
const (
	ledOn  = '●'
	ledOff = '·'
	// CellsPerLED is the horizontal terminal cells used per LED
	CellsPerLED = 2
)

// Terminal draws an LED matrix onto a tcell screen
type Terminal struct {
	screen        tcell.Screen
	originX       int
	originY       int
	width, height int
	background    tcell.Style
	offStyle      tcell.Style
}

// NewTerminal creates a sink for a width x height matrix drawn at (originX, originY)
func NewTerminal(screen tcell.Screen, originX, originY, width, height int) *Terminal {
	bg := tcell.StyleDefault.Background(tcell.ColorBlack)
	return &Terminal{
		screen:     screen,
		originX:    originX,
		originY:    originY,
		width:      width,
		height:     height,
		background: bg,
		offStyle:   bg.Foreground(tcell.NewRGBColor(40, 40, 48)),
	}
}

// Fits reports whether the matrix fits on the current screen
func (t *Terminal) Fits() bool {
	sw, sh := t.screen.Size()
	return t.originX+t.width*CellsPerLED <= sw && t.originY+t.height <= sh
}

// SetPixel implements render.Sink
func (t *Terminal) SetPixel(x, y int, c render.HSV) {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return
	}
	sx := t.originX + x*CellsPerLED
	sy := t.originY + y
	if c.V == 0 {
		t.screen.SetContent(sx, sy, ledOff, nil, t.offStyle)
		t.screen.SetContent(sx+1, sy, ' ', nil, t.background)
		return
	}
	rgb := ToRGB(c)
	style := t.background.Foreground(tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B)))
	t.screen.SetContent(sx, sy, ledOn, nil, style)
	t.screen.SetContent(sx+1, sy, ' ', nil, t.background)
}

// Text writes a status line at the given screen row
func (t *Terminal) Text(x, y int, s string, fg tcell.Color) {
	style := t.background.Foreground(fg)
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Show presents the frame
func (t *Terminal) Show() {
	t.screen.Show()
}
