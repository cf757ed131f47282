// Package terminal draws rendered frames into a terminal with half block cells and turns
// mouse, key and resize events into view inputs.
package terminal

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/rocketscienceinc/connect5-client/internal/scene"
)

// StatusRows is the number of text rows below the frame.
const StatusRows = 2

const halfBlock = '▀'

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(0x1a, 0x1a, 0x2e))

// Screen presents frames and status text and reports input.
type Screen struct {
	logger *slog.Logger
	screen tcell.Screen

	status  [StatusRows]string
	pressed bool
}

func New(logger *slog.Logger, screen tcell.Screen) *Screen {
	return &Screen{
		logger: logger.With("component", "terminal"),
		screen: screen,
	}
}

func (that *Screen) Init() error {
	if err := that.screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}

	that.screen.EnableMouse()
	that.screen.HideCursor()
	that.screen.Clear()

	return nil
}

// Fini restores the terminal. Poll returns afterwards.
func (that *Screen) Fini() {
	that.screen.Fini()
}

// Viewport is the frame size in pixels: two pixels per cell vertically.
func (that *Screen) Viewport() scene.Viewport {
	width, height := that.screen.Size()

	return scene.Viewport{
		Width:  width,
		Height: max(height-StatusRows, 0) * 2,
	}
}

// SetStatus replaces the text rows shown under the frame.
func (that *Screen) SetStatus(lines ...string) {
	for i := range that.status {
		that.status[i] = ""
		if i < len(lines) {
			that.status[i] = lines[i]
		}
	}
}

// Present blits the frame and the status rows and shows them.
func (that *Screen) Present(frame image.Image) {
	width, height := that.screen.Size()
	rows := max(height-StatusRows, 0)
	bounds := frame.Bounds()

	for y := 0; y < rows; y++ {
		for x := 0; x < width; x++ {
			top := pixel(frame, bounds.Min.X+x, bounds.Min.Y+2*y)
			bottom := pixel(frame, bounds.Min.X+x, bounds.Min.Y+2*y+1)

			that.screen.SetContent(x, y, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}

	for i, line := range that.status {
		that.drawText(rows+i, width, line)
	}

	that.screen.Show()
}

func (that *Screen) drawText(row, width int, text string) {
	text = runewidth.Truncate(text, width, "…")

	x := 0
	for _, r := range text {
		that.screen.SetContent(x, row, r, nil, statusStyle)
		x += runewidth.RuneWidth(r)
	}

	for ; x < width; x++ {
		that.screen.SetContent(x, row, ' ', nil, statusStyle)
	}
}

// Poll blocks reading terminal events and hands each input to sink until Fini is called.
func (that *Screen) Poll(sink func(Input)) {
	for {
		ev := that.screen.PollEvent()
		if ev == nil {
			return
		}

		if input, ok := that.translate(ev); ok {
			sink(input)
		}
	}
}

func (that *Screen) translate(ev tcell.Event) (Input, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		that.screen.Sync()
		return Resize{Viewport: that.Viewport()}, true

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		clicked := down && !that.pressed
		that.pressed = down

		if !clicked {
			return nil, false
		}

		x, y := ev.Position()
		if y*2 >= that.Viewport().Height {
			return nil, false
		}

		return Pointer{X: float64(x) + 0.5, Y: float64(y*2) + 1}, true

	case *tcell.EventKey:
		command, ok := commandFor(ev)
		if ok {
			that.logger.Debug("command", "command", command.String())
		}

		return command, ok
	}

	return nil, false
}

func commandFor(ev *tcell.EventKey) (Command, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return CommandSubmit, true
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return CommandUndo, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit, true
	case tcell.KeyTab:
		return CommandToggle, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'v', 'V':
			return CommandVertical, true
		case 'h', 'H':
			return CommandHorizontal, true
		case ' ', 'o':
			return CommandToggle, true
		case 'u':
			return CommandUndo, true
		case 's':
			return CommandStart, true
		case 'p':
			return CommandSnapshot, true
		case 'q':
			return CommandQuit, true
		}
	}

	return 0, false
}

func pixel(frame image.Image, x, y int) tcell.Color {
	if !(image.Point{X: x, Y: y}).In(frame.Bounds()) {
		return tcell.NewRGBColor(0, 0, 0)
	}

	c := color.RGBAModel.Convert(frame.At(x, y)).(color.RGBA)

	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
