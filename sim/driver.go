package sim

import "github.com/gdamore/tcell/v2"

// ScreenDriver abstracts the terminal surface the simulator window draws
// on. It mirrors the subset of tcell.Screen functionality the window
// requires so tests can swap in a stub implementation.
type ScreenDriver interface {
	Init() error
	Fini()
	Size() (int, int)
	SetStyle(style tcell.Style)
	HideCursor()
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Show()
	Sync()
	PollEvent() tcell.Event
}

// TcellDriver adapts a tcell.Screen to the ScreenDriver interface.
type TcellDriver struct {
	screen tcell.Screen
}

// NewTcellDriver wraps the provided screen.
func NewTcellDriver(screen tcell.Screen) *TcellDriver {
	return &TcellDriver{screen: screen}
}

func (d *TcellDriver) Init() error {
	return d.screen.Init()
}

func (d *TcellDriver) Fini() {
	d.screen.Fini()
}

func (d *TcellDriver) Size() (int, int) {
	return d.screen.Size()
}

func (d *TcellDriver) SetStyle(style tcell.Style) {
	d.screen.SetStyle(style)
}

func (d *TcellDriver) HideCursor() {
	d.screen.HideCursor()
}

func (d *TcellDriver) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	d.screen.SetContent(x, y, mainc, combc, style)
}

func (d *TcellDriver) Show() {
	d.screen.Show()
}

func (d *TcellDriver) Sync() {
	d.screen.Sync()
}

func (d *TcellDriver) PollEvent() tcell.Event {
	return d.screen.PollEvent()
}

// Underlying exposes the wrapped tcell.Screen for code paths that need
// direct access.
func (d *TcellDriver) Underlying() tcell.Screen {
	return d.screen
}
