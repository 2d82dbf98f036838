package sim

import (
	"fmt"
	"image"
	"sync"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/sparkline"
)

// halfBlock paints the cell's foreground in the upper half and its
// background in the lower half, giving two vertical pixels per cell.
const halfBlock = '▀'

// Window displays frames on a terminal. It owns the screen driver for
// its lifetime and runs one goroutine translating key events into a quit
// signal; Update and Close must be called from a single goroutine.
type Window struct {
	driver ScreenDriver
	theme  Theme

	frame *image.RGBA // reused scale target, cols x 2*rows

	quit     chan struct{}
	quitOnce sync.Once
	finiOnce sync.Once
}

// Option configures a Window during creation.
type Option func(*windowOptions)

type windowOptions struct {
	driver ScreenDriver
	theme  Theme
}

func defaultWindowOptions() windowOptions {
	return windowOptions{theme: ThemeDefault}
}

// WithTheme sets the color theme used to paint frames.
func WithTheme(t Theme) Option {
	return func(o *windowOptions) {
		o.theme = t
	}
}

// WithDriver sets a custom screen driver. Use this for dependency
// injection in tests or to reuse an existing tcell.Screen.
func WithDriver(d ScreenDriver) Option {
	return func(o *windowOptions) {
		o.driver = d
	}
}

// New creates a simulator window and initializes its screen. Without
// WithDriver it allocates the process's real terminal via tcell.
//
// The window quits on Escape, Ctrl+C or 'q'; watch Quit in the render
// loop. Always call Close to restore the terminal.
func New(opts ...Option) (*Window, error) {
	options := defaultWindowOptions()
	for _, opt := range opts {
		opt(&options)
	}

	driver := options.driver
	if driver == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("sim: create screen: %w", err)
		}
		driver = NewTcellDriver(screen)
	}

	if err := driver.Init(); err != nil {
		return nil, fmt.Errorf("sim: init screen: %w", err)
	}
	driver.SetStyle(tcell.StyleDefault)
	driver.HideCursor()

	w := &Window{
		driver: driver,
		theme:  options.theme,
		quit:   make(chan struct{}),
	}

	cols, rows := driver.Size()
	sparkline.Logger().Debug("sim: window ready",
		"theme", w.theme.Name, "cols", cols, "rows", rows)

	go w.eventLoop()
	return w, nil
}

// Quit returns a channel that is closed when the user asks to quit
// (Escape, Ctrl+C or 'q') or the window is closed.
func (w *Window) Quit() <-chan struct{} {
	return w.quit
}

// Update scales img to the terminal cell grid and paints it with
// half-block characters, two vertical pixels per cell. The aspect ratio
// follows the terminal, not the image.
func (w *Window) Update(img image.Image) {
	cols, rows := w.driver.Size()
	if cols < 1 || rows < 1 {
		return
	}

	pw, ph := cols, rows*2
	if w.frame == nil || w.frame.Bounds().Dx() != pw || w.frame.Bounds().Dy() != ph {
		w.frame = image.NewRGBA(image.Rect(0, 0, pw, ph))
	}
	// Nearest neighbor keeps single-pixel strokes crisp.
	xdraw.NearestNeighbor.Scale(w.frame, w.frame.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := w.theme.CellColor(w.frame.RGBAAt(x, 2*y))
			bottom := w.theme.CellColor(w.frame.RGBAAt(x, 2*y+1))
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			w.driver.SetContent(x, y, halfBlock, nil, style)
		}
	}
	w.driver.Show()
}

// Close releases the terminal. It is safe to call more than once and
// unblocks anyone waiting on Quit.
func (w *Window) Close() {
	w.quitOnce.Do(func() { close(w.quit) })
	w.finiOnce.Do(w.driver.Fini)
}

// eventLoop watches for quit keys until the screen is finalized.
func (w *Window) eventLoop() {
	for {
		ev := w.driver.PollEvent()
		if ev == nil {
			// Screen finalized.
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				w.quitOnce.Do(func() { close(w.quit) })
				return
			}
		case *tcell.EventResize:
			w.driver.Sync()
		}
	}
}
