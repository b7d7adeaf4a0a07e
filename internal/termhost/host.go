// Package termhost runs the pixel grid demo inside a terminal.
//
// A Host wraps a tcell.Screen and presents it to the rest of the module as
// a gpucontext window: it is an EventSource (mouse, wheel, keys, focus,
// resize) and a WindowProvider whose viewport has one pixel per column and
// two pixels per row. Each character cell shows two vertically stacked
// pixels with the upper half block glyph.
package termhost

import (
	"image"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gpucontext"
)

// upperHalf draws the top pixel in the foreground color and the bottom
// pixel in the background color.
const upperHalf = '▀'

type callbacks struct {
	keyPress   func(gpucontext.Key, gpucontext.Modifiers)
	keyRelease func(gpucontext.Key, gpucontext.Modifiers)
	textInput  func(string)
	mouseMove  func(x, y float64)
	mousePress func(gpucontext.MouseButton, float64, float64)
	mouseUp    func(gpucontext.MouseButton, float64, float64)
	scroll     func(dx, dy float64)
	resize     func(w, h int)
	focus      func(bool)
}

// Host adapts a tcell.Screen to gpucontext.EventSource and
// gpucontext.WindowProvider.
//
// Callbacks run on the goroutine that calls Poll. Registering a callback
// replaces the previous one for that event.
type Host struct {
	screen tcell.Screen

	mu sync.Mutex
	cb callbacks

	buttons      tcell.ButtonMask
	lastX, lastY int
	quit         bool
	redraw       bool
	status       string
}

// Open creates a Host on the controlling terminal.
func Open() (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return New(screen)
}

// New initializes screen and wraps it. Mouse and focus reporting are
// enabled and the text cursor is hidden.
func New(screen tcell.Screen) (*Host, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()
	return &Host{
		screen: screen,
		lastX:  -1,
		lastY:  -1,
		redraw: true,
	}, nil
}

// Close restores the terminal.
func (h *Host) Close() {
	h.screen.Fini()
}

// Size implements gpucontext.WindowProvider. The bottom row is reserved
// for the status line.
func (h *Host) Size() (width, height int) {
	cols, rows := h.screen.Size()
	return cols, max(rows-1, 0) * 2
}

// ScaleFactor implements gpucontext.WindowProvider.
func (h *Host) ScaleFactor() float64 {
	return 1
}

// RequestRedraw implements gpucontext.WindowProvider.
func (h *Host) RequestRedraw() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.redraw = true
}

// TakeRedraw reports whether a redraw was requested since the last call
// and clears the request.
func (h *Host) TakeRedraw() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	r := h.redraw
	h.redraw = false
	return r
}

// Quit reports whether the user asked to leave (q, Esc or Ctrl-C).
func (h *Host) Quit() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.quit
}

// SetStatus sets the text of the status line drawn by Present.
func (h *Host) SetStatus(s string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = s
}

// Poll dispatches every pending terminal event without blocking.
// It returns false once quit has been requested.
func (h *Host) Poll() bool {
	for h.screen.HasPendingEvent() {
		ev := h.screen.PollEvent()
		if ev == nil {
			break
		}
		h.dispatch(ev)
	}
	return !h.Quit()
}

func (h *Host) dispatch(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.RequestRedraw()
		if fn := h.handlers().resize; fn != nil {
			fn(h.Size())
		}
	case *tcell.EventFocus:
		if fn := h.handlers().focus; fn != nil {
			fn(ev.Focused)
		}
	case *tcell.EventKey:
		h.dispatchKey(ev)
	case *tcell.EventMouse:
		h.dispatchMouse(ev)
	}
}

func (h *Host) dispatchKey(ev *tcell.EventKey) {
	key, mods := convertKey(ev)
	if isQuit(ev) {
		h.mu.Lock()
		h.quit = true
		h.mu.Unlock()
	}

	hs := h.handlers()
	if hs.keyPress != nil && key != gpucontext.KeyUnknown {
		hs.keyPress(key, mods)
	}
	if hs.textInput != nil && ev.Key() == tcell.KeyRune {
		hs.textInput(string(ev.Rune()))
	}
}

// mouseButtons pairs tcell buttons with their gpucontext equivalents.
var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button gpucontext.MouseButton
}{
	{tcell.ButtonPrimary, gpucontext.MouseButtonLeft},
	{tcell.ButtonSecondary, gpucontext.MouseButtonRight},
	{tcell.ButtonMiddle, gpucontext.MouseButtonMiddle},
}

func (h *Host) dispatchMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	x, y := cellCenter(cx, cy)
	btns := ev.Buttons()
	hs := h.handlers()

	h.mu.Lock()
	moved := cx != h.lastX || cy != h.lastY
	h.lastX, h.lastY = cx, cy
	prev := h.buttons
	h.buttons = btns & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)
	h.mu.Unlock()

	if moved && hs.mouseMove != nil {
		hs.mouseMove(x, y)
	}

	if hs.scroll != nil {
		// gpucontext: positive dy scrolls down, positive dx scrolls right.
		switch {
		case btns&tcell.WheelUp != 0:
			hs.scroll(0, -1)
		case btns&tcell.WheelDown != 0:
			hs.scroll(0, 1)
		case btns&tcell.WheelLeft != 0:
			hs.scroll(-1, 0)
		case btns&tcell.WheelRight != 0:
			hs.scroll(1, 0)
		}
	}

	for _, mb := range mouseButtons {
		was, is := prev&mb.mask != 0, btns&mb.mask != 0
		switch {
		case is && !was && hs.mousePress != nil:
			hs.mousePress(mb.button, x, y)
		case was && !is && hs.mouseUp != nil:
			hs.mouseUp(mb.button, x, y)
		}
	}
}

// cellCenter maps a character cell to the center of its two pixels.
func cellCenter(cx, cy int) (x, y float64) {
	return float64(cx) + 0.5, float64(cy)*2 + 1
}

// handlers returns a snapshot of the registered callbacks so they can be
// invoked without holding the lock.
func (h *Host) handlers() callbacks {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cb
}

// Present draws img into the terminal, two pixels per cell, followed by
// the status line, and shows the result. Pixels outside img are black.
func (h *Host) Present(img *image.RGBA) {
	cols, rows := h.screen.Size()
	for cy := 0; cy < rows-1; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := pixelColor(img, cx, cy*2)
			bottom := pixelColor(img, cx, cy*2+1)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			h.screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}

	h.mu.Lock()
	status := []rune(h.status)
	h.mu.Unlock()
	if rows > 0 {
		style := tcell.StyleDefault.Reverse(true)
		for cx := 0; cx < cols; cx++ {
			r := ' '
			if cx < len(status) {
				r = status[cx]
			}
			h.screen.SetContent(cx, rows-1, r, nil, style)
		}
	}
	h.screen.Show()
}

func pixelColor(img *image.RGBA, x, y int) tcell.Color {
	if !(image.Point{X: x, Y: y}.In(img.Rect)) {
		return tcell.NewRGBColor(0, 0, 0)
	}
	c := img.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// OnKeyPress implements gpucontext.EventSource.
func (h *Host) OnKeyPress(fn func(key gpucontext.Key, mods gpucontext.Modifiers)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cb.keyPress = fn
}

// OnKeyRelease implements gpucontext.EventSource. Terminals do not report
// key releases, so fn is never called.
func (h *Host) OnKeyRelease(fn func(key gpucontext.Key, mods gpucontext.Modifiers)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cb.keyRelease = fn
}

// OnTextInput implements gpucontext.EventSource.
func (h *Host) OnTextInput(fn func(text string)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cb.textInput = fn
}

// OnMouseMove implements gpucontext.EventSource.
func (h *Host) OnMouseMove(fn func(x, y float64)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cb.mouseMove = fn
}

// OnMousePress implements gpucontext.EventSource.
func (h *Host) OnMousePress(fn func(button gpucontext.MouseButton, x, y float64)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cb.mousePress = fn
}

// OnMouseRelease implements gpucontext.EventSource.
func (h *Host) OnMouseRelease(fn func(button gpucontext.MouseButton, x, y float64)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cb.mouseUp = fn
}

// OnScroll implements gpucontext.EventSource.
func (h *Host) OnScroll(fn func(dx, dy float64)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cb.scroll = fn
}

// OnResize implements gpucontext.EventSource. fn receives the viewport
// size in pixels.
func (h *Host) OnResize(fn func(width, height int)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cb.resize = fn
}

// OnFocus implements gpucontext.EventSource.
func (h *Host) OnFocus(fn func(focused bool)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cb.focus = fn
}

// OnIMECompositionStart implements gpucontext.EventSource. Terminals
// deliver composed text directly, so IME callbacks are never called.
func (h *Host) OnIMECompositionStart(func()) {}

// OnIMECompositionUpdate implements gpucontext.EventSource.
func (h *Host) OnIMECompositionUpdate(func(gpucontext.IMEState)) {}

// OnIMECompositionEnd implements gpucontext.EventSource.
func (h *Host) OnIMECompositionEnd(func(string)) {}
