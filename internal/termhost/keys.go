package termhost

import (
	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gpucontext"
)

var specialKeys = map[tcell.Key]gpucontext.Key{
	tcell.KeyEscape:    gpucontext.KeyEscape,
	tcell.KeyTab:       gpucontext.KeyTab,
	tcell.KeyBackspace: gpucontext.KeyBackspace,
	tcell.KeyEnter:     gpucontext.KeyEnter,
	tcell.KeyInsert:    gpucontext.KeyInsert,
	tcell.KeyDelete:    gpucontext.KeyDelete,
	tcell.KeyHome:      gpucontext.KeyHome,
	tcell.KeyEnd:       gpucontext.KeyEnd,
	tcell.KeyPgUp:      gpucontext.KeyPageUp,
	tcell.KeyPgDn:      gpucontext.KeyPageDown,
	tcell.KeyLeft:      gpucontext.KeyLeft,
	tcell.KeyRight:     gpucontext.KeyRight,
	tcell.KeyUp:        gpucontext.KeyUp,
	tcell.KeyDown:      gpucontext.KeyDown,
	tcell.KeyF1:        gpucontext.KeyF1,
	tcell.KeyF2:        gpucontext.KeyF2,
	tcell.KeyF3:        gpucontext.KeyF3,
	tcell.KeyF4:        gpucontext.KeyF4,
	tcell.KeyF5:        gpucontext.KeyF5,
	tcell.KeyF6:        gpucontext.KeyF6,
	tcell.KeyF7:        gpucontext.KeyF7,
	tcell.KeyF8:        gpucontext.KeyF8,
	tcell.KeyF9:        gpucontext.KeyF9,
	tcell.KeyF10:       gpucontext.KeyF10,
	tcell.KeyF11:       gpucontext.KeyF11,
	tcell.KeyF12:       gpucontext.KeyF12,
}

var runeKeys = map[rune]gpucontext.Key{
	' ':  gpucontext.KeySpace,
	'-':  gpucontext.KeyMinus,
	'=':  gpucontext.KeyEqual,
	'[':  gpucontext.KeyLeftBracket,
	']':  gpucontext.KeyRightBracket,
	'\\': gpucontext.KeyBackslash,
	';':  gpucontext.KeySemicolon,
	'\'': gpucontext.KeyApostrophe,
	'`':  gpucontext.KeyGrave,
	',':  gpucontext.KeyComma,
	'.':  gpucontext.KeyPeriod,
	'/':  gpucontext.KeySlash,
}

// convertKey maps a tcell key event to a gpucontext key code and modifiers.
// Keys without a gpucontext equivalent map to KeyUnknown.
func convertKey(ev *tcell.EventKey) (gpucontext.Key, gpucontext.Modifiers) {
	mods := convertMods(ev.Modifiers())

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		return runeKey(ev.Rune(), &mods), mods
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		// Tab, Enter and Backspace share codes with Ctrl-I, Ctrl-M and Ctrl-H.
		if gk, ok := specialKeys[k]; ok && ev.Modifiers()&tcell.ModCtrl == 0 {
			return gk, mods
		}
		return gpucontext.KeyA + gpucontext.Key(k-tcell.KeyCtrlA), mods | gpucontext.ModControl
	default:
		return specialKeys[k], mods
	}
}

func runeKey(r rune, mods *gpucontext.Modifiers) gpucontext.Key {
	switch {
	case r >= 'a' && r <= 'z':
		return gpucontext.KeyA + gpucontext.Key(r-'a')
	case r >= 'A' && r <= 'Z':
		*mods |= gpucontext.ModShift
		return gpucontext.KeyA + gpucontext.Key(r-'A')
	case r >= '0' && r <= '9':
		return gpucontext.Key0 + gpucontext.Key(r-'0')
	}
	return runeKeys[r]
}

func convertMods(m tcell.ModMask) gpucontext.Modifiers {
	var mods gpucontext.Modifiers
	if m&tcell.ModShift != 0 {
		mods |= gpucontext.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= gpucontext.ModControl
	}
	if m&tcell.ModAlt != 0 {
		mods |= gpucontext.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= gpucontext.ModSuper
	}
	return mods
}

// isQuit reports whether ev is one of the quit keys: q, Esc or Ctrl-C.
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
