package term

import "github.com/gdamore/tcell/v2"

// Input latches taps from terminal events until the next frame polls them.
type Input struct {
	pending bool
	buttons tcell.ButtonMask
}

func (i *Input) Touch() {
	i.pending = true
}

func (i *Input) JustTouched() bool {
	t := i.pending
	i.pending = false
	return t
}

// mouse reports a tap when the primary button goes down.
func (i *Input) mouse(ev *tcell.EventMouse) {
	btn := ev.Buttons()
	if btn&tcell.Button1 != 0 && i.buttons&tcell.Button1 == 0 {
		i.Touch()
	}
	i.buttons = btn
}
