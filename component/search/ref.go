package search

import "github.com/xhd2015/searchfield/models"

// InputRef is a handle to the rendered input. The parent owns it and
// passes it to SearchField, which binds the input to it; the parent may
// then read, reset or focus the field directly.
type InputRef struct {
	state *models.InputState
}

func NewInputRef() *InputRef {
	return &InputRef{state: &models.InputState{}}
}

// BindInputRef wraps an existing input state, e.g. one embedded in a
// larger page state.
func BindInputRef(state *models.InputState) *InputRef {
	if state == nil {
		state = &models.InputState{}
	}
	return &InputRef{state: state}
}

func (r *InputRef) Value() string {
	if r == nil {
		return ""
	}
	return r.state.Value
}

func (r *InputRef) SetValue(value string) {
	r.state.Value = value
	r.state.CursorPosition = runeLength(value)
}

func (r *InputRef) Focus() {
	r.state.Focused = true
}

func (r *InputRef) Blur() {
	r.state.Focused = false
}

func (r *InputRef) Focused() bool {
	if r == nil {
		return false
	}
	return r.state.Focused
}

func (r *InputRef) CursorPosition() int {
	return r.state.CursorPosition
}

// MoveCursor clamps position to [0, len+1], len counted in runes.
func (r *InputRef) MoveCursor(position int) {
	if position < 0 {
		position = 0
	}
	n := runeLength(r.state.Value)
	if position > n+1 {
		position = n + 1
	}
	r.state.CursorPosition = position
}

func (r *InputRef) Reset() {
	r.state.Reset()
}

func runeLength(s string) int {
	return len([]rune(s))
}
