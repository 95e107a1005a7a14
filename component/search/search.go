package search

import (
	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
)

const (
	DefaultPlaceholder = "Search"
	DefaultWidth       = 50

	label = "Search"
)

type Props struct {
	// OnSearch receives the committed, non-empty value.
	OnSearch    func(value string)
	Placeholder string
	Width       int

	// Error is the caller's error flag. nil means false.
	Error *bool

	Ref *InputRef

	// State must outlive a single render, like the input state behind Ref.
	// Without a Ref the field keeps its value in State.
	State *State
}

// SearchField renders a labeled input that reports its value to
// OnSearch when Enter is pressed, and shows an inline message instead
// when the value is empty.
func SearchField(props Props) *dom.Node {
	state := props.State
	if state == nil {
		state = &State{}
	}
	state.ObserveError(props.Error)

	ref := props.Ref
	if ref == nil {
		ref = state.ownRef()
	}

	placeholder := props.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	width := props.Width
	if width == 0 {
		width = DefaultWidth
	}

	borderColor := colors.GREY_TEXT
	if state.HasError {
		borderColor = colors.RED_ERROR
	} else if ref.Focused() {
		borderColor = colors.PURPLE_PRIMARY
	}

	return dom.Div(dom.DivProps{},
		dom.Text(label, styles.Style{
			Color:  colors.GREY_TEXT,
			Italic: true,
		}),
		dom.Div(dom.DivProps{
			Style: styles.Style{
				BorderRouned: true,
				BorderColor:  borderColor,
			},
		},
			dom.Input(dom.InputProps{
				Placeholder:    placeholder,
				Value:          ref.Value(),
				Focused:        ref.Focused(),
				CursorPosition: ref.CursorPosition(),
				Focusable:      dom.Focusable(true),
				Width:          width,
				OnFocus: func() {
					ref.Focus()
				},
				OnBlur: func() {
					ref.Blur()
				},
				OnChange: func(value string) {
					ref.state.Value = value
				},
				OnCursorMove: func(position int) {
					ref.MoveCursor(position)
				},
				OnKeyDown: func(event *dom.DOMEvent) {
					enter := event.KeydownEvent != nil && event.KeydownEvent.KeyType == dom.KeyTypeEnter
					if state.KeyDown(enter, ref, props.OnSearch) {
						event.PreventDefault()
					}
				},
			}),
		),
		func() *dom.Node {
			if !state.HasError {
				return nil
			}
			return dom.Text(state.ErrorMessage, styles.Style{
				Color: colors.RED_ERROR,
			})
		}(),
	)
}
