package app

import (
	"time"

	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/searchfield/component/search"
	"github.com/xhd2015/searchfield/models"
)

const (
	CtrlCExitDelayMs = 1000

	// KeyCtrlE toggles the error flag. Ctrl-Y never reaches the dom tree,
	// the program model handles it before dispatch.
	KeyCtrlE = "ctrl+e"
)

type State struct {
	Placeholder string
	Items       []string

	Input  models.InputState
	Search search.State

	// ExternalError is the flag handed to the field, toggled with Ctrl-E.
	ExternalError bool

	// Query is the last committed search term.
	Query    string
	Searches int

	StatusBar StatusBar

	Quit    func()
	Refresh func()

	OnSearch func(query string)
	OnCopy   func(text string) error

	LastCtrlC time.Time
}

type StatusBar struct {
	Message string
	Error   string
}

func (state *State) ClearSearch() {
	state.Query = ""
	state.Input.Reset()
}

func App(state *State, window *dom.Window) *dom.Node {
	return dom.Div(dom.DivProps{
		OnKeyDown: func(event *dom.DOMEvent) {
			keyEvent := event.KeydownEvent
			if keyEvent == nil {
				return
			}
			switch keyEvent.KeyType {
			case dom.KeyTypeCtrlC:
				if time.Since(state.LastCtrlC) < time.Millisecond*CtrlCExitDelayMs {
					state.Quit()
					return
				}
				state.LastCtrlC = time.Now()

				go func() {
					time.Sleep(time.Millisecond * CtrlCExitDelayMs)
					state.Refresh()
				}()
				return
			case dom.KeyTypeEsc:
				state.ClearSearch()
				return
			}
			if string(keyEvent.KeyType) == KeyCtrlE {
				state.ExternalError = !state.ExternalError
			}
		},
	},
		dom.H1(dom.DivProps{}, dom.Text("Search", styles.Style{
			Bold:        true,
			BorderColor: "orange",
		})),
		MainPage(state, window),
		AppStatusBar(state),
		func() *dom.Node {
			if time.Since(state.LastCtrlC) < time.Millisecond*CtrlCExitDelayMs {
				return dom.Text("press Ctrl-C again to exit", styles.Style{
					Bold:  true,
					Color: "1",
				})
			}
			return dom.Text("enter: search  esc: clear  ctrl-e: toggle error  ctrl-y: copy")
		}(),
	)
}

// Submit commits a search term, the same way the field does on Enter.
func (state *State) Submit(query string) {
	state.Query = query
	state.Searches++
	state.StatusBar.Error = ""
	state.StatusBar.Message = ""
	if state.OnSearch != nil {
		state.OnSearch(query)
	}
}

func (state *State) CopyQuery() {
	state.StatusBar.Error = ""
	state.StatusBar.Message = ""
	if state.Query == "" {
		state.StatusBar.Error = "nothing to copy"
		return
	}
	if state.OnCopy == nil {
		return
	}
	err := state.OnCopy(state.Query)
	if err != nil {
		state.StatusBar.Error = "copy failed: " + err.Error()
		return
	}
	state.StatusBar.Message = "copied " + state.Query
}

func bindRef(state *State) *search.InputRef {
	return search.BindInputRef(&state.Input)
}
