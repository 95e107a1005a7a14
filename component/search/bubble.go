package search

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xhd2015/searchfield/models"
)

var (
	bubbleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			PaddingLeft(1)
	bubbleFocusBorder = bubbleBorder.BorderForeground(lipgloss.Color("99"))
	bubbleErrorBorder = bubbleBorder.BorderForeground(lipgloss.Color("203"))
	bubbleLabel       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	bubbleError       = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type BubbleOptions struct {
	Placeholder string
	OnSearch    func(value string)
	Width       int
}

// Bubble is the search field as a plain bubbletea model, for programs
// that do not render through the dom package. Editing is done by
// bubbles/textinput; validation follows the same State rules.
type Bubble struct {
	input    textinput.Model
	state    State
	onSearch func(string)
}

func NewBubble(opts BubbleOptions) *Bubble {
	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	if ti.Placeholder == "" {
		ti.Placeholder = DefaultPlaceholder
	}
	ti.Width = opts.Width
	if ti.Width == 0 {
		ti.Width = DefaultWidth
	}
	ti.Prompt = ""
	ti.Focus()

	return &Bubble{
		input:    ti,
		onSearch: opts.OnSearch,
	}
}

func (b *Bubble) Init() tea.Cmd {
	return textinput.Blink
}

func (b *Bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		ref := BindInputRef(&models.InputState{Value: b.input.Value()})
		if b.state.KeyDown(msg.Type == tea.KeyEnter, ref, b.onSearch) {
			return b, nil
		}
	}
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b, cmd
}

func (b *Bubble) View() string {
	border := bubbleBorder
	if b.state.HasError {
		border = bubbleErrorBorder
	} else if b.input.Focused() {
		border = bubbleFocusBorder
	}

	view := bubbleLabel.Render(label) + "\n" + border.Render(b.input.View())
	if b.state.HasError {
		view += "\n" + bubbleError.Render(b.state.ErrorMessage)
	}
	return view
}

// SetError is the caller's error flag for this model.
func (b *Bubble) SetError(hasError bool) {
	b.state.ObserveError(&hasError)
}

func (b *Bubble) HasError() bool {
	return b.state.HasError
}

func (b *Bubble) ErrorMessage() string {
	return b.state.ErrorMessage
}

func (b *Bubble) Value() string {
	return b.input.Value()
}

func (b *Bubble) SetValue(value string) {
	b.input.SetValue(value)
}

func (b *Bubble) Focus() tea.Cmd {
	return b.input.Focus()
}

func (b *Bubble) Blur() {
	b.input.Blur()
}
