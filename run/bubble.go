package run

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xhd2015/searchfield/app"
	"github.com/xhd2015/searchfield/component/search"
	"github.com/xhd2015/searchfield/log"
	uisearch "github.com/xhd2015/searchfield/ui/search"
)

var (
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statusErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

type ctrlCExpiredMsg struct{}

// bubbleModel hosts the textinput-based field in a plain bubbletea program.
type bubbleModel struct {
	field     *search.Bubble
	items     []string
	query     string
	errorFlag bool

	copy        func(text string) error
	status      string
	statusError string

	lastCtrlC time.Time
}

func newBubbleModel(placeholder string, items []string, startWithError bool) *bubbleModel {
	m := &bubbleModel{
		items:     items,
		errorFlag: startWithError,
		copy:      copyToClipboard,
	}
	m.field = search.NewBubble(search.BubbleOptions{
		Placeholder: placeholder,
		OnSearch: func(query string) {
			m.query = query
			m.status = ""
			m.statusError = ""
			log.Info(context.Background(), "search committed", "query", query)
		},
	})
	m.field.SetError(startWithError)
	return m
}

func runBubble(placeholder string, items []string, startWithError bool) (string, error) {
	m := newBubbleModel(placeholder, items, startWithError)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return "", err
	}
	return m.query, nil
}

func (m *bubbleModel) Init() tea.Cmd {
	return m.field.Init()
}

func (m *bubbleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ctrlCExpiredMsg:
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			if m.ctrlCPending() {
				return m, tea.Quit
			}
			m.lastCtrlC = time.Now()
			return m, tea.Tick(ctrlCWindow, func(time.Time) tea.Msg {
				return ctrlCExpiredMsg{}
			})
		case tea.KeyCtrlE:
			m.errorFlag = !m.errorFlag
			m.field.SetError(m.errorFlag)
			return m, nil
		case tea.KeyCtrlY:
			m.copyQuery()
			return m, nil
		case tea.KeyEsc:
			m.query = ""
			m.field.SetValue("")
			return m, nil
		}
	}
	_, cmd := m.field.Update(msg)
	return m, cmd
}

const ctrlCWindow = time.Millisecond * app.CtrlCExitDelayMs

func (m *bubbleModel) ctrlCPending() bool {
	return time.Since(m.lastCtrlC) < ctrlCWindow
}

func (m *bubbleModel) copyQuery() {
	m.status = ""
	m.statusError = ""
	if m.query == "" {
		m.statusError = "nothing to copy"
		return
	}
	err := m.copy(m.query)
	if err != nil {
		m.statusError = "copy failed: " + err.Error()
		return
	}
	m.status = "copied " + m.query
}

func (m *bubbleModel) View() string {
	var b strings.Builder
	b.WriteString(m.field.View())
	b.WriteString("\n\n")
	items := uisearch.FilterItemsQuery(m.items, m.query)
	for _, item := range items {
		b.WriteString(uisearch.RenderItem(item))
		b.WriteString("\n")
	}
	if m.query != "" && len(items) == 0 {
		b.WriteString("no match for " + m.query + "\n")
	}
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	if m.statusError != "" {
		b.WriteString(statusErrorStyle.Render(m.statusError) + "\n")
	}
	if m.ctrlCPending() {
		b.WriteString("press Ctrl-C again to exit\n")
	} else {
		b.WriteString("enter: search  esc: clear  ctrl-e: toggle error  ctrl-y: copy\n")
	}
	return b.String()
}
