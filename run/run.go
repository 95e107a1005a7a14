package run

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/xhd2015/go-dom-tui/charm"
	domlog "github.com/xhd2015/go-dom-tui/log"
	"github.com/xhd2015/less-gen/flags"
	"github.com/xhd2015/searchfield/app"
	"github.com/xhd2015/searchfield/data"
	"github.com/xhd2015/searchfield/internal/config"
	"github.com/xhd2015/searchfield/log"
	"github.com/xhd2015/searchfield/models"
)

const help = `
searchfield - search a list of items from the terminal

Usage: searchfield [OPTIONS]
       searchfield config [OPTIONS]

Available sub commands:
  config                           save default options

Options:
  --placeholder <text>             placeholder shown in the empty field (default: Search)
  --items <file>                   file with one item per line (default: built-in list)
  --error                          start with the error flag set
  --bubble                         use the bubbles/textinput field
  --debug-log <file>               enable debug logging to specified file
  --show-path                      print the config dir and exit
  -h,--help                        show this help message

Keys:
  enter                            search
  esc                              clear the search
  ctrl-e                           toggle the error flag
  ctrl-y                           copy the last search to the clipboard
  ctrl-c ctrl-c                    exit

The last committed search is printed on exit.
Without --placeholder or a saved one, $SEARCHFIELD_PLACEHOLDER is used.
`

const configHelp = `
Usage: searchfield config [OPTIONS]

Options:
  --placeholder <text>             save the default placeholder
  --items <file>                   save the default items file
  -h,--help                        show this help message
`

func Main(args []string) error {
	if len(args) > 0 && args[0] == "config" {
		return handleConfig(args[1:])
	}

	var placeholder string
	var itemsFile string
	var startWithError bool
	var useBubble bool
	var debugLogFile string
	var showPath bool

	args, err := flags.String("--placeholder", &placeholder).
		String("--items", &itemsFile).
		Bool("--error", &startWithError).
		Bool("--bubble", &useBubble).
		String("--debug-log", &debugLogFile).
		Bool("--show-path", &showPath).
		Help("-h,--help", help).
		Parse(args)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra arguments: %s", strings.Join(args, " "))
	}

	confDir, err := config.GetConfigDir()
	if err != nil {
		return err
	}

	if showPath {
		fmt.Println(confDir)
		return nil
	}

	err = loadDotEnv(".env")
	if err != nil {
		return err
	}

	hostConfig, err := ApplyConfigDefaults(placeholder, itemsFile)
	if err != nil {
		return err
	}

	items, err := loadItems(hostConfig.ItemsFile)
	if err != nil {
		return err
	}

	if !isTerminal() {
		return fmt.Errorf("searchfield needs a terminal on stdout")
	}

	logDir, err := config.GetLogDir()
	if err != nil {
		return err
	}
	err = log.Init(logDir)
	if err != nil {
		return err
	}

	if debugLogFile != "" {
		file, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open debug log file: %w", err)
		}
		defer file.Close()
		domlog.SetLogger(domlog.NewFileLogger(file))
	}

	var query string
	if useBubble {
		query, err = runBubble(hostConfig.Placeholder, items, startWithError)
	} else {
		query, err = runApp(hostConfig.Placeholder, items, startWithError)
	}
	if err != nil {
		return err
	}
	if query != "" {
		fmt.Println(query)
	}
	return nil
}

func runApp(placeholder string, items []string, startWithError bool) (string, error) {
	ctx := context.Background()

	var p *tea.Program
	appState := app.State{
		Placeholder:   placeholder,
		Items:         items,
		ExternalError: startWithError,
		Input: models.InputState{
			Focused: true,
		},
		Refresh: func() {
			p.Send(cursor.Blink())
		},
	}
	appState.OnSearch = func(query string) {
		log.Info(ctx, "search committed", "query", query)
	}
	appState.OnCopy = copyToClipboard

	model := NewModel(&appState)

	p = tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	if err != nil {
		return "", err
	}
	return appState.Query, nil
}

func copyToClipboard(text string) error {
	err := clipboard.WriteAll(text)
	if err != nil {
		log.Error(context.Background(), "copy to clipboard", "err", err)
	}
	return err
}

type Model struct {
	quit  bool
	state *app.State
	app   *charm.CharmApp[app.State]
}

// NewModel wires state.Quit to the model.
func NewModel(state *app.State) *Model {
	m := &Model{
		state: state,
		app:   charm.NewCharmApp(state, app.App),
	}
	state.Quit = func() {
		m.quit = true
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// the dom layer has no key type for ctrl+y
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlY {
		m.state.CopyQuery()
		return m, nil
	}
	m.app.Update(msg)
	if m.quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) View() string {
	return m.app.Render()
}

func handleConfig(args []string) error {
	var placeholder string
	var itemsFile string

	args, err := flags.String("--placeholder", &placeholder).
		String("--items", &itemsFile).
		Help("-h,--help", configHelp).
		Parse(args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra arguments: %s", strings.Join(args, " "))
	}

	savedConfig, err := data.LoadConfig()
	if err != nil {
		return err
	}
	if savedConfig == nil {
		savedConfig = &models.Config{}
	}
	if placeholder == "" && itemsFile == "" {
		fmt.Printf("placeholder: %s\nitems: %s\n", savedConfig.Placeholder, savedConfig.ItemsFile)
		return nil
	}
	if placeholder != "" {
		savedConfig.Placeholder = placeholder
	}
	if itemsFile != "" {
		if _, err := os.Stat(itemsFile); err != nil {
			return fmt.Errorf("items file: %w", err)
		}
		savedConfig.ItemsFile = itemsFile
	}
	return data.SaveConfig(savedConfig)
}

// loadDotEnv loads file if it exists; variables already set win.
func loadDotEnv(file string) error {
	_, err := os.Stat(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	err = godotenv.Load(file)
	if err != nil {
		return fmt.Errorf("load %s: %w", file, err)
	}
	return nil
}
