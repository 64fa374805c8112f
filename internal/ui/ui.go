package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/koki-develop/aart/internal/aart"
)

// ErrCanceled is returned when the viewer is closed before the image has
// been generated.
var ErrCanceled = errors.New("canceled before the image was generated")

type Option struct {
	aart.Options
}

// Start generates the image and shows the character grid until the user
// quits. It returns the generation result once the program exits.
func Start(opt *Option, opts ...tea.ProgramOption) (*aart.Result, error) {
	return start(newModel(opt), opts...)
}

func start(m *model, opts ...tea.ProgramOption) (*aart.Result, error) {
	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		return nil, err
	}

	if m.err != nil {
		return nil, m.err
	}
	if m.result == nil {
		return nil, ErrCanceled
	}

	return m.result, nil
}

var _ tea.Model = &model{}

type model struct {
	err error

	opts     aart.Options
	generate func(aart.Options) (*aart.Result, error)
	result   *aart.Result

	state    modelState
	viewport viewport.Model
	keys     keyMap

	windowHeight int
	windowWidth  int
}

type keyMap struct {
	Quit key.Binding
}

func newModel(opt *Option) *model {
	return &model{
		opts:     opt.Options,
		generate: aart.Generate,
		viewport: viewport.New(0, 0),
		keys: keyMap{
			Quit: key.NewBinding(
				key.WithKeys("q", "esc", "ctrl+c"),
				key.WithHelp("q", "quit"),
			),
		},
	}
}

func (m *model) Init() tea.Cmd {
	m.state = modelStateLoading
	return m.load()
}

func (m *model) View() string {
	switch m.state {
	case modelStateLoading:
		return m.loadingView()
	case modelStateReady:
		return m.readyView()
	}

	return ""
}

func (m *model) loadingView() string {
	return "generating..."
}

func (m *model) readyView() string {
	return m.viewport.View() + "\n" + m.helpView()
}

func (m *model) gridView() string {
	leftPad := ""
	if len(m.result.Grid) > 0 {
		w := len([]rune(m.result.Grid[0]))
		leftPad = strings.Repeat(" ", max(0, (m.windowWidth-w)/2))
	}

	b := new(strings.Builder)
	for i, line := range m.result.Grid {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(leftPad)
		b.WriteString(line)
	}
	return b.String()
}

func (m *model) helpView() string {
	b := new(strings.Builder)
	b.WriteString(color.New(color.BgGreen, color.FgBlack).Sprintf(" %s ", m.result.Path))
	b.WriteString(" ")
	b.WriteString(m.keys.Quit.Help().Key)
	b.WriteString(" ")
	b.WriteString(m.keys.Quit.Help().Desc)
	if !m.viewport.AtBottom() || !m.viewport.AtTop() {
		b.WriteString("  ↑/↓ scroll")
	}
	return b.String()
}

func (m *model) resizeViewport() {
	m.viewport.Width = m.windowWidth
	m.viewport.Height = max(1, m.windowHeight-1)
}

type modelState string

const (
	modelStateLoading modelState = "loading"
	modelStateReady   modelState = "ready"
)

type errMsg struct{ error }
type loadMsg struct {
	result *aart.Result
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

	case errMsg:
		m.err = msg.error
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.windowHeight = msg.Height
		m.windowWidth = msg.Width
		m.resizeViewport()
		if m.state == modelStateReady {
			m.viewport.SetContent(m.gridView())
		}
		return m, nil

	case loadMsg:
		m.result = msg.result
		m.state = modelStateReady
		m.viewport.SetContent(m.gridView())
		return m, tea.EnterAltScreen
	}

	if m.state != modelStateReady {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) load() tea.Cmd {
	return func() tea.Msg {
		res, err := m.generate(m.opts)
		if err != nil {
			return errMsg{err}
		}
		return loadMsg{res}
	}
}
