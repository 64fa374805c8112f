package ui

import (
	"errors"
	"image"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/koki-develop/aart/internal/aart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel(gen func(aart.Options) (*aart.Result, error)) *model {
	m := newModel(&Option{Options: aart.DefaultOptions()})
	m.generate = gen
	return m
}

func TestModel_Load(t *testing.T) {
	want := &aart.Result{
		Path:   "out.jpg",
		Grid:   []string{"XX", "··"},
		Bounds: image.Rect(0, 0, 10, 10),
	}
	var got aart.Options
	m := testModel(func(o aart.Options) (*aart.Result, error) {
		got = o
		return want, nil
	})

	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.Equal(t, modelStateLoading, m.state)
	assert.Equal(t, "generating...", m.View())

	msg := cmd()
	require.IsType(t, loadMsg{}, msg)
	assert.Equal(t, aart.DefaultOptions(), got)

	m.Update(tea.WindowSizeMsg{Width: 6, Height: 5})
	m.Update(msg)

	assert.Equal(t, modelStateReady, m.state)
	view := m.View()
	assert.Contains(t, view, "  XX")
	assert.Contains(t, view, "  ··")
	assert.Contains(t, view, "out.jpg")
	assert.Contains(t, view, "quit")
}

func TestModel_LoadError(t *testing.T) {
	boom := errors.New("boom")
	m := testModel(func(aart.Options) (*aart.Result, error) { return nil, boom })

	msg := m.Init()()
	require.IsType(t, errMsg{}, msg)

	_, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.ErrorIs(t, m.err, boom)
}

func TestModel_Quit(t *testing.T) {
	tests := []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	}
	for _, k := range tests {
		t.Run(k.String(), func(t *testing.T) {
			m := testModel(nil)
			_, cmd := m.Update(k)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestModel_IgnoresKeysWhileLoading(t *testing.T) {
	m := testModel(nil)
	m.Init()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	assert.Equal(t, modelStateLoading, m.state)
}

func TestModel_Scroll(t *testing.T) {
	grid := make([]string, 20)
	for i := range grid {
		grid[i] = "XXXX"
	}
	m := testModel(nil)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 10, Height: 6})
	m.Update(loadMsg{&aart.Result{Path: "out.jpg", Grid: grid}})

	assert.True(t, m.viewport.AtTop())
	assert.Contains(t, m.View(), "scroll")

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.viewport.YOffset)
}

func TestStart_QuitWhileLoading(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	m := testModel(func(aart.Options) (*aart.Result, error) {
		<-release
		return &aart.Result{Path: "out.jpg"}, nil
	})

	res, err := start(m,
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
	assert.ErrorIs(t, err, ErrCanceled)
	assert.Nil(t, res)
}

func TestStart_LoadError(t *testing.T) {
	boom := errors.New("boom")
	m := testModel(func(aart.Options) (*aart.Result, error) { return nil, boom })

	res, err := start(m,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res)
}
