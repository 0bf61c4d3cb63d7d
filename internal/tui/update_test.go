package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/pkg/gradient"
	"github.com/alexisbeaulieu97/prism/pkg/rgb"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTickAdvancesUntilFinished(t *testing.T) {
	t.Parallel()

	m := NewModel(white, black, Options{Frames: 2})

	m, cmd := update(t, m, tickMsg{})
	require.Equal(t, 1, m.Frame())
	require.NotNil(t, cmd)

	m, cmd = update(t, m, tickMsg{})
	require.Equal(t, 2, m.Frame())
	require.Nil(t, cmd)
	require.True(t, m.IsFinished())

	m, cmd = update(t, m, tickMsg{})
	require.Equal(t, 2, m.Frame())
	require.Nil(t, cmd)
}

func TestPauseStopsTicks(t *testing.T) {
	t.Parallel()

	m := NewModel(white, black, Options{Frames: 4})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, m.IsPaused())
	require.Nil(t, cmd)

	m, cmd = update(t, m, tickMsg{id: m.tickID})
	require.Equal(t, 0, m.Frame())
	require.Nil(t, cmd)

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.False(t, m.IsPaused())
	require.NotNil(t, cmd)

	// Ticks from the chain started before the pause are dropped.
	m, _ = update(t, m, tickMsg{id: 0})
	require.Equal(t, 0, m.Frame())

	m, _ = update(t, m, tickMsg{id: m.tickID})
	require.Equal(t, 1, m.Frame())
}

func TestReverseRunsBackward(t *testing.T) {
	t.Parallel()

	m := NewModel(white, black, Options{Frames: 2})
	m, _ = update(t, m, tickMsg{})
	m, _ = update(t, m, tickMsg{})
	require.True(t, m.IsFinished())

	m, cmd := update(t, m, key("r"))
	require.False(t, m.IsForward())
	require.False(t, m.IsFinished())
	require.NotNil(t, cmd)

	m, _ = update(t, m, tickMsg{id: m.tickID})
	m, cmd = update(t, m, tickMsg{id: m.tickID})
	require.Equal(t, 0, m.Frame())
	require.Nil(t, cmd)
	require.True(t, m.Current().Equal(white))
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{key("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		m, cmd := update(t, NewModel(white, black, Options{}), msg)
		require.NotNil(t, cmd)
		require.IsType(t, tea.QuitMsg{}, cmd())
		require.Empty(t, m.View())
	}
}

func TestGradientsAndErrorMessages(t *testing.T) {
	t.Parallel()

	m := NewModel(white, black, Options{Frames: 2})
	m, _ = update(t, m, ErrorMsg{Err: errors.New("bad theme")})
	require.Equal(t, "bad theme", m.lastErr)

	red := gradient.FromColor(rgb.Red)
	m, _ = update(t, m, GradientsMsg{From: red, To: black})
	require.Equal(t, 1, m.reloads)
	require.Empty(t, m.lastErr)
	require.True(t, m.Current().Equal(red))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	require.Equal(t, 38, m.width)
}
