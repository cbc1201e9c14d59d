package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskModel_ProgressThenFinish(t *testing.T) {
	m := newTaskModel("Painting...", func() {})

	updated, _ := m.Update(progressMsg{done: 3, total: 10})
	m = updated.(taskModel)
	assert.Contains(t, m.View(), "3/10 commits")

	taskErr := errors.New("boom")
	updated, cmd := m.Update(finishedMsg{err: taskErr})
	m = updated.(taskModel)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.finished)
	assert.Equal(t, taskErr, m.err)
	assert.Empty(t, m.View())
}

func TestTaskModel_SpinnerBeforeProgress(t *testing.T) {
	m := newTaskModel("Thinking...", func() {})

	assert.Contains(t, m.View(), "Thinking...")
}

func TestTaskModel_CtrlCCancelsOnce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	m := newTaskModel("Painting...", func() {
		calls++
		cancel()
	})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(taskModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(taskModel)

	assert.Equal(t, 1, calls)
	assert.True(t, m.cancelling)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.Contains(t, m.View(), "Stopping")
}
