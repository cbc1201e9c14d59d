package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"gitartist/internal/logging"
	"gitartist/internal/services"
	"gitartist/internal/theme"
)

// TaskFunc is a long running operation shown behind a spinner or progress bar.
// report may be called from the task goroutine at any time.
type TaskFunc func(ctx context.Context, report services.ProgressFunc) error

type progressMsg struct {
	done  int
	total int
}

type finishedMsg struct {
	err error
}

// taskModel shows a spinner until the task reports progress, then a bar
type taskModel struct {
	bar        progress.Model
	cancel     context.CancelFunc
	cancelling bool
	done       int
	err        error
	finished   bool
	spinner    spinner.Model
	title      string
	total      int
}

func newTaskModel(title string, cancel context.CancelFunc) taskModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.HintKeyStyle

	return taskModel{
		bar:     progress.New(progress.WithGradient(string(theme.ColorDensityLight), string(theme.ColorDensityMax))),
		cancel:  cancel,
		spinner: s,
		title:   title,
	}
}

func (m taskModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m taskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" && !m.cancelling {
			logging.Logger.Info("Task cancellation requested", "title", m.title)
			m.cancelling = true
			m.cancel()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-4, 60)
		return m, nil

	case progressMsg:
		m.done, m.total = msg.done, msg.total
		return m, nil

	case finishedMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m taskModel) View() string {
	if m.finished {
		return ""
	}

	status := m.title
	if m.cancelling {
		status = "Stopping after the current commit..."
	}

	if m.total == 0 {
		return fmt.Sprintf("\n%s %s\n", m.spinner.View(), status)
	}
	percent := float64(m.done) / float64(m.total)
	return fmt.Sprintf("\n%s\n%s %s\n",
		status,
		m.bar.ViewAs(percent),
		theme.HintTextStyle.Render(fmt.Sprintf("%d/%d commits", m.done, m.total)))
}

// RunTask runs fn on a single background goroutine while the terminal shows
// its progress. Ctrl+C cancels the task's context and waits for it to stop.
func RunTask(ctx context.Context, title string, fn TaskFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newTaskModel(title, cancel))
	taskDone := make(chan error, 1)

	go func() {
		err := fn(ctx, func(done, total int) {
			p.Send(progressMsg{done: done, total: total})
		})
		taskDone <- err
		p.Send(finishedMsg{err: err})
	}()

	final, err := p.Run()
	if err != nil {
		logging.Logger.Warn("Progress display failed, waiting for task", "error", err)
		return <-taskDone
	}

	if m, ok := final.(taskModel); ok && m.finished {
		return m.err
	}
	return <-taskDone
}
