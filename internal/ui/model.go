// Package ui is the interactive task page: a Bubble Tea program rendering the
// board and turning key presses into board actions.
package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"taskman/internal/board"
	"taskman/internal/service"
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// Results of service calls, delivered back to Update by the program loop.
type (
	loadedMsg struct {
		tasks []service.Task
		err   error
	}
	createdMsg struct {
		task service.Task
		err  error
	}
	updatedMsg struct {
		id   string
		task service.Task
		err  error
	}
	deletedMsg struct {
		id  string
		err error
	}
)

// Model is the Bubble Tea model for the task page.
type Model struct {
	ctx      context.Context
	svc      service.Service
	board    *board.Board
	input    textinput.Model
	focus    focus
	cursor   int
	quitting bool
}

// New creates the page model. The board starts in loading state; Init issues
// the first fetch. Results arriving after ctx is done are discarded.
func New(ctx context.Context, svc service.Service, log zerolog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter task title..."
	ti.CharLimit = 256
	ti.Width = 40
	ti.Focus()

	b := board.New(log)
	b.StartLoad()

	return Model{
		ctx:   ctx,
		svc:   svc,
		board: b,
		input: ti,
		focus: focusInput,
	}
}

// Run starts the page and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, svc service.Service, log zerolog.Logger, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(ctx, svc, log), opts...)
	_, err := p.Run()
	// Cancellation from outside (SIGINT) is a normal exit.
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return m.fetch()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-10, 10)
		return m, nil
	}

	if m.ctx.Err() != nil {
		return m, nil
	}

	switch msg := msg.(type) {
	case loadedMsg:
		m.board.FinishLoad(msg.tasks, msg.err)
		m.clampCursor()
	case createdMsg:
		if m.board.FinishCreate(msg.task, msg.err) == nil {
			m.input.SetValue("")
		}
	case updatedMsg:
		m.board.FinishUpdate(msg.id, msg.task, msg.err)
	case deletedMsg:
		m.board.FinishDelete(msg.id, msg.err)
		m.clampCursor()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	if m.focus == focusInput {
		return m.updateInput(msg)
	}
	return m.updateList(msg.String())
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyTab, tea.KeyEsc:
		m.focus = focusList
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "esc":
		return m.quit()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.board.Len()-1 {
			m.cursor++
		}
	case "tab", "a":
		m.focus = focusInput
		return m, m.input.Focus()
	case "r":
		// A reload while loading joins the list request already in flight.
		m.board.StartLoad()
		return m, m.fetch()
	case "d":
		return m.markDone()
	case "x", "delete":
		return m.remove()
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// submit issues a create for the current input. Blank titles do nothing.
func (m Model) submit() (tea.Model, tea.Cmd) {
	fields, err := board.PrepareCreate(m.input.Value(), "")
	if err != nil {
		return m, nil
	}
	ctx, svc := m.ctx, m.svc
	return m, func() tea.Msg {
		task, err := svc.CreateTask(ctx, fields)
		return createdMsg{task: task, err: err}
	}
}

// markDone is not offered for tasks that are already done.
func (m Model) markDone() (tea.Model, tea.Cmd) {
	task, ok := m.board.Task(m.cursor)
	if !ok || task.Status == service.StatusDone {
		return m, nil
	}
	id, fields, err := board.PrepareDone(task)
	if err != nil {
		return m, nil
	}
	ctx, svc := m.ctx, m.svc
	return m, func() tea.Msg {
		updated, err := svc.UpdateTask(ctx, id, fields)
		return updatedMsg{id: id, task: updated, err: err}
	}
}

func (m Model) remove() (tea.Model, tea.Cmd) {
	task, ok := m.board.Task(m.cursor)
	if !ok {
		return m, nil
	}
	id, err := board.PrepareDelete(task)
	if err != nil {
		return m, nil
	}
	ctx, svc := m.ctx, m.svc
	return m, func() tea.Msg {
		return deletedMsg{id: id, err: svc.DeleteTask(ctx, id)}
	}
}

func (m Model) fetch() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		tasks, err := svc.ListTasks(ctx)
		return loadedMsg{tasks: tasks, err: err}
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= m.board.Len() {
		m.cursor = m.board.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
