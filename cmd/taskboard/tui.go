package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/mvp-binding/binder"
	"github.com/wippyai/mvp-binding/messages"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	taskStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// taskListWidget is the concrete TaskListView behind the board.
type taskListWidget struct {
	tasks []string
}

func (w *taskListWidget) ShowTasks(tasks []string) {
	w.tasks = append(w.tasks[:0], tasks...)
}

// statusBar is a concrete StatusView. Two instances exist, one under the
// title and one above the help line; the shared status presenter drives
// both through the composite.
type statusBar struct {
	text string
}

func (w *statusBar) ShowStatus(text string) { w.text = text }

// boardModel is the bubbletea model. It owns the widgets and forwards user
// intent to the task presenter; all state changes flow presenter -> view.
type boardModel struct {
	binder *binder.Binder
	tasks  TaskLogic
	list   *taskListWidget
	top    *statusBar
	bottom *statusBar
	input  textinput.Model
}

func newBoardModel() (*boardModel, error) {
	m := &boardModel{
		list:   &taskListWidget{},
		top:    &statusBar{text: "no tasks yet"},
		bottom: &statusBar{},
	}

	m.input = textinput.New()
	m.input.Placeholder = "task title, or a number to complete"
	m.input.Focus()
	m.input.CharLimit = 80
	m.input.Width = 48

	b, err := binder.New(messages.NewCoordinator(), binder.DefaultOptions(), &boardHost{})
	if err != nil {
		return nil, err
	}
	m.binder = b

	for _, v := range []any{m.list, m.top, m.bottom} {
		if err := b.RegisterView(v); err != nil {
			return nil, err
		}
	}

	created, err := b.PerformBinding()
	if err != nil {
		return nil, err
	}
	for _, p := range created {
		if t, ok := p.(TaskLogic); ok {
			m.tasks = t
		}
	}
	if m.tasks == nil {
		return nil, fmt.Errorf("taskboard: no task presenter was bound")
	}
	return m, nil
}

func (m *boardModel) release() {
	if m.binder != nil {
		_ = m.binder.Release()
	}
}

func (m *boardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit(strings.TrimSpace(m.input.Value()))
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit routes the input line: a bare number completes that task, anything
// else becomes a new task.
func (m *boardModel) submit(line string) {
	if line == "" {
		return
	}
	if n, err := strconv.Atoi(line); err == nil {
		m.tasks.CompleteTask(n - 1)
		return
	}
	m.tasks.AddTask(line)
}

func (m *boardModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("taskboard"))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.top.text))
	b.WriteString("\n\n")

	if len(m.list.tasks) == 0 {
		b.WriteString(helpStyle.Render("nothing to do"))
		b.WriteString("\n")
	}
	for i, task := range m.list.tasks {
		b.WriteString(taskStyle.Render(fmt.Sprintf("%2d. %s", i+1, task)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.bottom.text != "" {
		b.WriteString(statusStyle.Render(m.bottom.text))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: add · number: complete · esc: quit"))
	b.WriteString("\n")

	return b.String()
}
