package main

import (
	"context"
	"fmt"

	mvpbinding "github.com/wippyai/mvp-binding"
	"github.com/wippyai/mvp-binding/binding"
	"github.com/wippyai/mvp-binding/messages"
)

// TaskListView is the capability of a widget that renders the task list.
type TaskListView interface {
	ShowTasks(tasks []string)
}

// StatusView is the capability of a widget that renders one-line status.
// Bound in shared mode: one presenter drives every status widget at once.
type StatusView interface {
	ShowStatus(text string)
}

// TaskLogic is the presenter capability behind the task list.
type TaskLogic interface {
	mvpbinding.Presenter
	AddTask(title string)
	CompleteTask(index int)
}

// StatusLogic is the presenter capability behind the status widgets.
type StatusLogic interface {
	mvpbinding.Presenter
}

// taskAdded is published after every successful task mutation.
type taskAdded struct {
	title string
	total int
}

type taskCompleted struct {
	title string
	left  int
}

// boardHost declares the board's bindings.
type boardHost struct{}

func (*boardHost) PresenterBindings() []binding.Descriptor {
	return []binding.Descriptor{
		binding.Of[TaskLogic, TaskListView](binding.ModeDefault),
		binding.Of[StatusLogic, StatusView](binding.ModeShared),
	}
}

// taskPresenter owns the task list state and pushes changes to its view.
type taskPresenter struct {
	view  TaskListView
	mc    mvpbinding.MessageCoordinator
	tasks []string
}

func (p *taskPresenter) SetContext(context.Context) {}

func (p *taskPresenter) SetCoordinator(mc mvpbinding.MessageCoordinator) { p.mc = mc }

func (p *taskPresenter) DetachView() { p.view = nil }

func (p *taskPresenter) AddTask(title string) {
	if title == "" {
		return
	}
	p.tasks = append(p.tasks, title)
	p.view.ShowTasks(p.tasks)
	p.mc.Publish(taskAdded{title: title, total: len(p.tasks)})
}

func (p *taskPresenter) CompleteTask(index int) {
	if index < 0 || index >= len(p.tasks) {
		return
	}
	title := p.tasks[index]
	p.tasks = append(p.tasks[:index], p.tasks[index+1:]...)
	p.view.ShowTasks(p.tasks)
	p.mc.Publish(taskCompleted{title: title, left: len(p.tasks)})
}

// statusPresenter translates board messages into status lines for the
// composite status view.
type statusPresenter struct {
	view StatusView
}

func (p *statusPresenter) SetContext(context.Context) {}

func (p *statusPresenter) SetCoordinator(mc mvpbinding.MessageCoordinator) {
	messages.Subscribe(mc, func(m taskAdded) {
		p.view.ShowStatus(fmt.Sprintf("added %q · %d open", m.title, m.total))
	})
	messages.Subscribe(mc, func(m taskCompleted) {
		p.view.ShowStatus(fmt.Sprintf("done %q · %d open", m.title, m.left))
	})
}

func (p *statusPresenter) DetachView() { p.view = nil }

// statusFanout is the composite adapter for StatusView.
type statusFanout []StatusView

func (f statusFanout) ShowStatus(text string) {
	for _, v := range f {
		v.ShowStatus(text)
	}
}
