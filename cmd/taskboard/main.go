package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	mvpbinding "github.com/wippyai/mvp-binding"
	"github.com/wippyai/mvp-binding/binder"
	"github.com/wippyai/mvp-binding/binding"
	"github.com/wippyai/mvp-binding/composite"
	"github.com/wippyai/mvp-binding/factory"
	"github.com/wippyai/mvp-binding/messages"
)

func main() {
	var (
		manifest = flag.String("manifest", "", "Path to an HCL binding manifest (overrides the host's declarations)")
		debug    = flag.Bool("debug", false, "Enable debug logging to taskboard.log")
	)
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "taskboard needs an interactive terminal")
		os.Exit(1)
	}

	if *debug {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"taskboard.log"}
		logger, err := cfg.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		binder.SetLogger(logger)
		binding.SetLogger(logger)
		messages.SetLogger(logger)
	}

	if err := run(*manifest); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(manifestPath string) error {
	wire()

	if manifestPath != "" {
		registerManifestNames()
		if err := binding.LoadManifest(manifestPath); err != nil {
			return err
		}
	}

	m, err := newBoardModel()
	if err != nil {
		return err
	}
	defer m.release()

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// wire registers the board's capabilities, constructors and composite
// adapters. Registration is process-wide and runs once at startup.
func wire() {
	factory.RegisterConstructor[TaskLogic](
		factory.ConstructorFor(func(v TaskListView) mvpbinding.Presenter {
			return &taskPresenter{view: v}
		}))
	factory.RegisterConstructor[StatusLogic](
		factory.ConstructorFor(func(v StatusView) mvpbinding.Presenter {
			return &statusPresenter{view: v}
		}))
	composite.Register(func(children []StatusView) StatusView {
		return statusFanout(children)
	})
}

// registerManifestNames exposes the board's types to manifest files, which
// refer to them by name.
func registerManifestNames() {
	binding.RegisterHostName[*boardHost]("board")
	binding.RegisterPresenterName[TaskLogic]("tasks")
	binding.RegisterPresenterName[StatusLogic]("status")
	binding.RegisterViewName[TaskListView]("task_list")
	binding.RegisterViewName[StatusView]("status_bar")
}
