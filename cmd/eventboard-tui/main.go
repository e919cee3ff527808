package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"eventboard/internal/modkit"
	"eventboard/internal/platform/config"
	"eventboard/internal/platform/logger"
	eventsmod "eventboard/internal/services/events/module"
	"eventboard/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	root := config.New()

	// the terminal belongs to the UI; logs go to a file or nowhere
	var w io.Writer = io.Discard
	if path := root.MayString("EVENTBOARD_TUI_LOG", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintln(os.Stderr, "open log:", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	opt := logger.FromEnv()
	opt.Writer = w
	opt.Format = "json"
	logger.Init(opt)

	o := eventsmod.FromConfig(root)
	deps := modkit.Deps{Cfg: root, Log: logger.Named("tui")}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	load := func() tea.Cmd {
		return func() tea.Msg {
			b, err := eventsmod.LoadBoard(ctx, deps, o)
			return ui.BoardLoaded{Board: b, Err: err}
		}
	}

	p := tea.NewProgram(ui.New(load, o.Render, nil), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "eventboard-tui:", err)
		os.Exit(1)
	}
}
