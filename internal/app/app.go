package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Clete2/zfs-space-visualizer/internal/data"
	"github.com/Clete2/zfs-space-visualizer/internal/theme"
	"github.com/Clete2/zfs-space-visualizer/internal/ui"
	"github.com/Clete2/zfs-space-visualizer/internal/zfs"
)

// Config describes user-provided application options.
type Config struct {
	ReadOnly bool
	Threads  int
	Theme    string
}

// EffectiveThreads resolves the prefetch worker count: the configured
// value when set, otherwise eight per CPU, clamped to [1, 1000].
func (c Config) EffectiveThreads() int {
	threads := c.Threads
	if threads == 0 {
		threads = runtime.NumCPU() * 8
	}
	if threads < 1 {
		threads = 1
	}
	if threads > 1000 {
		threads = 1000
	}
	return threads
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	variant, err := theme.ParseVariant(cfg.Theme)
	if err != nil {
		return err
	}

	client := zfs.NewClient(nil)
	manager := data.NewManager(client, cfg.EffectiveThreads())
	if err := manager.LoadPools(context.Background()); err != nil {
		return fmt.Errorf("load pools: %w", err)
	}

	model := ui.NewModel(manager, theme.NewManager(variant), cfg.ReadOnly)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
