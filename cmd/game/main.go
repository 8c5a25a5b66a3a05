package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/room-engine/internal/config"
	"github.com/jwebster45206/room-engine/internal/game"
	"github.com/jwebster45206/room-engine/internal/logger"
	"github.com/jwebster45206/room-engine/internal/storage"
	"github.com/jwebster45206/room-engine/pkg/world"
)

func main() {
	cfg := config.Load()

	// In TUI mode the alternate screen owns the terminal, so logs are
	// discarded rather than corrupting the layout.
	var log *slog.Logger
	if cfg.UI == "plain" {
		log = logger.Setup(cfg)
	} else {
		log = logger.SetupWithWriter(cfg, io.Discard)
	}

	w, err := selectWorld(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.UI == "plain" {
		eng := game.New(w, newPlainPresenter(os.Stdin, os.Stdout), log)
		if err := eng.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	pres := newTeaPresenter()
	ui := newGameUI(pres, w.Title())
	p := tea.NewProgram(ui, tea.WithAltScreen(), tea.WithMouseCellMotion())
	pres.program = p

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := game.New(w, pres, log).Run(); err != nil {
			log.Error("Game loop failed", "error", err)
		}
		p.Send(engineDoneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
		os.Exit(1)
	}

	pres.release()
	<-done
}

// selectWorld lists the available world files and lets the player pick one.
// A lone world is loaded without prompting.
func selectWorld(cfg *config.Config, log *slog.Logger) (*world.World, error) {
	ws := storage.NewWorldStorage(cfg.WorldDir, log)

	worlds, err := ws.ListWorlds()
	if err != nil {
		return nil, fmt.Errorf("failed to list worlds: %w", err)
	}
	if len(worlds) == 0 {
		return nil, fmt.Errorf("no world files found in %s", cfg.WorldDir)
	}

	names := make([]string, 0, len(worlds))
	for name := range worlds {
		names = append(names, name)
	}
	sort.Strings(names)

	chosen := names[0]
	if len(names) > 1 {
		fmt.Println("Available Worlds:")
		for i, name := range names {
			fmt.Printf("  %d. %s\n", i+1, name)
		}
		fmt.Print("Select a world by number: ")

		var n int
		if _, err := fmt.Scanf("%d", &n); err != nil || n < 1 || n > len(names) {
			return nil, fmt.Errorf("invalid world selection")
		}
		chosen = names[n-1]
		fmt.Println()
	}

	def, err := ws.GetWorld(worlds[chosen])
	if err != nil {
		return nil, fmt.Errorf("failed to load world %q: %w", chosen, err)
	}

	w, err := def.Build()
	if err != nil {
		return nil, fmt.Errorf("world %q failed to build: %w", chosen, err)
	}
	return w, nil
}
