package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-xonix/internal/core"
	"github.com/vovakirdan/tui-xonix/internal/games/xonix"
	"github.com/vovakirdan/tui-xonix/internal/platform/console"
	"github.com/vovakirdan/tui-xonix/internal/platform/runner"
	"github.com/vovakirdan/tui-xonix/internal/platform/tui"
	"github.com/vovakirdan/tui-xonix/internal/registry"
	"github.com/vovakirdan/tui-xonix/internal/storage"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play Xonix",
	Long: `Start a game. The variant defaults to "xonix".

Controls:
  Arrows/WASD  - Steer
  Enter/Space  - Start / confirm
  Esc/B        - Back (abandons a run in progress)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Backends:
  tui    - Bubble Tea renderer (default)
  tcell  - Direct tcell renderer

Examples:
  xonix play
  xonix play xonix_wide
  xonix play --difficulty easy --seed 42
  xonix play --backend tcell --config ./my-xonix.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Renderer: tui or tcell")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "xonix"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'xonix list' to see available variants.")
		os.Exit(1)
	}
	if flagBackend != "tui" && flagBackend != "tcell" {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q (expected tui or tcell)\n", flagBackend)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	xonix.SetLogger(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage if the database cannot be opened
	var scores runner.ScoreStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "path", flagDBPath, "error", err)
	} else {
		scores = store
	}

	logger.Info("starting", "variant", gameID, "backend", flagBackend, "seed", flagSeed, "fps", flagFPS)

	var runErr error
	switch flagBackend {
	case "tcell":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		runErr = console.Run(ctx, game, scores, cfg, logger)
		stop()
	default:
		runErr = tui.Run(game, scores, cfg, logger)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("run failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
