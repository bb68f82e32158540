package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tlund/meadowsnake/config"
	"github.com/tlund/meadowsnake/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	logStats := flag.Bool("log-stats", false, "Log a stats line after every run")
	outputDir := flag.String("output-dir", "", "Output directory for CSV run logs and config snapshot")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Meadow Snake")
	defer rl.CloseWindow()

	// ESC pauses and navigates menus; only window close or Quit may exit.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGame(game.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	})
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	for !rl.WindowShouldClose() && !g.ShouldQuit() {
		g.Update()
		g.Draw()
	}
}
