package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/tlund/meadowsnake/audio"
	"github.com/tlund/meadowsnake/components"
	"github.com/tlund/meadowsnake/config"
	"github.com/tlund/meadowsnake/telemetry"
)

// Cell is one grid cell position in pixels. Coordinates are always multiples
// of the configured cell size, so cells compare for equality directly.
type Cell struct {
	X, Y int
}

// Mode selects the visibility rule while playing.
type Mode int

const (
	// ModeNormal shows the whole board.
	ModeNormal Mode = iota
	// ModeFlashlight blacks out every cell outside a disk around the
	// snake's head.
	ModeFlashlight
)

const (
	causeCollision = "collision"
	causeAbandoned = "abandoned"
)

// Options configures a new Game.
type Options struct {
	Seed      int64  // RNG seed for spawning and grass layout
	LogStats  bool   // log a summary line after every run
	OutputDir string // directory for CSV run records; empty disables
}

// Game holds the complete state of a session: the board entities, the menu
// and state machine bookkeeping, the visual-effects ECS world, and the
// telemetry sinks. One Game lives for the whole process.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	state State
	mode  Mode

	// Board entities in pixel coordinates. snake[0] is the head.
	snake     []Cell
	foods     []Cell
	obstacles []Cell
	dir       Cell

	score     int
	highScore int

	lastMove time.Time
	animTime float32

	mainMenu     Menu
	pauseMenu    Menu
	modeMenu     Menu
	configOption ConfigOption

	// Grass blades and collision sparkles live in an ECS world so the
	// per-frame hot loops iterate archetype storage instead of slices of
	// interface values.
	world       *ecs.World
	bladeMapper *ecs.Map1[components.Blade]
	bladeFilter *ecs.Filter1[components.Blade]
	sparkMapper *ecs.Map2[components.Spark, components.Life]
	sparkFilter *ecs.Filter2[components.Spark, components.Life]

	sounds    *audio.System
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	runStart time.Time
	runTicks int
	tick     int64

	fonts fonts
}

// NewGame builds a Game ready for the main loop. The raylib window must
// already be open (fonts load GPU textures). Audio failures are logged and
// tolerated; a telemetry output failure is not, since the user asked for it.
func NewGame(opts Options) (*Game, error) {
	g := newGame(config.Cfg(), rand.New(rand.NewSource(opts.Seed)))
	g.logStats = opts.LogStats

	out, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.output = out
	if out != nil {
		if err := out.WriteConfig(g.cfg); err != nil {
			slog.Warn("failed to write config snapshot", "error", err)
		}
	}

	if g.cfg.Audio.Enabled {
		sounds, err := audio.NewSystem(g.cfg.Audio.SFXVolume)
		if err != nil {
			slog.Warn("audio unavailable, continuing silent", "error", err)
		} else {
			g.sounds = sounds
		}
	}

	g.loadFonts()
	slog.Info("game created",
		"seed", opts.Seed,
		"grid", slog.GroupValue(
			slog.Int("cols", g.cfg.Derived.Cols),
			slog.Int("rows", g.cfg.Derived.Rows),
		),
		"blades", g.cfg.Grass.BladeCount,
	)
	return g, nil
}

// newGame builds the window-independent part of the game. Tests construct
// games through here so they run headless.
func newGame(cfg *config.Config, rng *rand.Rand) *Game {
	world := ecs.NewWorld()
	g := &Game{
		cfg:         cfg,
		rng:         rng,
		state:       StateMainMenu,
		world:       world,
		bladeMapper: ecs.NewMap1[components.Blade](world),
		bladeFilter: ecs.NewFilter1[components.Blade](world),
		sparkMapper: ecs.NewMap2[components.Spark, components.Life](world),
		sparkFilter: ecs.NewFilter2[components.Spark, components.Life](world),
		mainMenu:    Menu{Items: []string{"Start Game", "Config Menu", "Game Mode", "Quit"}},
		pauseMenu:   Menu{Items: []string{"Resume", "Main Menu"}},
		modeMenu:    Menu{Items: []string{"NORMAL MODE", "FLASHLIGHT MODE"}},
		collector:   telemetry.NewCollector(),
		lastMove:    time.Now(),
	}
	g.generateGrass()
	g.resetRound()
	return g
}

// Update advances the game by one frame: input, grass animation, and the
// movement tick when its interval has elapsed. Outside PLAYING the tick
// still fires, but it only ages sparkles.
func (g *Game) Update() {
	for _, k := range pollKeys() {
		g.dispatch(k)
	}

	// Grass sways in every state, including behind menus.
	g.animTime += 0.02

	interval := time.Duration(g.cfg.Game.TickIntervalMS) * time.Millisecond
	if time.Since(g.lastMove) < interval {
		return
	}
	g.lastMove = time.Now()

	if g.state == StatePlaying {
		g.step()
		return
	}
	// Sparkles keep burning down in menus and while paused.
	g.decaySparkles()
}

// ShouldQuit reports whether the player chose Quit from the main menu.
func (g *Game) ShouldQuit() bool {
	return g.state == StateQuit
}

// startGame resets the round and enters play. Called from the main menu, so
// a fresh board is spawned even after an abandoned run.
func (g *Game) startGame() {
	g.resetRound()
	g.lastMove = time.Now()
}

// resetRound rebuilds the board: a one-segment snake at the center heading
// right, a fresh food wave, and the starting obstacles.
func (g *Game) resetRound() {
	cell := g.cfg.Grid.CellSize
	g.snake = []Cell{{
		X: g.cfg.Screen.Width / 2 / cell * cell,
		Y: g.cfg.Screen.Height / 2 / cell * cell,
	}}
	g.dir = Cell{X: 1, Y: 0}
	g.score = 0
	g.foods = g.foods[:0]
	g.obstacles = g.obstacles[:0]
	g.spawnFood(g.cfg.Game.FoodCount)
	g.spawnObstacles(g.cfg.Game.ObstacleCount)
	g.runStart = time.Now()
	g.runTicks = 0
}

// endRun records a finished run with the telemetry sinks.
func (g *Game) endRun(cause string) {
	rec := telemetry.RunRecord{
		EndedAtTick: g.tick,
		Score:       g.score,
		Length:      len(g.snake),
		Ticks:       g.runTicks,
		DurationSec: time.Since(g.runStart).Seconds(),
		Cause:       cause,
		HighScore:   g.highScore,
	}
	g.collector.Record(rec)
	if g.logStats {
		slog.Info("run ended",
			"cause", rec.Cause,
			"score", rec.Score,
			"length", rec.Length,
			"ticks", rec.Ticks,
			"duration_sec", rec.DurationSec,
			"high_score", rec.HighScore,
		)
	}
	if g.output != nil {
		if err := g.output.WriteRun(rec); err != nil {
			slog.Warn("failed to write run record", "error", err)
		}
	}
}

// Unload logs the session summary and releases fonts, audio, and the output
// files. Call once, after the main loop exits.
func (g *Game) Unload() {
	if sum := g.collector.Summary(); sum.Runs > 0 {
		slog.Info("session summary",
			"runs", sum.Runs,
			"score_mean", sum.ScoreMean,
			"score_std", sum.ScoreStd,
			"score_median", sum.ScoreMedian,
			"score_max", sum.ScoreMax,
			"high_score", g.highScore,
		)
	}
	if g.output != nil {
		if err := g.output.Close(); err != nil {
			slog.Warn("failed to close telemetry output", "error", err)
		}
	}
	g.sounds.Close()
	g.unloadFonts()
}
