package game

import (
	"math/rand"
	"testing"

	"github.com/tlund/meadowsnake/config"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading default config: %v", err)
	}
	// Small grass field keeps the effects world cheap in tests.
	cfg.Grass.BladeCount = 50
	return newGame(cfg, rand.New(rand.NewSource(seed)))
}

// clearBoard leaves only the snake so movement tests control exactly what
// the head can run into.
func clearBoard(g *Game) {
	g.foods = g.foods[:0]
	g.obstacles = g.obstacles[:0]
}

func TestStepMovesOneCell(t *testing.T) {
	tests := []struct {
		name string
		dir  Cell
		want Cell
	}{
		{"right", Cell{1, 0}, Cell{420, 300}},
		{"left", Cell{-1, 0}, Cell{380, 300}},
		{"up", Cell{0, -1}, Cell{400, 280}},
		{"down", Cell{0, 1}, Cell{400, 320}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			clearBoard(g)
			g.snake = []Cell{{400, 300}}
			g.dir = tt.dir

			g.step()

			if g.snake[0] != tt.want {
				t.Errorf("head = %v, want %v", g.snake[0], tt.want)
			}
			if len(g.snake) != 1 {
				t.Errorf("length = %d, want 1 (no food eaten)", len(g.snake))
			}
		})
	}
}

func TestStepWrapsAtEdges(t *testing.T) {
	tests := []struct {
		name string
		head Cell
		dir  Cell
		want Cell
	}{
		{"left edge", Cell{0, 300}, Cell{-1, 0}, Cell{780, 300}},
		{"right edge", Cell{780, 300}, Cell{1, 0}, Cell{0, 300}},
		{"top edge", Cell{400, 0}, Cell{0, -1}, Cell{400, 580}},
		{"bottom edge", Cell{400, 580}, Cell{0, 1}, Cell{400, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			clearBoard(g)
			g.snake = []Cell{tt.head}
			g.dir = tt.dir

			g.step()

			if g.snake[0] != tt.want {
				t.Errorf("head = %v, want %v", g.snake[0], tt.want)
			}
		})
	}
}

func TestStepEatGrowsAndRespawns(t *testing.T) {
	g := newTestGame(t, 42)
	clearBoard(g)
	g.snake = []Cell{{400, 300}}
	g.dir = Cell{1, 0}
	g.foods = []Cell{{420, 300}}

	g.step()

	if g.score != 1 {
		t.Errorf("score = %d, want 1", g.score)
	}
	if g.highScore != 1 {
		t.Errorf("highScore = %d, want 1", g.highScore)
	}
	if len(g.snake) != 2 {
		t.Errorf("length = %d, want 2", len(g.snake))
	}
	if g.snake[0] != (Cell{420, 300}) {
		t.Errorf("head = %v, want {420 300}", g.snake[0])
	}
	if g.snake[1] != (Cell{400, 300}) {
		t.Errorf("body = %v, want {400 300}", g.snake[1])
	}
	// The whole wave respawns, not just the eaten cell.
	if len(g.foods) != g.cfg.Game.FoodCount {
		t.Errorf("foods = %d, want %d", len(g.foods), g.cfg.Game.FoodCount)
	}
	if len(g.obstacles) != g.cfg.Game.ObstaclesPerFood {
		t.Errorf("obstacles = %d, want %d", len(g.obstacles), g.cfg.Game.ObstaclesPerFood)
	}
}

func TestStepObstacleCollisionResets(t *testing.T) {
	g := newTestGame(t, 7)
	clearBoard(g)
	g.snake = []Cell{{420, 300}, {400, 300}}
	g.dir = Cell{1, 0}
	g.score = 3
	g.obstacles = []Cell{{440, 300}}

	g.step()

	if len(g.snake) != 1 {
		t.Errorf("length after reset = %d, want 1", len(g.snake))
	}
	if g.snake[0] != (Cell{400, 300}) {
		t.Errorf("head after reset = %v, want screen center {400 300}", g.snake[0])
	}
	if g.dir != (Cell{1, 0}) {
		t.Errorf("dir after reset = %v, want {1 0}", g.dir)
	}
	if g.score != 0 {
		t.Errorf("score after reset = %d, want 0", g.score)
	}
	if g.highScore != 3 {
		t.Errorf("highScore = %d, want 3 (kept across reset)", g.highScore)
	}
	if got := g.sparkleCount(); got != g.cfg.Game.SparkleBurst {
		t.Errorf("sparkles = %d, want %d", got, g.cfg.Game.SparkleBurst)
	}
	if len(g.foods) != g.cfg.Game.FoodCount {
		t.Errorf("foods after reset = %d, want %d", len(g.foods), g.cfg.Game.FoodCount)
	}
	if len(g.obstacles) != g.cfg.Game.ObstacleCount {
		t.Errorf("obstacles after reset = %d, want %d", len(g.obstacles), g.cfg.Game.ObstacleCount)
	}
	if runs := g.collector.Runs(); len(runs) != 1 || runs[0].Cause != causeCollision {
		t.Errorf("runs = %+v, want one collision record", runs)
	}
}

func TestStepSelfCollisionIncludesTail(t *testing.T) {
	g := newTestGame(t, 7)
	clearBoard(g)
	// Square body; moving down puts the head on the tail cell.
	g.snake = []Cell{{400, 300}, {420, 300}, {420, 320}, {400, 320}}
	g.dir = Cell{0, 1}

	g.step()

	if len(g.snake) != 1 {
		t.Errorf("length = %d, want 1 (tail cell is occupied, this is a collision)", len(g.snake))
	}
}

func TestStepSecondWaveCollision(t *testing.T) {
	g := newTestGame(t, 7)
	clearBoard(g)
	g.snake = []Cell{{400, 300}}
	g.dir = Cell{1, 0}
	g.obstacles = []Cell{{420, 300}}

	g.step()
	if got := g.sparkleCount(); got != g.cfg.Game.SparkleBurst {
		t.Fatalf("sparkles = %d, want %d", got, g.cfg.Game.SparkleBurst)
	}

	// A second collision adds a full burst on top of the first one,
	// minus the decay ticks in between.
	clearBoard(g)
	g.obstacles = []Cell{{420, 300}}
	g.step()
	if got := g.sparkleCount(); got != 2*g.cfg.Game.SparkleBurst {
		t.Errorf("sparkles = %d, want %d", got, 2*g.cfg.Game.SparkleBurst)
	}
}

func TestCellVisible(t *testing.T) {
	head := Cell{400, 300}
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"head cell", 400, 300, true},
		{"adjacent", 420, 300, true},
		{"edge of disk", 500, 300, true},  // exactly 5 cells away
		{"just outside", 520, 300, false}, // 6 cells away
		{"diagonal inside", 460, 380, true}, // 3-4-5 triangle, on the disk
		{"diagonal outside", 480, 380, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cellVisible(tt.x, tt.y, head, 20, 5)
			if got != tt.want {
				t.Errorf("cellVisible(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
