package game

import (
	"github.com/tlund/meadowsnake/audio"
)

// step runs one movement tick: advance the head, wrap at the borders, then
// either die, eat, or move on. Sparkles decay once per surviving tick; the
// burst spawned by a collision starts decaying on the tick after it.
func (g *Game) step() {
	g.tick++
	g.runTicks++

	cell := g.cfg.Grid.CellSize
	head := g.snake[0]
	next := g.wrap(Cell{X: head.X + g.dir.X*cell, Y: head.Y + g.dir.Y*cell})

	// Self-collision checks every segment, tail included: the tail cell is
	// still occupied during the tick that moves onto it.
	if contains(g.snake, next) || contains(g.obstacles, next) {
		g.handleCollision()
		return
	}

	g.snake = append(g.snake, Cell{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = next

	if i := index(g.foods, next); i >= 0 {
		g.eat()
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	g.decaySparkles()
}

// wrap teleports an off-board cell to the opposite edge.
func (g *Game) wrap(c Cell) Cell {
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height
	cell := g.cfg.Grid.CellSize
	if c.X < 0 {
		c.X = w - cell
	} else if c.X >= w {
		c.X = 0
	}
	if c.Y < 0 {
		c.Y = h - cell
	} else if c.Y >= h {
		c.Y = 0
	}
	return c
}

// eat scores the food under the head (the head already moved onto it and the
// snake keeps its tail, which is the growth). Every food cell is then
// replaced by a fresh wave and more obstacles appear.
func (g *Game) eat() {
	g.score++
	if g.score > g.highScore {
		g.highScore = g.score
	}
	g.playSound(audio.Eat)

	g.foods = g.foods[:0]
	g.spawnFood(g.cfg.Game.FoodCount)
	g.spawnObstacles(g.cfg.Game.ObstaclesPerFood)
}

// handleCollision ends the run: sound, a sparkle burst at the head's center,
// high-score commit, telemetry, and a board reset. Play continues with the
// fresh board immediately.
func (g *Game) handleCollision() {
	g.playSound(audio.Collision)

	cell := g.cfg.Grid.CellSize
	head := g.snake[0]
	g.spawnSparkles(
		float32(head.X+cell/2),
		float32(head.Y+cell/2),
		g.cfg.Game.SparkleBurst,
	)

	if g.score > g.highScore {
		g.highScore = g.score
	}
	g.endRun(causeCollision)
	g.resetRound()
}

func (g *Game) playSound(kind audio.Kind) {
	if g.sounds != nil {
		g.sounds.Play(kind)
	}
}

func contains(cells []Cell, c Cell) bool {
	return index(cells, c) >= 0
}

func index(cells []Cell, c Cell) int {
	for i, o := range cells {
		if o == c {
			return i
		}
	}
	return -1
}
