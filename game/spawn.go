package game

// spawnFood appends count food cells at random free positions. Food rejects
// cells under the snake or an obstacle but not other food, so a wave can
// stack two foods on one cell (eating it consumes the whole wave anyway).
func (g *Game) spawnFood(count int) {
	for i := 0; i < count; i++ {
		g.foods = append(g.foods, g.randomFreeCell(g.snake, g.obstacles))
	}
}

// spawnObstacles appends count obstacles at cells free of the snake and of
// food, honoring the optional total cap.
func (g *Game) spawnObstacles(count int) {
	if limit := g.cfg.Game.MaxObstacles; limit > 0 {
		if room := limit - len(g.obstacles); count > room {
			count = room
		}
	}
	for i := 0; i < count; i++ {
		g.obstacles = append(g.obstacles, g.randomFreeCell(g.snake, g.foods))
	}
}

// randomFreeCell samples grid cells until one misses every occupied set.
// Retries are unbounded; board occupancy stays far below full in practice.
func (g *Game) randomFreeCell(occupied ...[]Cell) Cell {
	cell := g.cfg.Grid.CellSize
	for {
		c := Cell{
			X: g.rng.Intn(g.cfg.Derived.Cols) * cell,
			Y: g.rng.Intn(g.cfg.Derived.Rows) * cell,
		}
		free := true
		for _, set := range occupied {
			if contains(set, c) {
				free = false
				break
			}
		}
		if free {
			return c
		}
	}
}
