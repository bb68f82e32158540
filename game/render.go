package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorGrid      = rl.Color{R: 50, G: 50, B: 50, A: 255}
	colorOverlay   = rl.Color{R: 30, G: 30, B: 30, A: 128}
	colorGrass     = rl.Color{R: 34, G: 139, B: 34, A: 255}
	colorSnake     = rl.Color{R: 0, G: 255, B: 0, A: 255}
	colorFood      = rl.Color{R: 255, G: 0, B: 0, A: 255}
	colorObstacle  = rl.Color{R: 38, G: 143, B: 185, A: 255}
	colorHighlight = rl.Color{R: 255, G: 255, B: 0, A: 255}
	colorHint      = rl.Color{R: 200, G: 200, B: 200, A: 255}
)

type fonts struct {
	menu   rl.Font
	score  rl.Font
	custom bool
}

// loadFonts loads the configured TTF at both sizes, falling back to raylib's
// built-in font when no path is set or loading fails.
func (g *Game) loadFonts() {
	if path := g.cfg.Font.Path; path != "" {
		menu := rl.LoadFontEx(path, int32(g.cfg.Font.MenuSize), nil)
		score := rl.LoadFontEx(path, int32(g.cfg.Font.ScoreSize), nil)
		if menu.BaseSize > 0 && score.BaseSize > 0 {
			g.fonts = fonts{menu: menu, score: score, custom: true}
			return
		}
		rl.UnloadFont(menu)
		rl.UnloadFont(score)
	}
	g.fonts = fonts{menu: rl.GetFontDefault(), score: rl.GetFontDefault()}
}

func (g *Game) unloadFonts() {
	if g.fonts.custom {
		rl.UnloadFont(g.fonts.menu)
		rl.UnloadFont(g.fonts.score)
	}
}

// Draw renders one frame. Grass is the backdrop of every state; the board
// dims it with a translucent overlay, and the paused board stays visible
// behind the pause menu.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.drawGrass()

	switch g.state {
	case StateMainMenu:
		g.drawMainMenu()
	case StateConfigMenu:
		g.drawConfigMenu()
	case StateModeMenu:
		g.drawModeMenu()
	case StatePlaying:
		g.drawBoard()
		g.drawScore()
	case StatePaused:
		g.drawBoard()
		g.drawScore()
		g.drawPauseMenu()
	}

	rl.EndDrawing()
}

// drawGrass draws each blade as a line from its root to its swaying tip.
func (g *Game) drawGrass() {
	waveSpeed := g.cfg.Grass.WaveSpeed
	waveAmp := g.cfg.Grass.WaveAmplitude
	query := g.bladeFilter.Query()
	for query.Next() {
		blade := query.Get()
		tipX, tipY := bladeTip(blade, g.animTime, waveSpeed, waveAmp)
		rl.DrawLineV(
			rl.Vector2{X: blade.X, Y: blade.Y},
			rl.Vector2{X: tipX, Y: tipY},
			colorGrass,
		)
	}
}

func (g *Game) drawBoard() {
	g.drawGrid()

	// Translucent overlay for atmosphere
	rl.DrawRectangle(0, 0, int32(g.cfg.Screen.Width), int32(g.cfg.Screen.Height), colorOverlay)

	cell := int32(g.cfg.Grid.CellSize)
	for _, o := range g.obstacles {
		rl.DrawRectangle(int32(o.X), int32(o.Y), cell, cell, colorObstacle)
	}
	for _, s := range g.snake {
		rl.DrawRectangle(int32(s.X), int32(s.Y), cell, cell, colorSnake)
	}
	for _, f := range g.foods {
		rl.DrawRectangle(int32(f.X), int32(f.Y), cell, cell, colorFood)
	}

	if g.mode == ModeFlashlight {
		g.drawFlashlightMask()
	}

	g.drawSparkles()
}

func (g *Game) drawGrid() {
	w := int32(g.cfg.Screen.Width)
	h := int32(g.cfg.Screen.Height)
	cell := int32(g.cfg.Grid.CellSize)
	for x := int32(0); x < w; x += cell {
		rl.DrawLine(x, 0, x, h, colorGrid)
	}
	for y := int32(0); y < h; y += cell {
		rl.DrawLine(0, y, w, y, colorGrid)
	}
}

// drawFlashlightMask blacks out every cell outside the visibility disk. The
// per-cell fill keeps the mask aligned to the grid instead of a smooth
// circle; anything drawn after it (sparkles, score) stays visible.
func (g *Game) drawFlashlightMask() {
	cell := g.cfg.Grid.CellSize
	head := g.snake[0]
	radius := g.cfg.Game.FlashlightRadius
	for y := 0; y < g.cfg.Screen.Height; y += cell {
		for x := 0; x < g.cfg.Screen.Width; x += cell {
			if !cellVisible(x, y, head, cell, radius) {
				rl.DrawRectangle(int32(x), int32(y), int32(cell), int32(cell), rl.Black)
			}
		}
	}
}

// cellVisible reports whether the cell at (x, y) lies inside the flashlight
// disk around the head. Cells are corner-aligned on the same grid, so the
// corner distance equals the center distance.
func cellVisible(x, y int, head Cell, cellSize, radiusCells int) bool {
	r := radiusCells * cellSize
	dx := x - head.X
	dy := y - head.Y
	return dx*dx+dy*dy <= r*r
}

// drawSparkles renders each sparkle as a white square shrinking with its
// remaining life.
func (g *Game) drawSparkles() {
	query := g.sparkFilter.Query()
	for query.Next() {
		spark, life := query.Get()
		side := 5 * life.Value
		rl.DrawRectangleV(
			rl.Vector2{X: spark.X - side/2, Y: spark.Y - side/2},
			rl.Vector2{X: side, Y: side},
			rl.White,
		)
	}
}

func (g *Game) drawScore() {
	size := float32(g.cfg.Font.ScoreSize)
	rl.DrawTextEx(g.fonts.score, fmt.Sprintf("Score: %d", g.score),
		rl.Vector2{X: 10, Y: 10}, size, 1, rl.White)
	rl.DrawTextEx(g.fonts.score, fmt.Sprintf("High: %d", g.highScore),
		rl.Vector2{X: 10, Y: 40}, size, 1, colorHighlight)
}

const (
	buttonWidth   = 220
	buttonHeight  = 40
	buttonSpacing = 60
)

func (g *Game) drawMainMenu() {
	cx := int32(g.cfg.Screen.Width / 2)
	for i, item := range g.mainMenu.Items {
		g.drawButton(item, cx, int32(200+i*buttonSpacing), buttonWidth, i == g.mainMenu.Selected)
	}
	g.drawTextCentered("Use UP/DOWN to select, ENTER to confirm. ESC to pause/return",
		cx, int32(g.cfg.Screen.Height/2+150), 16, colorHint)
}

func (g *Game) drawPauseMenu() {
	cx := int32(g.cfg.Screen.Width / 2)
	base := int32(g.cfg.Screen.Height/2 - 20)
	for i, item := range g.pauseMenu.Items {
		g.drawButton(item, cx, base+int32(i*buttonSpacing), 200, i == g.pauseMenu.Selected)
	}
	g.drawTextCentered("Game Paused", cx, int32(g.cfg.Screen.Height/2-80), 32, colorHighlight)
	g.drawTextCentered("Use ENTER to select, ESC to resume",
		cx, int32(g.cfg.Screen.Height/2+90), 16, colorHint)
}

// drawButton fills the button with the highlight color when selected and
// centers a black label in it.
func (g *Game) drawButton(label string, cx, y, width int32, selected bool) {
	fill := rl.White
	if selected {
		fill = colorHighlight
	}
	rl.DrawRectangle(cx-width/2, y, width, buttonHeight, fill)
	g.drawTextCentered(label, cx, y+buttonHeight/2, float32(g.cfg.Font.MenuSize), rl.Black)
}

func (g *Game) drawConfigMenu() {
	cx := int32(g.cfg.Screen.Width / 2)
	g.drawTextCentered("CONFIG MENU", cx, 50, 28, colorHighlight)

	lines := []string{
		fmt.Sprintf("SnakeSpeed (smaller = faster): %d", g.cfg.Game.TickIntervalMS),
		fmt.Sprintf("Num Food: %d", g.cfg.Game.FoodCount),
		fmt.Sprintf("Num Obstacles: %d", g.cfg.Game.ObstacleCount),
		fmt.Sprintf("GrassAmplitude: %.2f", g.cfg.Grass.WaveAmplitude),
		fmt.Sprintf("GrassWaveSpeed: %.2f", g.cfg.Grass.WaveSpeed),
		"Back to Main Menu",
	}
	size := float32(g.cfg.Font.MenuSize)
	for i, line := range lines {
		col := rl.White
		if ConfigOption(i) == g.configOption {
			col = colorHighlight
		}
		m := rl.MeasureTextEx(g.fonts.menu, line, size, 1)
		rl.DrawTextEx(g.fonts.menu, line,
			rl.Vector2{X: float32(cx) - m.X/2, Y: float32(150 + i*50)}, size, 1, col)
	}

	g.drawTextCentered("Use UP/DOWN to select, LEFT/RIGHT to adjust. ESC = back",
		cx, int32(g.cfg.Screen.Height-40), 16, colorHint)
}

func (g *Game) drawModeMenu() {
	cx := int32(g.cfg.Screen.Width / 2)
	g.drawTextCentered("CHOOSE GAME MODE", cx, 60, 28, colorHighlight)

	size := float32(g.cfg.Font.MenuSize)
	for i, item := range g.modeMenu.Items {
		col := rl.White
		if i == g.modeMenu.Selected {
			col = colorHighlight
		}
		m := rl.MeasureTextEx(g.fonts.menu, item, size, 1)
		rl.DrawTextEx(g.fonts.menu, item,
			rl.Vector2{X: float32(cx) - m.X/2, Y: float32(200 + i*buttonSpacing)}, size, 1, col)
	}

	g.drawTextCentered("Use UP/DOWN to highlight, ENTER to confirm. ESC to return",
		cx, int32(g.cfg.Screen.Height-40), 16, colorHint)
}

func (g *Game) drawTextCentered(text string, cx, cy int32, size float32, col rl.Color) {
	m := rl.MeasureTextEx(g.fonts.menu, text, size, 1)
	rl.DrawTextEx(g.fonts.menu, text,
		rl.Vector2{X: float32(cx) - m.X/2, Y: float32(cy) - m.Y/2},
		size, 1, col)
}
