package game

// State identifies which screen owns input and rendering.
type State int

const (
	StateMainMenu State = iota
	StateConfigMenu
	StateModeMenu
	StatePlaying
	StatePaused
	StateQuit
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateConfigMenu:
		return "config_menu"
	case StateModeMenu:
		return "mode_menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateQuit:
		return "quit"
	}
	return "unknown"
}

// Key is a logical input event. The input layer maps physical keys (arrows
// and their WASD aliases) onto these before dispatch.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// dispatch routes one key event to the handler for the current state and
// applies the state transition it returns. Transitions happen only here.
func (g *Game) dispatch(k Key) {
	switch g.state {
	case StateMainMenu:
		g.state = g.handleMainMenu(k)
	case StateConfigMenu:
		g.state = g.handleConfigMenu(k)
	case StateModeMenu:
		g.state = g.handleModeMenu(k)
	case StatePlaying:
		g.state = g.handlePlaying(k)
	case StatePaused:
		g.state = g.handlePaused(k)
	}
}

func (g *Game) handleMainMenu(k Key) State {
	switch k {
	case KeyUp:
		g.mainMenu.Up()
	case KeyDown:
		g.mainMenu.Down()
	case KeyEnter:
		switch g.mainMenu.Selected {
		case 0:
			g.startGame()
			return StatePlaying
		case 1:
			return StateConfigMenu
		case 2:
			return StateModeMenu
		case 3:
			return StateQuit
		}
	}
	return StateMainMenu
}

func (g *Game) handleConfigMenu(k Key) State {
	switch k {
	case KeyUp:
		g.configOption = (g.configOption + numConfigOptions - 1) % numConfigOptions
	case KeyDown:
		g.configOption = (g.configOption + 1) % numConfigOptions
	case KeyLeft:
		if g.adjustConfigOption(false) {
			return StateMainMenu
		}
	case KeyRight:
		if g.adjustConfigOption(true) {
			return StateMainMenu
		}
	case KeyEscape:
		return StateMainMenu
	}
	return StateConfigMenu
}

func (g *Game) handleModeMenu(k Key) State {
	switch k {
	case KeyUp:
		g.modeMenu.Up()
	case KeyDown:
		g.modeMenu.Down()
	case KeyEnter:
		if g.modeMenu.Selected == 0 {
			g.mode = ModeNormal
		} else {
			g.mode = ModeFlashlight
		}
		return StateMainMenu
	case KeyEscape:
		return StateMainMenu
	}
	return StateModeMenu
}

func (g *Game) handlePlaying(k Key) State {
	switch k {
	case KeyUp:
		if g.dir.Y == 0 {
			g.dir = Cell{X: 0, Y: -1}
		}
	case KeyDown:
		if g.dir.Y == 0 {
			g.dir = Cell{X: 0, Y: 1}
		}
	case KeyLeft:
		if g.dir.X == 0 {
			g.dir = Cell{X: -1, Y: 0}
		}
	case KeyRight:
		if g.dir.X == 0 {
			g.dir = Cell{X: 1, Y: 0}
		}
	case KeyEscape:
		return StatePaused
	}
	return StatePlaying
}

func (g *Game) handlePaused(k Key) State {
	switch k {
	case KeyUp, KeyDown:
		g.pauseMenu.Down() // two items, so up and down both toggle
	case KeyEnter:
		if g.pauseMenu.Selected == 0 {
			return StatePlaying
		}
		g.endRun(causeAbandoned)
		return StateMainMenu
	case KeyEscape:
		return StatePlaying
	}
	return StatePaused
}
