package game

import "testing"

func TestMainMenuTransitions(t *testing.T) {
	tests := []struct {
		name string
		keys []Key
		want State
	}{
		{"start game", []Key{KeyEnter}, StatePlaying},
		{"config menu", []Key{KeyDown, KeyEnter}, StateConfigMenu},
		{"mode menu", []Key{KeyDown, KeyDown, KeyEnter}, StateModeMenu},
		{"quit", []Key{KeyUp, KeyEnter}, StateQuit},
		{"escape does nothing", []Key{KeyEscape}, StateMainMenu},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			for _, k := range tt.keys {
				g.dispatch(k)
			}
			if g.state != tt.want {
				t.Errorf("state = %v, want %v", g.state, tt.want)
			}
		})
	}
}

func TestConfigMenuEnterIsNoOp(t *testing.T) {
	g := newTestGame(t, 1)
	g.state = StateConfigMenu
	food := g.cfg.Game.FoodCount

	g.dispatch(KeyEnter)

	if g.state != StateConfigMenu {
		t.Errorf("state = %v, want config menu", g.state)
	}
	if g.cfg.Game.FoodCount != food {
		t.Errorf("food count changed on Enter: %d -> %d", food, g.cfg.Game.FoodCount)
	}
}

func TestConfigMenuBackLineExits(t *testing.T) {
	g := newTestGame(t, 1)
	g.state = StateConfigMenu
	g.configOption = OptionBack

	g.dispatch(KeyRight)

	if g.state != StateMainMenu {
		t.Errorf("state = %v, want main menu", g.state)
	}
}

func TestModeMenuSelectsMode(t *testing.T) {
	g := newTestGame(t, 1)
	g.state = StateModeMenu

	g.dispatch(KeyDown)
	g.dispatch(KeyEnter)

	if g.mode != ModeFlashlight {
		t.Errorf("mode = %v, want flashlight", g.mode)
	}
	if g.state != StateMainMenu {
		t.Errorf("state = %v, want main menu", g.state)
	}

	g.state = StateModeMenu
	g.dispatch(KeyUp)
	g.dispatch(KeyEnter)
	if g.mode != ModeNormal {
		t.Errorf("mode = %v, want normal", g.mode)
	}
}

func TestPauseAndResume(t *testing.T) {
	g := newTestGame(t, 1)
	g.state = StatePlaying

	g.dispatch(KeyEscape)
	if g.state != StatePaused {
		t.Fatalf("state = %v, want paused", g.state)
	}

	g.dispatch(KeyEscape)
	if g.state != StatePlaying {
		t.Errorf("escape from pause = %v, want playing", g.state)
	}

	g.dispatch(KeyEscape)
	g.dispatch(KeyEnter) // Resume is selected by default
	if g.state != StatePlaying {
		t.Errorf("resume = %v, want playing", g.state)
	}
}

func TestPauseToMainMenuRecordsRun(t *testing.T) {
	g := newTestGame(t, 1)
	g.state = StatePlaying
	g.score = 2

	g.dispatch(KeyEscape)
	g.dispatch(KeyDown) // Main Menu
	g.dispatch(KeyEnter)

	if g.state != StateMainMenu {
		t.Fatalf("state = %v, want main menu", g.state)
	}
	runs := g.collector.Runs()
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}
	if runs[0].Cause != causeAbandoned {
		t.Errorf("cause = %q, want %q", runs[0].Cause, causeAbandoned)
	}
	if runs[0].Score != 2 {
		t.Errorf("score = %d, want 2", runs[0].Score)
	}
}

func TestDirectionChangeRejectsReversal(t *testing.T) {
	tests := []struct {
		name string
		dir  Cell
		key  Key
		want Cell
	}{
		{"left while right", Cell{1, 0}, KeyLeft, Cell{1, 0}},
		{"right while left", Cell{-1, 0}, KeyRight, Cell{-1, 0}},
		{"up while down", Cell{0, 1}, KeyUp, Cell{0, 1}},
		{"down while up", Cell{0, -1}, KeyDown, Cell{0, -1}},
		{"turn up while right", Cell{1, 0}, KeyUp, Cell{0, -1}},
		{"turn left while down", Cell{0, 1}, KeyLeft, Cell{-1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			g.state = StatePlaying
			g.dir = tt.dir

			g.dispatch(tt.key)

			if g.dir != tt.want {
				t.Errorf("dir = %v, want %v", g.dir, tt.want)
			}
		})
	}
}
