package game

// Menu tracks the highlighted entry of a fixed list of items. Selection
// wraps at both ends.
type Menu struct {
	Items    []string
	Selected int
}

func (m *Menu) Up() {
	m.Selected = (m.Selected + len(m.Items) - 1) % len(m.Items)
}

func (m *Menu) Down() {
	m.Selected = (m.Selected + 1) % len(m.Items)
}

// ConfigOption indexes the editable lines of the config menu.
type ConfigOption int

const (
	OptionSpeed ConfigOption = iota
	OptionFood
	OptionObstacles
	OptionAmplitude
	OptionWaveSpeed
	OptionBack

	numConfigOptions
)

// adjustConfigOption applies a left (decrease) or right (increase) press to
// the highlighted option, editing the live config in place. It reports
// whether the menu should close, which only the Back line does.
//
// Speed is stored as the tick interval, so "increase" means a shorter
// interval. Decrementing past 1 wraps the interval to -20, which plays at
// maximum speed until the player slows back down.
func (g *Game) adjustConfigOption(increase bool) bool {
	gc := &g.cfg.Game
	gr := &g.cfg.Grass
	switch g.configOption {
	case OptionSpeed:
		if increase {
			if gc.TickIntervalMS > 1 {
				gc.TickIntervalMS--
			} else {
				gc.TickIntervalMS = -20
			}
		} else {
			gc.TickIntervalMS++
		}
	case OptionFood:
		if increase {
			gc.FoodCount++
		} else if gc.FoodCount > 0 {
			gc.FoodCount--
		}
	case OptionObstacles:
		if increase {
			gc.ObstacleCount++
		} else if gc.ObstacleCount > 0 {
			gc.ObstacleCount--
		}
	case OptionAmplitude:
		if increase {
			gr.WaveAmplitude++
		} else {
			gr.WaveAmplitude = max(0, gr.WaveAmplitude-1)
		}
	case OptionWaveSpeed:
		if increase {
			gr.WaveSpeed += 0.01
		} else {
			gr.WaveSpeed = max(0, gr.WaveSpeed-0.01)
		}
	case OptionBack:
		return true
	}
	return false
}
