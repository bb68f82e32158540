package game

import (
	"math"
	"testing"

	"github.com/tlund/meadowsnake/components"
)

func TestGenerateGrassPlacesBladesInLowerHalf(t *testing.T) {
	g := newTestGame(t, 5)

	count := 0
	query := g.bladeFilter.Query()
	for query.Next() {
		b := query.Get()
		count++
		if b.X < 0 || b.X >= float32(g.cfg.Screen.Width) {
			t.Errorf("blade x = %v, want [0, %d)", b.X, g.cfg.Screen.Width)
		}
		if b.Y <= float32(g.cfg.Screen.Height/2) || b.Y > float32(g.cfg.Screen.Height) {
			t.Errorf("blade y = %v, want lower half of screen", b.Y)
		}
		if b.Height < 10 || b.Height >= 50 {
			t.Errorf("blade height = %v, want [10, 50)", b.Height)
		}
		if b.Amp < 0.5 || b.Amp > 9.5 {
			t.Errorf("blade amp = %v, want [0.5, 9.5]", b.Amp)
		}
	}
	if count != g.cfg.Grass.BladeCount {
		t.Errorf("blades = %d, want %d", count, g.cfg.Grass.BladeCount)
	}
}

func TestBladeTip(t *testing.T) {
	b := &components.Blade{X: 100, Y: 500, Height: 30, Phase: 0, Amp: 2}

	// At phase 0 and time 0 the sine is zero, no sway.
	x, y := bladeTip(b, 0, 0.05, 15)
	if x != 100 || y != 470 {
		t.Errorf("tip = (%v, %v), want (100, 470)", x, y)
	}

	// Peak sway: sin = 1 at animTime*speed = pi/2.
	x, _ = bladeTip(b, float32(math.Pi/2)/0.05, 0.05, 15)
	want := float32(100 + 15*2*0.1)
	if math.Abs(float64(x-want)) > 0.01 {
		t.Errorf("tip x at peak = %v, want %v", x, want)
	}

	// Zero amplitude freezes the sway entirely.
	x, _ = bladeTip(b, 123.4, 0.05, 0)
	if x != 100 {
		t.Errorf("tip x with zero amplitude = %v, want 100", x)
	}
}

func TestSparklesDecayAndExpire(t *testing.T) {
	g := newTestGame(t, 5)

	g.spawnSparkles(410, 310, 10)
	if got := g.sparkleCount(); got != 10 {
		t.Fatalf("sparkles = %d, want 10", got)
	}

	// Life 1.0 at 0.05 per tick lasts exactly 20 ticks.
	for i := 0; i < 19; i++ {
		g.decaySparkles()
	}
	if got := g.sparkleCount(); got != 10 {
		t.Errorf("sparkles after 19 ticks = %d, want 10", got)
	}

	g.decaySparkles()
	if got := g.sparkleCount(); got != 0 {
		t.Errorf("sparkles after 20 ticks = %d, want 0", got)
	}
}

func TestSparkleLifeAfterOneTick(t *testing.T) {
	g := newTestGame(t, 5)
	g.spawnSparkles(0, 0, 1)
	g.decaySparkles()

	query := g.sparkFilter.Query()
	for query.Next() {
		_, life := query.Get()
		if math.Abs(float64(life.Value)-0.95) > 1e-6 {
			t.Errorf("life = %v, want 0.95", life.Value)
		}
	}
}
