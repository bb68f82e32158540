package game

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/tlund/meadowsnake/components"
)

// sparkleDecay is subtracted from a sparkle's life on every movement tick.
// At 1.0 initial life a sparkle survives 20 ticks.
const sparkleDecay = 0.05

// generateGrass fills the ECS world with the blade field. Blades cover the
// lower half of the screen more densely toward the bottom edge and never
// move once placed; only their tips sway.
func (g *Game) generateGrass() {
	w := g.cfg.Screen.Width
	h := g.cfg.Screen.Height
	for i := 0; i < g.cfg.Grass.BladeCount; i++ {
		blade := components.Blade{
			X:      float32(g.rng.Intn(w)),
			Y:      float32(h - g.rng.Intn(h/2)),
			Height: float32(10 + g.rng.Intn(40)),
			Phase:  float32(g.rng.Intn(100)) * 0.1,
			Amp:    0.5 + float32(g.rng.Intn(10)),
		}
		g.bladeMapper.NewEntity(&blade)
	}
}

// bladeTip returns where a blade's tip sits at the given animation time.
// The sway scales with the configured amplitude and the blade's own factor.
func bladeTip(b *components.Blade, animTime float32, waveSpeed, waveAmp float64) (x, y float32) {
	sway := float32(math.Sin(float64(animTime)*waveSpeed+float64(b.Phase))) *
		float32(waveAmp) * b.Amp * 0.1
	return b.X + sway, b.Y - b.Height
}

// spawnSparkles emits a burst of sparkles at a pixel position, all starting
// at full life.
func (g *Game) spawnSparkles(x, y float32, count int) {
	for i := 0; i < count; i++ {
		spark := components.Spark{X: x, Y: y}
		life := components.Life{Value: 1.0}
		g.sparkMapper.NewEntity(&spark, &life)
	}
}

// decaySparkles ages every sparkle and removes the expired ones. Removal is
// deferred past the query; the world is locked while one is open.
func (g *Game) decaySparkles() {
	var dead []ecs.Entity
	query := g.sparkFilter.Query()
	for query.Next() {
		_, life := query.Get()
		life.Value -= sparkleDecay
		// Rounding leaves the final step near zero, not exactly at it.
		if life.Value <= 1e-4 {
			dead = append(dead, query.Entity())
		}
	}
	for _, e := range dead {
		g.sparkMapper.Remove(e)
	}
}

// sparkleCount reports live sparkles.
func (g *Game) sparkleCount() int {
	n := 0
	query := g.sparkFilter.Query()
	for query.Next() {
		n++
	}
	return n
}
