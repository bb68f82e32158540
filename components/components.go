// Package components defines ECS components for the effects layer.
//
// Only decorative entities live in the ECS world: grass blades and sparkle
// particles. Gameplay cells (snake, food, obstacles) are plain grid slices.
package components

// Blade is one grass blade. All fields are fixed at generation time; the
// rendered tip position is derived from the shared animation clock.
type Blade struct {
	X      float32 // base x in pixels
	Y      float32 // base y in pixels (bottom of the blade)
	Height float32 // blade length in pixels
	Phase  float32 // per-blade wave phase offset
	Amp    float32 // per-blade amplitude multiplier
}

// Spark is a sparkle particle's position.
type Spark struct {
	X, Y float32
}

// Life is a sparkle's remaining life. It starts at 1.0 and decays a fixed
// amount per gameplay tick; the entity is removed once it reaches zero.
type Life struct {
	Value float32
}
