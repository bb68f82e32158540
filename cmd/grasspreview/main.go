// Grass field preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/grasspreview
package main

import (
	"fmt"
	"math"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	windowWidth   = 1100
	windowHeight  = 620
	previewWidth  = 800
	previewHeight = 600
	panelWidth    = windowWidth - previewWidth - 30
)

// GrassParams holds the tunable grass field parameters.
type GrassParams struct {
	BladeCount    int
	WaveSpeed     float32
	WaveAmplitude float32
	Seed          int64
}

type blade struct {
	x, y, height, phase, amp float32
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Grass Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	// Defaults matching config/defaults.yaml
	params := GrassParams{
		BladeCount:    3000,
		WaveSpeed:     0.05,
		WaveAmplitude: 15.0,
		Seed:          12345,
	}
	defaults := params

	blades := generateBlades(params)
	needsRegen := false

	var animTime float32
	animating := true

	grassColor := rl.Color{R: 34, G: 139, B: 34, A: 255}

	for !rl.WindowShouldClose() {
		if animating {
			animTime += 0.02
		}
		if needsRegen {
			blades = generateBlades(params)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		// Draw preview
		for _, b := range blades {
			sway := float32(math.Sin(float64(animTime*params.WaveSpeed+b.phase))) *
				params.WaveAmplitude * b.amp * 0.1
			rl.DrawLineV(
				rl.Vector2{X: 10 + b.x, Y: 10 + b.y},
				rl.Vector2{X: 10 + b.x + sway, Y: 10 + b.y - b.height},
				grassColor,
			)
		}
		rl.DrawRectangleLines(10, 10, previewWidth, previewHeight, rl.DarkGray)

		// Control panel
		panelX := float32(previewWidth + 20)
		panelY := float32(10)

		rl.DrawText("Grass Field Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		// Blade count slider
		rl.DrawText("Blade count", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newCount := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"100", "10000",
			float32(params.BladeCount), 100, 10000,
		)
		rl.DrawText(fmt.Sprintf("%d", params.BladeCount), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.RayWhite)
		if int(newCount) != params.BladeCount {
			params.BladeCount = int(newCount)
			needsRegen = true
		}
		panelY += 35

		// Wave speed slider
		rl.DrawText("Wave speed (phase advance per anim unit)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSpeed := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "0.5",
			params.WaveSpeed, 0, 0.5,
		)
		rl.DrawText(fmt.Sprintf("%.3f", params.WaveSpeed), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.RayWhite)
		if newSpeed != params.WaveSpeed {
			params.WaveSpeed = newSpeed
		}
		panelY += 35

		// Amplitude slider
		rl.DrawText("Wave amplitude (sway scale)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newAmp := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "50",
			params.WaveAmplitude, 0, 50,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.WaveAmplitude), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.RayWhite)
		if newAmp != params.WaveAmplitude {
			params.WaveAmplitude = newAmp
		}
		panelY += 35

		// Seed slider
		rl.DrawText("Seed", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSeed := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "99999",
			float32(params.Seed), 0, 99999,
		)
		rl.DrawText(fmt.Sprintf("%d", params.Seed), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.RayWhite)
		if int64(newSeed) != params.Seed {
			params.Seed = int64(newSeed)
			needsRegen = true
		}
		panelY += 45

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset Time") {
			animTime = 0
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(0, 99999))
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaults
			animTime = 0
			needsRegen = true
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.RayWhite)
		panelY += 25
		for _, line := range yamlLines(params) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			yaml := ""
			for _, line := range yamlLines(params) {
				yaml += line + "\n"
			}
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()
	}
}

func yamlLines(params GrassParams) []string {
	return []string{
		"grass:",
		fmt.Sprintf("  blade_count: %d", params.BladeCount),
		fmt.Sprintf("  wave_speed: %.3f", params.WaveSpeed),
		fmt.Sprintf("  wave_amplitude: %.1f", params.WaveAmplitude),
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// generateBlades places blades the same way the game does: roots across the
// lower half of the screen, per-blade height, phase, and sway factor.
func generateBlades(params GrassParams) []blade {
	rng := rand.New(rand.NewSource(params.Seed))
	blades := make([]blade, params.BladeCount)
	for i := range blades {
		blades[i] = blade{
			x:      float32(rng.Intn(previewWidth)),
			y:      float32(previewHeight - rng.Intn(previewHeight/2)),
			height: float32(10 + rng.Intn(40)),
			phase:  float32(rng.Intn(100)) * 0.1,
			amp:    0.5 + float32(rng.Intn(10)),
		}
	}
	return blades
}
