package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"platformer/internal/engineconfig"
)

// Run opens the window and drives the main loop. Each frame it calls update with the frame
// time in seconds, then clears the screen and calls draw. An update error closes the window
// and is returned.
func Run(prefs engineconfig.EnginePrefs, title string, update func(dt float32) error, draw func()) error {
	prefs = prefs.Normalize()
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(prefs.ScreenWidth), int32(prefs.ScreenHeight), title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(prefs.TargetFPS))
	fallback := 1 / float32(prefs.TargetFPS)

	for !rl.WindowShouldClose() {
		// the first frame reports 0
		dt := rl.GetFrameTime()
		if dt <= 0 {
			dt = fallback
		}
		if err := update(dt); err != nil {
			return err
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
	return nil
}
