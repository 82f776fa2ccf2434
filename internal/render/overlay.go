package render

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"platformer/internal/game"
)

const (
	overlayFontSize   = 20
	overlayPadding    = 12
	overlayLineHeight = overlayFontSize + 4
	logFontSize       = 10
	logLines          = 8
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Overlay draws screen-space counters over the scene. The FPS line sits top-right; the
// game stats and the tail of the log are added in debug mode.
type Overlay struct {
	ShowFPS bool
	// Log, when set, supplies recent log lines (oldest first) for the debug view.
	Log func() []string

	frameCount    uint32
	lastFpsText   string
	lastStatsText string
	lastBodyText  string
}

// NewOverlay returns an overlay with the FPS counter set from showFPS.
func NewOverlay(showFPS bool, log func() []string) *Overlay {
	return &Overlay{ShowFPS: showFPS, Log: log}
}

// Draw renders the enabled lines. Call after Scene.Draw, outside any 2D camera mode.
func (o *Overlay) Draw(g *game.Game) {
	o.frameCount++
	update := o.frameCount%updateInterval == 0 || o.lastFpsText == ""

	if update {
		o.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		s := g.Stats()
		o.lastStatsText = fmt.Sprintf("jumps %d  tunnels %d  enemies %d/%d",
			s.Jumps, s.Tunnels, s.EnemiesAlive, s.EnemiesAlive+s.EnemiesKilled)
		b := g.Player.Body
		o.lastBodyText = fmt.Sprintf("pos %.1f,%.1f  vel %.2f,%.2f",
			b.Bounds.X, b.Bounds.Y, b.Velocity.X, b.Velocity.Y)
	}

	y := int32(overlayPadding)
	if o.ShowFPS {
		drawRight(o.lastFpsText, y, rl.Green)
		y += overlayLineHeight
	}
	if g.Debug {
		drawRight(o.lastStatsText, y, rl.Green)
		y += overlayLineHeight
		drawRight(o.lastBodyText, y, rl.Green)
		o.drawLog()
	}
}

func (o *Overlay) drawLog() {
	if o.Log == nil {
		return
	}
	lines := o.Log()
	if len(lines) > logLines {
		lines = lines[len(lines)-logLines:]
	}
	y := int32(rl.GetScreenHeight()) - overlayPadding - int32(len(lines))*(logFontSize+2)
	for _, line := range lines {
		rl.DrawText(line, overlayPadding, y, logFontSize, rl.LightGray)
		y += logFontSize + 2
	}
}

func drawRight(text string, y int32, c rl.Color) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, overlayFontSize)
	x := int32(rl.GetScreenWidth()) - w - overlayPadding
	rl.DrawText(text, x, y, overlayFontSize, c)
}
