package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds window and debug preferences. Persisted across runs; level data lives in level files.
type EnginePrefs struct {
	ScreenWidth   int    `json:"screen_width"`
	ScreenHeight  int    `json:"screen_height"`
	TargetFPS     int    `json:"target_fps"`
	ShowFPS       bool   `json:"show_fps"`
	DebugRenderer bool   `json:"debug_renderer"`
	Workers       int    `json:"workers"`
	Level         string `json:"level,omitempty"`
}

// Default returns a 1280x720 window at 60 FPS with overlays off and 4 workers.
func Default() EnginePrefs {
	return EnginePrefs{
		ScreenWidth:  1280,
		ScreenHeight: 720,
		TargetFPS:    60,
		Workers:      4,
	}
}

// Normalize replaces non-positive sizes and counts with defaults.
func (p EnginePrefs) Normalize() EnginePrefs {
	d := Default()
	if p.ScreenWidth <= 0 {
		p.ScreenWidth = d.ScreenWidth
	}
	if p.ScreenHeight <= 0 {
		p.ScreenHeight = d.ScreenHeight
	}
	if p.TargetFPS <= 0 {
		p.TargetFPS = d.TargetFPS
	}
	if p.Workers <= 0 {
		p.Workers = d.Workers
	}
	return p
}

// Load reads engine preferences from path (EngineConfigPath when empty). If the file is missing
// or invalid, returns Default() and does not create a file.
func Load(path string) (EnginePrefs, error) {
	if path == "" {
		path = EngineConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p.Normalize(), nil
}

// Save writes engine preferences to path (EngineConfigPath when empty), creating the directory if needed.
func Save(path string, p EnginePrefs) error {
	if path == "" {
		path = EngineConfigPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
