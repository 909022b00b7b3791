// Package config provides YAML-based configuration loading for tui-beats.
package config

import "time"

// BeatsConfig contains all configuration for a run.
type BeatsConfig struct {
	TickRate int           `yaml:"tick_rate"`
	Chart    ChartConfig   `yaml:"chart"`
	Keys     KeysConfig    `yaml:"keys"`
	Display  DisplayConfig `yaml:"display"`
	Audio    AudioConfig   `yaml:"audio"`
}

// ChartConfig shapes generated charts. Beat i is scheduled at
// i*SpacingMS for i in [FirstIndex, FirstIndex+Count).
type ChartConfig struct {
	Count      int `yaml:"count"`
	FirstIndex int `yaml:"first_index"`
	SpacingMS  int `yaml:"spacing_ms"`
}

// Slot returns the hit time of the n-th beat of a chart, counting from 0.
func (c ChartConfig) Slot(n int) time.Duration {
	return time.Duration(c.FirstIndex+n) * time.Duration(c.SpacingMS) * time.Millisecond
}

// KeysConfig binds one key per lane, left to right.
type KeysConfig struct {
	Lanes []string `yaml:"lanes"`
}

// DisplayConfig controls how the playfield is drawn.
type DisplayConfig struct {
	// PixelsPerRow converts render offsets into terminal rows.
	PixelsPerRow float64 `yaml:"pixels_per_row"`
	// FeedbackFrames is how many frames a judgement popup stays visible.
	FeedbackFrames int  `yaml:"feedback_frames"`
	ShowDelta      bool `yaml:"show_delta"`
}

// AudioBackend selects how hit sounds are produced.
type AudioBackend string

const (
	AudioOto  AudioBackend = "oto"  // local speaker
	AudioBell AudioBackend = "bell" // terminal bell
	AudioNone AudioBackend = "none"
)

// AudioConfig controls the hit sound.
type AudioConfig struct {
	Backend AudioBackend `yaml:"backend"`
	Volume  float64      `yaml:"volume"`
}
