package config

import (
	_ "embed"
)

//go:embed defaults/beats.yaml
var defaultBeatsYAML []byte

// DefaultBeatsConfig returns the built-in configuration.
func DefaultBeatsConfig() BeatsConfig {
	return BeatsConfig{
		TickRate: 60,
		Chart: ChartConfig{
			Count:      190,
			FirstIndex: 10,
			SpacingMS:  250,
		},
		Keys: KeysConfig{
			Lanes: DefaultLaneKeys(),
		},
		Display: DisplayConfig{
			PixelsPerRow:   25,
			FeedbackFrames: 20,
		},
		Audio: AudioConfig{
			Backend: AudioOto,
			Volume:  0.4,
		},
	}
}

// DefaultLaneKeys returns the stock lane bindings.
func DefaultLaneKeys() []string {
	return []string{"d", "f", "j", "k"}
}
