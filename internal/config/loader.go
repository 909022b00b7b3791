package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-beats/internal/rhythm"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ReservedKeys cannot be bound to a lane.
var ReservedKeys = []string{"q", "r", "esc", "tab", "enter", "ctrl+c"}

const fileName = "beats.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.beats/configs/beats.yaml -> ./configs/beats.yaml -> embedded default.
// Files are applied on top of DefaultBeatsConfig, so partial files are fine.
func Load(customPath string) (BeatsConfig, error) {
	cfg := DefaultBeatsConfig()

	// A custom path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(fileName), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		if fileCfg, ok := tryFile(path); ok {
			return fileCfg, fileCfg.Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBeatsYAML, &cfg); err != nil {
		return DefaultBeatsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// tryFile reads an optional config file. Missing or malformed files are
// skipped so the next location in the search order is tried.
func tryFile(path string) (BeatsConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BeatsConfig{}, false
	}
	cfg := DefaultBeatsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BeatsConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".beats", "configs", filename)
}

// Validate checks that the configuration can drive a run.
func (c BeatsConfig) Validate() error {
	switch {
	case c.TickRate < 1 || c.TickRate > 240:
		return fmt.Errorf("%w: tick_rate must be in [1, 240], got %d", ErrInvalidConfig, c.TickRate)
	case c.Chart.Count < 1:
		return fmt.Errorf("%w: chart.count must be positive, got %d", ErrInvalidConfig, c.Chart.Count)
	case c.Chart.FirstIndex < 0:
		return fmt.Errorf("%w: chart.first_index must not be negative", ErrInvalidConfig)
	case c.Chart.SpacingMS < 1:
		return fmt.Errorf("%w: chart.spacing_ms must be positive, got %d", ErrInvalidConfig, c.Chart.SpacingMS)
	case c.Display.PixelsPerRow <= 0:
		return fmt.Errorf("%w: display.pixels_per_row must be positive", ErrInvalidConfig)
	case c.Display.FeedbackFrames < 1:
		return fmt.Errorf("%w: display.feedback_frames must be positive", ErrInvalidConfig)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be in [0, 1], got %v", ErrInvalidConfig, c.Audio.Volume)
	}

	switch c.Audio.Backend {
	case AudioOto, AudioBell, AudioNone:
	default:
		return fmt.Errorf("%w: unknown audio.backend %q", ErrInvalidConfig, c.Audio.Backend)
	}

	return ValidateLaneKeys(c.Keys.Lanes)
}

// ValidateLaneKeys checks that there is exactly one distinct, non-reserved
// key per lane.
func ValidateLaneKeys(keys []string) error {
	if len(keys) != rhythm.LaneCount {
		return fmt.Errorf("%w: need %d lane keys, got %d", ErrInvalidConfig, rhythm.LaneCount, len(keys))
	}
	for i, k := range keys {
		if k == "" {
			return fmt.Errorf("%w: lane %d has no key", ErrInvalidConfig, i)
		}
		if slices.Contains(ReservedKeys, k) {
			return fmt.Errorf("%w: key %q is reserved", ErrInvalidConfig, k)
		}
		if slices.Index(keys, k) != i {
			return fmt.Errorf("%w: key %q bound to more than one lane", ErrInvalidConfig, k)
		}
	}
	return nil
}

// ParseLaneKeys parses a lane binding written either as one character per
// lane ("dfjk") or as a comma or space separated list ("d,f,j,k", "left down up right").
func ParseLaneKeys(s string) ([]string, error) {
	s = strings.TrimSpace(s)

	var keys []string
	if strings.ContainsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) }) {
		keys = strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	} else if utf8.RuneCountInString(s) == rhythm.LaneCount {
		for _, r := range s {
			keys = append(keys, string(r))
		}
	} else {
		return nil, fmt.Errorf("%w: cannot parse lane keys %q", ErrInvalidConfig, s)
	}

	for i := range keys {
		keys[i] = strings.ToLower(keys[i])
	}
	if err := ValidateLaneKeys(keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// ApplyEnv overrides fields from BEATS_* variables. lookup is usually
// os.LookupEnv.
func ApplyEnv(cfg *BeatsConfig, lookup func(string) (string, bool)) error {
	if v, ok := lookup("BEATS_KEYS"); ok && v != "" {
		keys, err := ParseLaneKeys(v)
		if err != nil {
			return fmt.Errorf("BEATS_KEYS: %w", err)
		}
		cfg.Keys.Lanes = keys
	}
	if v, ok := lookup("BEATS_AUDIO"); ok && v != "" {
		cfg.Audio.Backend = AudioBackend(strings.ToLower(v))
	}
	if v, ok := lookup("BEATS_VOLUME"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("BEATS_VOLUME: %w", err)
		}
		cfg.Audio.Volume = f
	}
	if v, ok := lookup("BEATS_TICK_RATE"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BEATS_TICK_RATE: %w", err)
		}
		cfg.TickRate = n
	}
	return cfg.Validate()
}
