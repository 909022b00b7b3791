package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-beats/internal/audio"
	"github.com/vovakirdan/tui-beats/internal/config"
	"github.com/vovakirdan/tui-beats/internal/core"
	"github.com/vovakirdan/tui-beats/internal/platform/tui"
	"github.com/vovakirdan/tui-beats/internal/storage"
)

// localUser names the profile used by play and menu.
func localUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	if u := os.Getenv("USERNAME"); u != "" {
		return u
	}
	return "local"
}

// runtimeConfig sizes the run to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: beatsCfg.TickRate,
		Seed:     flagSeed,
	}
}

// localEnv resolves lane keys (--keys, then the stored profile, then the
// config) and opens the audio backend.
func localEnv(keysFlag string) (tui.Env, error) {
	env := tui.Env{
		Config: beatsCfg,
		Logger: logger,
	}

	if keysFlag != "" {
		keys, err := config.ParseLaneKeys(keysFlag)
		if err != nil {
			return env, fmt.Errorf("--keys: %w", err)
		}
		env.LaneKeys = keys
	} else {
		env.LaneKeys = storedKeys(localUser())
	}

	sound, err := audio.New(beatsCfg.Audio, os.Stdout)
	if err != nil {
		// Continue with the terminal bell - the game still works
		fmt.Fprintf(os.Stderr, "Warning: %v, falling back to bell\n", err)
		sound = audio.NewBellPlayer(os.Stdout)
	}
	env.Sound = sound
	return env, nil
}

// storedKeys returns the lane keys saved for user, or nil.
func storedKeys(user string) []string {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open profiles database", "error", err)
		return nil
	}
	defer store.Close()

	p, err := store.Profile(user)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("cannot load profile", "user", user, "error", err)
		}
		return nil
	}
	if err := config.ValidateLaneKeys(p.LaneKeys); err != nil {
		logger.Warn("ignoring stored profile", "user", user, "error", err)
		return nil
	}
	return p.LaneKeys
}
