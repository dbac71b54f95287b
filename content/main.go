// Copyright 2018 The Ebiten Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"city-chase/content/config"
)

// Init 在窗口打开前加载图片、字体和音频
func Init(settings *config.Settings, tuning *config.Tuning) error {
	if err := InitImage(settings.AssetDir, tuning.Phases); err != nil {
		return fmt.Errorf("failed to load images: %w", err)
	}
	if err := InitFont(); err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	if err := InitAudio(); err != nil {
		return fmt.Errorf("failed to load audio: %w", err)
	}
	return nil
}

func main() {
	settings, err := config.Load()
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		os.Exit(1)
	}
	setupLogger(settings)

	tuning, err := config.LoadTuning(settings.TuningFile)
	if err != nil {
		slog.Error("failed to load tuning", "file", settings.TuningFile, "error", err)
		os.Exit(1)
	}

	if err := Init(settings, tuning); err != nil {
		slog.Error("init failed", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.ScreenWidth*settings.WindowScale, config.ScreenHeight*settings.WindowScale)
	ebiten.SetWindowTitle("City Chase")

	g := NewGame(tuning)
	slog.Info("starting", "phases", len(tuning.Phases), "win_score", tuning.WinScore)
	err = ebiten.RunGame(g)
	Dispose()
	if err != nil {
		slog.Error("game stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("shutdown")
}

func setupLogger(settings *config.Settings) {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch settings.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	switch settings.LogFormat {
	case "json":
		h = slog.NewJSONHandler(os.Stdout, opts)
	default:
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(h).With("session", uuid.NewString()))
}
