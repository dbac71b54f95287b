package main

import (
	"bytes"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	raudio "github.com/hajimehoshi/ebiten/v2/examples/resources/audio"

	"city-chase/content/config"
)

var (
	audioContext *audio.Context
	hitPlayer    *audio.Player // 被警察抓到时播放
)

func InitAudio() error {
	if audioContext == nil {
		audioContext = audio.NewContext(config.SampleRate)
	}
	jabD, err := wav.DecodeWithoutResampling(bytes.NewReader(raudio.Jab_wav))
	if err != nil {
		return err
	}
	hitPlayer, err = audioContext.NewPlayer(jabD)
	return err
}

func playHit() error {
	if err := hitPlayer.Rewind(); err != nil {
		return err
	}
	hitPlayer.Play()
	return nil
}

// Dispose 释放所有图片和音频资源
func Dispose() {
	disposeImages()
	if hitPlayer != nil {
		if err := hitPlayer.Close(); err != nil {
			slog.Warn("failed to close audio player", "error", err)
		}
		hitPlayer = nil
	}
}
