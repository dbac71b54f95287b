package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"city-chase/content/world"
)

var (
	keysStart  = []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}
	keysPause  = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}
	keysUp     = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	keysDown   = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	keysSelect = []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}
)

func readControls() world.Controls {
	return world.Controls{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	}
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
