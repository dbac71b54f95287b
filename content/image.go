package main

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"math/rand"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/images"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"city-chase/content/config"
)

const skylineWidth = 512

var (
	runnerImage  *ebiten.Image
	farImage     *ebiten.Image // 远景天际线，所有阶段共用
	streetImage  *ebiten.Image
	phaseImages  []*ebiten.Image
	cityPalettes = []color.RGBA{
		{0x2b, 0x2d, 0x42, 0xff},
		{0x4a, 0x2c, 0x40, 0xff},
		{0x1f, 0x3b, 0x4d, 0xff},
		{0x3d, 0x1e, 0x1e, 0xff},
	}
)

func InitImage(assetDir string, phases []config.Phase) error {
	img, _, err := image.Decode(bytes.NewReader(images.Runner_png))
	if err != nil {
		return err
	}
	runnerImage = ebiten.NewImageFromImage(img)

	farImage = newSkyline(0, color.RGBA{0x24, 0x24, 0x70, 0xff}, config.ScreenHeight/3)
	streetImage = newStreet()

	phaseImages = make([]*ebiten.Image, len(phases))
	for i, p := range phases {
		path := filepath.Join(assetDir, p.Background)
		bg, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			// 找不到背景图时使用生成的楼群
			slog.Warn("background not found, generating one", "phase", p.Name, "path", path, "error", err)
			bg = newSkyline(int64(i+1), cityPalettes[i%len(cityPalettes)], config.ScreenHeight/2)
		}
		phaseImages[i] = bg
	}
	return nil
}

// newSkyline 生成一条可水平平铺的楼群
func newSkyline(seed int64, clr color.RGBA, maxHeight int) *ebiten.Image {
	img := ebiten.NewImage(skylineWidth, config.ScreenHeight)
	r := rand.New(rand.NewSource(seed))
	window := color.RGBA{0xf2, 0xd0, 0x6b, 0xff}

	for x := 0; x < skylineWidth; {
		w := 24 + r.Intn(40)
		if x+w > skylineWidth {
			w = skylineWidth - x
		}
		h := maxHeight/3 + r.Intn(maxHeight-maxHeight/3)
		top := float32(config.ScreenHeight - h)
		vector.DrawFilledRect(img, float32(x), top, float32(w), float32(h), clr, false)

		for wy := int(top) + 6; wy < config.ScreenHeight-12; wy += 12 {
			for wx := x + 4; wx+4 < x+w; wx += 8 {
				if r.Intn(3) == 0 {
					vector.DrawFilledRect(img, float32(wx), float32(wy), 3, 4, window, false)
				}
			}
		}
		x += w + r.Intn(6)
	}
	return img
}

func newStreet() *ebiten.Image {
	const h = 24
	img := ebiten.NewImage(skylineWidth, h)
	img.Fill(color.RGBA{0x33, 0x33, 0x38, 0xff})
	vector.DrawFilledRect(img, 0, 0, skylineWidth, 3, color.RGBA{0x88, 0x88, 0x90, 0xff}, false)
	for x := 0; x < skylineWidth; x += 64 {
		vector.DrawFilledRect(img, float32(x), h/2, 32, 2, color.RGBA{0xe0, 0xe0, 0xe0, 0xff}, false)
	}
	return img
}

func disposeImages() {
	for _, img := range append([]*ebiten.Image{runnerImage, farImage, streetImage}, phaseImages...) {
		if img != nil {
			img.Dispose()
		}
	}
	runnerImage, farImage, streetImage, phaseImages = nil, nil, nil, nil
}
