package main

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"city-chase/content/config"
	"city-chase/content/utils"
	"city-chase/content/world"
)

// 视差系数，由远到近
const (
	farFactor    = 0.2
	cityFactor   = 0.5
	streetFactor = 1.0
)

var (
	skyColor    = color.RGBA{0x33, 0x33, 0xcc, 0xff}
	dimColor    = color.RGBA{0x00, 0x00, 0x00, 0xa0}
	capColor    = color.RGBA{0x10, 0x18, 0x40, 0xff}
	selectColor = color.RGBA{0xf2, 0xd0, 0x6b, 0xff}
)

// Draw 每次绘制都会调用这个函数，重新设置画面元素的内容
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	snap := g.world.Snapshot()

	g.drawBackground(screen, snap)
	g.drawPolice(screen, snap)
	g.drawRunner(screen, snap)

	switch g.mode {
	case config.ModeTitle:
		g.drawOverlay(screen, "City Chase", "PRESS SPACE KEY TO START")
	case config.ModeGame:
		g.drawHUD(screen, snap)
	case config.ModePause:
		g.drawHUD(screen, snap)
		g.drawPauseMenu(screen)
	case config.ModeGameOver:
		g.drawOverlay(screen, "Busted!", "SCORE "+strconv.Itoa(snap.Score)+" - PRESS SPACE KEY TO RESTART")
	case config.ModeWin:
		g.drawOverlay(screen, "You Escaped!", "SCORE "+strconv.Itoa(snap.Score)+" - PRESS SPACE KEY TO PLAY AGAIN")
	}
}

func (g *Game) drawBackground(screen *ebiten.Image, snap world.Snapshot) {
	drawLayer(screen, farImage, snap.CameraX, farFactor, 0, 1)

	bg := phaseImages[snap.Phase]
	scale := float64(config.ScreenHeight) / float64(bg.Bounds().Dy())
	drawLayer(screen, bg, snap.CameraX, cityFactor, 0, scale)

	drawLayer(screen, streetImage, snap.CameraX, streetFactor, config.ScreenHeight-g.tuning.GroundMargin, 1)
}

// drawLayer 将图片沿水平方向平铺满屏幕
func drawLayer(screen, img *ebiten.Image, cameraX, factor, y, scale float64) {
	w := float64(img.Bounds().Dx()) * scale
	start := utils.TileOffset(cameraX, factor, w)
	for i := 0; i < utils.TileCount(start, w, config.ScreenWidth); i++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(start+float64(i)*w, y)
		screen.DrawImage(img, op)
	}
}

func (g *Game) drawRunner(screen *ebiten.Image, snap world.Snapshot) {
	var sx, sy int
	if !snap.RunnerMoving {
		i := (g.count / 5) % config.IdleCount
		sx, sy = config.FrameOX+i*config.FrameWidth, config.IdleOY
	} else {
		sx, sy = config.FrameOX+snap.RunnerFrame*config.FrameWidth, config.FrameOY
	}

	op := &ebiten.DrawImageOptions{}
	scaleX := snap.RunnerSize[0] / config.FrameWidth
	scaleY := snap.RunnerSize[1] / config.FrameHeight
	if snap.FacingRight {
		op.GeoM.Scale(scaleX, scaleY)
		op.GeoM.Translate(snap.Runner[0], snap.Runner[1])
	} else {
		// 朝左时水平翻转
		op.GeoM.Scale(-scaleX, scaleY)
		op.GeoM.Translate(snap.Runner[0]+snap.RunnerSize[0], snap.Runner[1])
	}
	screen.DrawImage(runnerImage.SubImage(image.Rect(sx, sy, sx+config.FrameWidth, sy+config.FrameHeight)).(*ebiten.Image), op)
}

func (g *Game) drawPolice(screen *ebiten.Image, snap world.Snapshot) {
	x, y := snap.Police[0], snap.Police[1]
	w, h := snap.PoliceSize[0], snap.PoliceSize[1]
	if !snap.PoliceShown {
		return
	}

	sx, sy := config.FrameOX+snap.PoliceFrame*config.FrameWidth, config.FrameOY
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/config.FrameWidth, h/config.FrameHeight)
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(0.35, 0.45, 1, 1)
	screen.DrawImage(runnerImage.SubImage(image.Rect(sx, sy, sx+config.FrameWidth, sy+config.FrameHeight)).(*ebiten.Image), op)

	// 警帽
	vector.DrawFilledRect(screen, float32(x+w*0.3), float32(y+h*0.12), float32(w*0.4), float32(h*0.08), capColor, false)
}

func (g *Game) drawHUD(screen *ebiten.Image, snap world.Snapshot) {
	drawText(screen, "Score: "+strconv.Itoa(snap.Score), 3, 3, config.FontSize, text.AlignStart, color.White)

	phase := fmt.Sprintf("Phase %d/%d: %s", snap.Phase+1, g.world.Phases.Len(), snap.PhaseName)
	drawText(screen, phase, config.ScreenWidth/2, 3, config.FontSize, text.AlignCenter, color.White)

	gap := snap.Gap
	if gap < 0 {
		gap = 0
	}
	drawText(screen, "Police: "+strconv.Itoa(int(gap))+"px", config.ScreenWidth-3, 3, config.FontSize, text.AlignEnd, color.White)
}

func (g *Game) drawPauseMenu(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, dimColor, false)
	drawText(screen, "Paused", config.ScreenWidth/2, 5*config.TitleFontSize, config.TitleFontSize, text.AlignCenter, color.White)

	for i, item := range g.menu.Items() {
		label, clr := item.String(), color.Color(color.White)
		if g.menu.IsSelected(item) {
			label, clr = "> "+label+" <", selectColor
		}
		y := 8*config.TitleFontSize + float64(i)*2*config.FontSize
		drawText(screen, label, config.ScreenWidth/2, y, config.FontSize, text.AlignCenter, clr)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image, title, texts string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, dimColor, false)
	drawText(screen, title, config.ScreenWidth/2, 5*config.TitleFontSize, config.TitleFontSize, text.AlignCenter, color.White)
	drawText(screen, texts, config.ScreenWidth/2, 7*config.TitleFontSize, config.FontSize, text.AlignCenter, color.White)
}

func drawText(screen *ebiten.Image, s string, x, y, size float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = size
	op.PrimaryAlign = align
	text.Draw(screen, s, &text.GoTextFace{
		Source: arcadeFaceSource,
		Size:   size,
	}, op)
}
