package main

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"city-chase/content/config"
	"city-chase/content/menu"
	"city-chase/content/world"
)

type Game struct {
	mode   config.Mode
	tuning *config.Tuning
	world  *world.World
	menu   *menu.PauseMenu
	count  int
	log    *slog.Logger
}

func NewGame(tuning *config.Tuning) *Game {
	g := &Game{
		tuning: tuning,
		menu:   menu.NewPauseMenu(),
	}
	g.init()
	return g
}

func (g *Game) init() {
	g.mode = config.ModeTitle
	g.world = world.New(g.tuning,
		config.ScreenWidth, config.ScreenHeight,
		config.FrameWidth*config.SpriteScale, config.FrameHeight*config.SpriteScale,
	)
	g.menu.Reset()
	g.log = slog.With("run", uuid.NewString())
}

func (g *Game) Update() error {
	g.count++

	switch g.mode {
	case config.ModeTitle:
		if anyJustPressed(keysStart) {
			g.mode = config.ModeGame
			g.log.Info("run started")
		}
	case config.ModeGame:
		// 按 Esc 或 P 暂停
		if anyJustPressed(keysPause) {
			g.mode = config.ModePause
			g.menu.Reset()
			g.log.Debug("paused", "elapsed", g.world.Elapsed())
			return nil
		}
		if err := g.resolveModeGame(); err != nil {
			return err
		}
	case config.ModePause:
		return g.resolveModePause()
	case config.ModeGameOver, config.ModeWin:
		if anyJustPressed(keysStart) {
			g.init()
		}
	}

	return nil
}

func (g *Game) resolveModeGame() error {
	// 固定步长，每秒 TPS 次
	dt := 1 / float64(ebiten.TPS())
	ev := g.world.Step(dt, readControls())

	if ev.PhaseChanged {
		phase := g.world.Phases.Current()
		g.log.Info("phase changed",
			"phase", ev.Phase,
			"name", phase.Name,
			"multiplier", phase.SpeedMultiplier,
			"score", g.world.Score.Score(),
		)
	}

	switch ev.Outcome {
	case world.OutcomeCaught:
		if err := playHit(); err != nil {
			return err
		}
		g.mode = config.ModeGameOver
		g.log.Info("run ended", "outcome", ev.Outcome, "score", g.world.Score.Score(), "elapsed", g.world.Elapsed())
	case world.OutcomeEscaped:
		g.mode = config.ModeWin
		g.log.Info("run ended", "outcome", ev.Outcome, "score", g.world.Score.Score(), "elapsed", g.world.Elapsed())
	}

	return nil
}

func (g *Game) resolveModePause() error {
	switch {
	case anyJustPressed(keysPause):
		g.mode = config.ModeGame
		g.log.Debug("resumed")
	case anyJustPressed(keysUp):
		g.menu.Up()
	case anyJustPressed(keysDown):
		g.menu.Down()
	case anyJustPressed(keysSelect):
		switch g.menu.Selected() {
		case menu.ItemResume:
			g.mode = config.ModeGame
			g.log.Debug("resumed")
		case menu.ItemRestart:
			g.log.Info("run abandoned", "score", g.world.Score.Score())
			g.init()
			g.mode = config.ModeGame
			g.log.Info("run started")
		case menu.ItemQuit:
			g.log.Info("quit from pause menu")
			return ebiten.Termination
		}
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
