package config

type Mode int

const (
	ModeTitle Mode = iota
	ModeGame
	ModePause
	ModeGameOver
	ModeWin
)

func (m Mode) String() string {
	switch m {
	case ModeTitle:
		return "title"
	case ModeGame:
		return "game"
	case ModePause:
		return "pause"
	case ModeGameOver:
		return "game_over"
	case ModeWin:
		return "win"
	}
	return "unknown"
}

const (
	ScreenWidth   = 640
	ScreenHeight  = 360
	FrameOX       = 0
	FrameOY       = 32 // run row of the runner sheet
	IdleOY        = 0  // idle row of the runner sheet
	FrameWidth    = 32
	FrameHeight   = 32
	FrameCount    = 8 // run cycle length, shared by the runner and the police
	IdleCount     = 5
	SpriteScale   = 2.0
	TitleFontSize = FontSize * 2
	FontSize      = 8
)

const (
	SampleRate = 48000
)
