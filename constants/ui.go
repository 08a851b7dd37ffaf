package constants

// Overlay text
const (
	TextPaused      = "PAUSED"
	TextDied        = "YOU DIED"
	TextWon         = "YOU WON"
	TextScore       = "SCORE: %d"
	TextHighscore   = "HIGHSCORE: %d"
	TextNewRecord   = "HIGHSCORE: %d NEW"
	TextRestartHint = "enter/space/r to restart"
	TextResize      = "please resize"
	TextResizeSize  = "need %dx%d, have %dx%d"
)

// Status line text
const (
	TextStatus     = "score %d  high %d"
	TextStatusHint = "space pause  q quit"
)

// Paths
const (
	// AppName names the config directory and log file
	AppName = "vi-snake"

	// ConfigFileName is looked up under the user config directory
	ConfigFileName = "config.toml"

	// HighscoreFileName is the default highscore file under the user config directory
	HighscoreFileName = "highscore.toml"
)
