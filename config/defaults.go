package config

// DefaultConfig leaves DBPath empty; Load fills it with the XDG data path.
var DefaultConfig = Config{
	Depth:      2,
	Workers:    4,
	Games:      20,
	MaxTurns:   400,
	MoveChance: 0.5,
	LogLevel:   "info",
}
