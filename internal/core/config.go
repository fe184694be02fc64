package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Render/simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}
