package render

// Config holds the renderer settings chosen on the command line.
type Config struct {
	Width  int
	Height int
	Title  string
	VSync  bool

	VertexShader   string
	FragmentShader string

	// Orbit turns on the tower camera's slow rotation.
	Orbit bool
	// Retry restarts the level after a fall instead of closing the window.
	Retry bool
}

// DefaultConfig returns the settings the game ships with.
func DefaultConfig() Config {
	return Config{
		Width:          700,
		Height:         700,
		Title:          "Bridge Crossing",
		VSync:          true,
		VertexShader:   "assets/shaders/bridge.vert",
		FragmentShader: "assets/shaders/bridge.frag",
		Orbit:          false,
		Retry:          true,
	}
}
