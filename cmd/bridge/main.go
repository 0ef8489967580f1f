package main

import (
	"flag"
	"runtime"

	"github.com/leterax/go-bridge/pkg/audio"
	"github.com/leterax/go-bridge/pkg/level"
	"github.com/leterax/go-bridge/pkg/render"
	log "github.com/sirupsen/logrus"
)

func init() {
	// GLFW and OpenGL calls must all come from the main thread
	runtime.LockOSThread()
}

func main() {
	cfg := render.DefaultConfig()

	flag.IntVar(&cfg.Width, "width", cfg.Width, "Window width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Window height")
	flag.StringVar(&cfg.Title, "title", cfg.Title, "Window title")
	flag.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "Wait for vertical sync")
	flag.StringVar(&cfg.VertexShader, "vert", cfg.VertexShader, "Vertex shader path")
	flag.StringVar(&cfg.FragmentShader, "frag", cfg.FragmentShader, "Fragment shader path")
	flag.BoolVar(&cfg.Orbit, "orbit", cfg.Orbit, "Slowly orbit the tower camera")
	flag.BoolVar(&cfg.Retry, "retry", cfg.Retry, "Restart the level after a fall instead of quitting")
	sound := flag.Bool("sound", true, "Play sound effects")
	volume := flag.Float64("volume", 0.6, "Sound effect volume (0-1)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	lvl, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	log.WithFields(log.Fields{
		"width":  cfg.Width,
		"height": cfg.Height,
		"orbit":  cfg.Orbit,
		"retry":  cfg.Retry,
	}).Info("Starting bridge crossing")

	sounds, err := audio.NewPlayer(*sound, *volume)
	if err != nil {
		log.WithError(err).Warn("Sound disabled")
		sounds, _ = audio.NewPlayer(false, 0)
	}

	renderer, err := render.NewRenderer(cfg, level.Level1(), sounds)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	renderer.Run()
}
