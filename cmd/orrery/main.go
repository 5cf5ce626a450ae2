package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spacehole-rogue/orrery/assets"
	"github.com/spacehole-rogue/orrery/internal/display"
	"github.com/spacehole-rogue/orrery/internal/game"
	"github.com/spacehole-rogue/orrery/internal/input"
	"github.com/spacehole-rogue/orrery/internal/render"
	"github.com/spacehole-rogue/orrery/internal/world"
)

const (
	title = "Orrery"

	// maxFrameTime caps dt so a stall does not fling the orbits forward.
	maxFrameTime = 0.1
)

// Game is the Ebitengine game struct. It owns the window side; all scene
// state lives in sim.
type Game struct {
	sim       *game.Sim
	renderer  *render.Renderer
	presenter *display.Presenter
	keyboard  *display.Keyboard
	last      time.Time
}

func NewGame(cfg game.Config) (*Game, error) {
	sys, err := loadScene(cfg.ScenePath)
	if err != nil {
		return nil, err
	}
	slog.Info("scene loaded", "name", sys.Name, "bodies", sys.Len())

	kb, err := display.NewKeyboard(input.DefaultBindings)
	if err != nil {
		return nil, err
	}

	return &Game{
		sim:       game.NewSim(cfg, sys, game.LoadTextures(sys, cfg.TextureDir)),
		renderer:  render.NewRenderer(cfg.Width, cfg.Height),
		presenter: display.NewPresenter(),
		keyboard:  kb,
	}, nil
}

func loadScene(path string) (*world.SolarSystem, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = assets.ReadScene(assets.DemoScene)
	} else {
		data, err = os.ReadFile(filepath.Clean(path))
	}
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	return world.LoadScene(data)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	dt := min(now.Sub(g.last).Seconds(), maxFrameTime)
	g.last = now

	g.sim.Update(float32(dt), g.keyboard.Poll())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.Render(g.renderer)
	g.presenter.Draw(screen, g.renderer.FrameBuffer())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.renderer.Width, g.renderer.Height
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	level, _ := game.ParseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	game.SetLogger(logger)

	g, err := NewGame(cfg)
	if err != nil {
		log.Fatalf("start: %v", err)
	}

	ebiten.SetWindowSize(int(float64(cfg.Width)*cfg.Scale), int(float64(cfg.Height)*cfg.Scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// parseConfig reads -config first, then lets any flag given on the command
// line override the file.
func parseConfig(args []string) (game.Config, error) {
	def := game.DefaultConfig()
	fs := flag.NewFlagSet(title, flag.ContinueOnError)
	configPath := fs.String("config", "", "JSON config file")
	width := fs.Int("width", def.Width, "framebuffer width in pixels")
	height := fs.Int("height", def.Height, "framebuffer height in pixels")
	scale := fs.Float64("scale", def.Scale, "window pixels per framebuffer pixel")
	scene := fs.String("scene", def.ScenePath, "scene JSON file (default: built-in demo)")
	textures := fs.String("textures", def.TextureDir, "directory holding body textures")
	level := fs.String("log-level", def.LogLevel, "debug, info, warn or error")
	showMap := fs.Bool("map", def.ShowMap, "start with the minimap open")
	if err := fs.Parse(args); err != nil {
		return def, err
	}

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = game.LoadConfig(*configPath); err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "scale":
			cfg.Scale = *scale
		case "scene":
			cfg.ScenePath = *scene
		case "textures":
			cfg.TextureDir = *textures
		case "log-level":
			cfg.LogLevel = *level
		case "map":
			cfg.ShowMap = *showMap
		}
	})
	return cfg, cfg.Validate()
}
