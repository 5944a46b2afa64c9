package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/dotEntropy/merry-particles/pkg/audio"
	"github.com/dotEntropy/merry-particles/pkg/render"
	"github.com/dotEntropy/merry-particles/pkg/simulation"
)

const (
	starCount = 180

	// particleDiameter is the sprite size at scale 1.
	particleDiameter = 48.0
)

// Game ---
type Game struct {
	sim   *simulation.Simulator
	cfg   simulation.Config
	sound *audio.Player
	stars *render.Starfield

	background    color.RGBA
	particleColor color.RGBA
	ringColor     color.RGBA
	sprites       map[float64]*ebiten.Image

	start time.Time
	last  time.Time
	wheel float64
}

func NewGame(cfg simulation.Config, sound *audio.Player) *Game {
	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
	sim := simulation.NewSimulator(cfg, r2.Vec{X: w / 2, Y: h / 2})
	sim.OnDevour = sound.Devoured

	now := time.Now()
	return &Game{
		sim:           sim,
		cfg:           cfg,
		sound:         sound,
		stars:         render.NewStarfield(w, h, starCount, cfg.Seed),
		background:    simulation.ParseColor(cfg.Window.Background),
		particleColor: simulation.ParseColor(cfg.Particles.Color),
		ringColor:     simulation.ParseColor(cfg.Attractor.Color),
		sprites:       make(map[float64]*ebiten.Image),
		start:         now,
		last:          now,
	}
}

// Update ---
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.last).Seconds()
	g.last = now

	err := g.sim.Tick(dt, g.readInput())
	if errors.Is(err, simulation.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw ---
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.drawStars(screen)
	g.drawParticles(screen)
	g.drawAttractor(screen)
	g.drawHUD(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func main() {
	envName := flag.String("env", "default", "Environment name (file in pkg/assets)")
	dotenv := flag.String("dotenv", ".env", "Optional .env file with MERRY_* overrides")
	flag.Parse()
	configPath := filepath.Join("pkg/assets", fmt.Sprintf("%s.json", *envName))

	cfg, err := simulation.LoadConfig(configPath, *dotenv)
	if err != nil {
		log.Fatalf("loading environment: %v", err)
	}

	sound, err := audio.NewPlayer(cfg.Audio)
	if err != nil {
		// Non-fatal, the simulation runs silent
		log.Printf("audio initialization failed: %v", err)
	}
	defer sound.Close()

	game := NewGame(cfg, sound)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Merry Particles - " + cfg.Name)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
