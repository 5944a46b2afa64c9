package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudX      = 12
	hudY      = 24
	hudLineH  = 16
	ringWidth = 3
)

func (g *Game) drawStars(screen *ebiten.Image) {
	t := time.Since(g.start).Seconds()
	for i, s := range g.stars.Stars {
		a := uint8(math.Round(255 * g.stars.Brightness(i, t)))
		if a == 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(s.Size), color.RGBA{a, a, a, a}, true)
	}
}

// sprite returns the particle image for scale, building it on first use.
// Sprites are shared by every particle drawn at that scale.
func (g *Game) sprite(scale float64) *ebiten.Image {
	if img, ok := g.sprites[scale]; ok {
		return img
	}
	r := math.Max(particleDiameter*scale/2, 0.5)
	size := int(math.Ceil(2*r)) + 2
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	vector.DrawFilledCircle(img, c, c, float32(r), g.particleColor, true)
	g.sprites[scale] = img
	return img
}

func (g *Game) drawParticles(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	for _, p := range g.sim.Population.Particles() {
		img := g.sprite(p.Scale)
		half := float64(img.Bounds().Dx()) / 2
		op.GeoM.Reset()
		op.GeoM.Translate(float64(p.Anchor.X)-half, float64(p.Anchor.Y)-half)
		screen.DrawImage(img, op)
	}
}

func (g *Game) drawAttractor(screen *ebiten.Image) {
	a := g.sim.Attractor
	x, y, r := float32(a.Anchor.X), float32(a.Anchor.Y), float32(a.Radius)
	vector.DrawFilledCircle(screen, x, y, r, color.Black, true)
	ring := g.ringColor
	if a.Gravity < 0 {
		ring = color.RGBA{255, 120, 120, 255}
	}
	vector.StrokeCircle(screen, x, y, r, ringWidth, ring, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	for i, l := range g.sim.HUDLines() {
		text.Draw(screen, l, basicfont.Face7x13, hudX, hudY+i*hudLineH, color.RGBA{220, 220, 220, 255})
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.0f  FPS: %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		g.cfg.Window.Width-140, 4)
}
