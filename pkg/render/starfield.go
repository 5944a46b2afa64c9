// Package render holds drawing helpers that do not depend on the display
// backend.
package render

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

const (
	noiseAlpha = 2.0
	noiseBeta  = 2.0
	noiseOct   = 3

	twinkleRate = 0.35
)

type Star struct {
	X, Y  float64
	Size  float64
	phase float64
}

// Starfield is a fixed set of background stars whose brightness drifts with
// perlin noise over time.
type Starfield struct {
	Stars []Star
	noise *perlin.Perlin
}

func NewStarfield(width, height float64, count int, seed int64) *Starfield {
	rnd := rand.New(rand.NewSource(seed))
	stars := make([]Star, count)
	for i := range stars {
		stars[i] = Star{
			X:     rnd.Float64() * width,
			Y:     rnd.Float64() * height,
			Size:  0.5 + rnd.Float64()*1.5,
			phase: rnd.Float64() * 1000,
		}
	}
	return &Starfield{
		Stars: stars,
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOct, seed),
	}
}

// Brightness of star i at time t seconds, in [0, 1].
func (f *Starfield) Brightness(i int, t float64) float64 {
	s := f.Stars[i]
	n := f.noise.Noise2D(s.phase, t*twinkleRate)
	b := 0.55 + n
	if math.IsNaN(b) {
		return 0
	}
	return math.Min(math.Max(b, 0), 1)
}
