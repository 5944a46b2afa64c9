package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/dotEntropy/merry-particles/pkg/physics"
	"github.com/dotEntropy/merry-particles/pkg/simulation"
)

// readInput samples keyboard and mouse once per tick.
func (g *Game) readInput() simulation.Input {
	mx, my := ebiten.CursorPosition()
	up, down := g.wheelSteps()

	return simulation.Input{
		Move: physics.MoveKeys{
			Up:    ebiten.IsKeyPressed(ebiten.KeyW),
			Down:  ebiten.IsKeyPressed(ebiten.KeyS),
			Left:  ebiten.IsKeyPressed(ebiten.KeyA),
			Right: ebiten.IsKeyPressed(ebiten.KeyD),
		},
		Pointer:        r2.Vec{X: float64(mx), Y: float64(my)},
		PrimaryHeld:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		PrimaryPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		ScrollUp:       up,
		ScrollDown:     down,
		ToggleTrickle:  inpututil.IsKeyJustPressed(ebiten.KeyT),
		Clear:          inpututil.IsKeyJustPressed(ebiten.KeySpace),
		GravityUp:      inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		GravityDown:    inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		InvertGravity:  inpututil.IsKeyJustPressed(ebiten.KeyN),
		Quit:           inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// wheelSteps turns wheel deltas into whole notches. Trackpads report
// fractions, so the remainder carries over to the next tick.
func (g *Game) wheelSteps() (up, down int) {
	_, dy := ebiten.Wheel()
	g.wheel += dy
	for g.wheel >= 1 {
		up++
		g.wheel--
	}
	for g.wheel <= -1 {
		down++
		g.wheel++
	}
	return up, down
}
