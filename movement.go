package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleKeys processes the key bindings. Actions fire on release.
//
//	R       regenerate walls
//	M       toggle manual (mouse) mode
//	W       toggle walls and scanning
//	Ctrl+S  save a screenshot
func (g *Game) handleKeys() {
	if inpututil.IsKeyJustReleased(ebiten.KeyR) {
		g.world.RegenerateWalls()
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyS) && controlPressed() {
		g.screenshotPending = true
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyM) {
		g.toggleManual()
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyW) {
		g.toggleWalls()
	}
}

func controlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
}
