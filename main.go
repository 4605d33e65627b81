package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-shapes/config"
)

func main() {
	game := NewGame()

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Shapes - click to spawn")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
