package main

import "bubblepop/internal/game"

func main() {
	game.RunDesktop()
}
