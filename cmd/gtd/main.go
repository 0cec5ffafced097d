package main

import (
	"github.com/Toastaspiring/game-themed-to-do-list/cmd/gtd/root"
)

func main() {
	root.Execute()
}
