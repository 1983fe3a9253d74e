package main

import (
	"os"

	"roulette_sim/internal/app"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		os.Exit(1)
	}
}
