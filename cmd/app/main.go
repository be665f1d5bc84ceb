package main

import (
	"github.com/humanbelnik/distancehug/internal/app"
	"github.com/humanbelnik/distancehug/internal/config"
)

// @title Distance Hug API
// @version 1.0
// @description Rooms for two partners and the small things they send each other.
// @BasePath /api
func main() {
	app.Go(config.Load())
}
