//go:build android

package main

import (
	"context"
	"log"

	"orbs/internal/game"
	"orbs/internal/netcfg"

	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	log.Println("Android init: SetGame")
	game.SetPlatform("android")
	cfg, err := netcfg.Load("")
	if err != nil {
		log.Printf("Android config: %v", err)
		cfg = netcfg.Default()
	}
	mobile.SetGame(game.New(context.Background(), cfg))
}

func main() {}
