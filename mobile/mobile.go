// Package mobile is the gomobile bind target for the Android app.
package mobile

import (
	"context"
	"log"

	"orbs/internal/game"
	"orbs/internal/netcfg"

	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	game.SetPlatform("android")
	cfg, err := netcfg.Load("")
	if err != nil {
		log.Printf("mobile config: %v", err)
		cfg = netcfg.Default()
	}
	mobile.SetGame(game.New(context.Background(), cfg))
}

// Dummy keeps gomobile from dropping the package.
func Dummy() {}
