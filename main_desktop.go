//go:build !android

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"orbs/internal/game"
	"orbs/internal/netcfg"
)

func main() {
	defPath, err := netcfg.DefaultPath()
	if err != nil {
		log.Printf("no default config file: %v", err)
	}
	configPath := flag.String("config", defPath, "YAML config file")
	url := flag.String("url", "", "server websocket URL (overrides config)")
	name := flag.String("name", "", "display name; \"camera\" joins as spectator")
	color := flag.String("color", "", "player color, CSS name or #rrggbb")
	debug := flag.Bool("debug", false, "show the debug overlay")
	flag.Parse()

	netcfg.LoadDotEnv()
	cfg, err := netcfg.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *url != "" {
		cfg.Server.URL = *url
	}
	if *name != "" {
		cfg.Player.Name = *name
	}
	if *color != "" {
		cfg.Player.Color = *color
	}
	cfg.Debug = cfg.Debug || *debug
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game.SetPlatform("desktop")
	log.Println("Desktop main() starting...")
	if err := game.Run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}
