// Command orbs-term plays or spectates an orbs arena from a terminal.
// Keys w/a/s/d move, mouse drag steers, the wheel zooms a spectator
// camera, Esc quits.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"orbs/internal/game/arena"
	gnet "orbs/internal/game/net"
	"orbs/internal/netcfg"
	"orbs/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	dir, dirErr := netcfg.ConfigDir()
	if dirErr != nil {
		dir = os.TempDir()
	}
	configPath := flag.String("config", "", "YAML config file (default <config dir>/orbs.yaml)")
	url := flag.String("url", "", "server websocket URL (overrides config)")
	name := flag.String("name", "", "display name; \"camera\" joins as spectator")
	color := flag.String("color", "", "player color, CSS name or #rrggbb")
	flag.Parse()

	// The screen owns stdout, so logs go to a file.
	logPath := filepath.Join(dir, "orbs-term.log")
	if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}
	if dirErr != nil {
		log.Printf("TERM: %v", dirErr)
	} else if *configPath == "" {
		*configPath, _ = netcfg.DefaultPath()
	}

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
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	conn, err := gnet.Dial(dialCtx, cfg.Server.URL, cfg.Server.Token)
	cancel()
	if err != nil {
		log.Fatalf("TERM: %v", err)
	}
	defer conn.Close()

	sess := arena.NewSession(arena.NewIdentity(cfg.Player.Name, cfg.Player.Color))
	if err := sess.Join(conn); err != nil {
		log.Fatalf("TERM: join: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("TERM: screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("TERM: screen init: %v", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	err = term.NewLoop(screen, sess).Run(ctx, conn.Inbox())
	screen.Fini()
	if err != nil {
		_ = conn.Close()
		log.Printf("TERM: %v", err)
		os.Exit(1)
	}
}
