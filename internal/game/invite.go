package game

import (
	"fmt"
	"log"

	"github.com/atotto/clipboard"
)

// copyInvite puts the server URL on the clipboard so it can be shared.
func (g *Game) copyInvite() {
	invite := fmt.Sprintf("%s (player %s)", g.cfg.Server.URL, g.sess.Identity().Name)
	if err := clipboard.WriteAll(invite); err != nil {
		log.Printf("GAME: clipboard: %v", err)
		return
	}
	log.Printf("GAME: copied %q", invite)
}
