//go:build !android && !ios && !js

package game

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/gen2brain/beeep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sqweek/dialog"
)

// desktopNotifier shows a modal box per winner. Each box runs on its own
// goroutine so the tick and frame loops keep going behind it. When the
// window is in the background a desktop notification is raised as well.
type desktopNotifier struct{}

func newNotifier() Notifier { return desktopNotifier{} }

func (desktopNotifier) Winner(name string) {
	msg := fmt.Sprintf("%s wins!", name)
	log.Printf("GAME: %s", msg)
	if headless() {
		return
	}
	if !ebiten.IsFocused() {
		if err := beeep.Notify("Round over", msg, ""); err != nil {
			log.Printf("GAME: notify: %v", err)
		}
	}
	go dialog.Message("%s", msg).Title("Round over").Info()
}

// Skip on headless Linux without DISPLAY; beeep and dialog would error.
func headless() bool {
	return runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == ""
}
