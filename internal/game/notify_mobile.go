//go:build android || ios || js

package game

import "log"

type logNotifier struct{}

func newNotifier() Notifier { return logNotifier{} }

func (logNotifier) Winner(name string) {
	log.Printf("GAME: %s wins!", name)
}
