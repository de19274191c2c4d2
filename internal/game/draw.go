package game

import (
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hako/durafmt"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

// Draw is the per-frame paint. It never mutates session state.
func (g *Game) Draw(screen *ebiten.Image) {
	c := newCanvas(screen)
	if err := g.sess.Frame(c); err != nil && g.frameErrLog.Allow() {
		log.Printf("GAME: frame: %v", err)
	}

	_, h := c.Size()
	if g.connSt != stateConnected {
		msg := "Connecting..."
		if g.connSt == stateFailed {
			msg = fmt.Sprintf("Disconnected: %s (retrying)", g.connErrMsg)
		}
		ebitenutil.DebugPrintAt(screen, msg, 10, int(h)-40)
	}
	if g.showDebug {
		ebitenutil.DebugPrintAt(screen, g.debugLine(), 10, int(h)-20)
	}
}

func (g *Game) debugLine() string {
	up := durafmt.Parse(time.Since(g.started).Round(time.Second)).LimitFirstN(2).Format(shortUnits)
	line := fmt.Sprintf("%s | %s | up %s | %.0f fps %.0f tps",
		g.sess.Identity().Name, g.connSt, up, ebiten.ActualFPS(), ebiten.ActualTPS())
	if g.net != nil {
		s := g.net.Stats()
		line += fmt.Sprintf(" | rx %s/%d msgs tx %s/%d msgs",
			humanize.Bytes(uint64(s.BytesIn)), s.MsgsIn, humanize.Bytes(uint64(s.BytesOut)), s.MsgsOut)
	}
	if snap := g.sess.Snapshot(); snap != nil {
		line += fmt.Sprintf(" | %d players %d food", len(snap.Players), len(snap.Food))
	}
	return line
}
