package arena

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	colorBorder = color.RGBA{0x44, 0x44, 0x44, 0xff}
	colorFood   = color.RGBA{0x00, 0xff, 0x00, 0xff}
	colorLabel  = color.White
)

// ParseColor understands CSS color names and #rgb / #rrggbb. Anything else
// falls back to white so a bad color never blocks a draw.
func ParseColor(s string) color.Color {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c
	}
	if strings.HasPrefix(s, "#") && len(s) == 4 {
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	}
	if c, err := colorful.Hex(s); err == nil {
		r, g, b := c.RGB255()
		return color.RGBA{r, g, b, 0xff}
	}
	return color.White
}
