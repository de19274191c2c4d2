package arena

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"red", color.RGBA{0xff, 0, 0, 0xff}},
		{" Red ", color.RGBA{0xff, 0, 0, 0xff}},
		{"#00ff00", color.RGBA{0, 0xff, 0, 0xff}},
		{"#fff", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"#0af", color.RGBA{0x00, 0xaa, 0xff, 0xff}},
		{"not-a-color", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"", color.RGBA{0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		got := color.RGBAModel.Convert(ParseColor(tt.in)).(color.RGBA)
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
