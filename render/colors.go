package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bouncy/parameter"
)

// RGB palette, dark background
var (
	RgbBallGreen = tcell.NewRGBColor(0, 153, 0)  // Ball colour tag 0
	RgbBallRed   = tcell.NewRGBColor(255, 0, 0)  // Ball colour tag 1
	RgbBallBlue  = tcell.NewRGBColor(0, 68, 255) // Ball colour tag 2

	RgbPaddle     = tcell.NewRGBColor(144, 160, 176) // Slate gray
	RgbBackground = tcell.NewRGBColor(0, 0, 0)
	RgbText       = tcell.NewRGBColor(255, 255, 255)
	RgbDimText    = tcell.NewRGBColor(140, 140, 140)
	RgbBanner     = tcell.NewRGBColor(255, 200, 0) // Pause banner
	RgbMenuKey    = tcell.NewRGBColor(144, 187, 176)
)

var ballColors = [parameter.ColorCount]tcell.Color{RgbBallGreen, RgbBallRed, RgbBallBlue}

// BallColor maps a colour tag to its RGB; out-of-range tags wrap
func BallColor(tag int) tcell.Color {
	if tag < 0 {
		tag = -tag
	}
	return ballColors[tag%len(ballColors)]
}
