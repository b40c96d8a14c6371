package render

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bouncy/config"
	"github.com/lixenwraith/bouncy/engine"
	"github.com/lixenwraith/bouncy/physics"
)

// Renderer draws world snapshots onto a tcell screen
// The arena fills every row except the last, which carries help or stats
type Renderer struct {
	screen    tcell.Screen
	canvas    *canvas
	ShowStats bool
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		canvas: newCanvas(0, 0, 0, 0),
	}
}

// Draw renders one frame; stats is shown on the bottom row when ShowStats is set
func (r *Renderer) Draw(s engine.Snapshot, stats string) {
	bg := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.SetStyle(bg)
	r.screen.Clear()

	cols, rows := r.screen.Size()
	arenaRows := rows - 1
	if cols <= 0 || arenaRows <= 0 {
		r.screen.Show()
		return
	}

	if s.Phase == engine.PhaseStart {
		r.drawMenu(cols, arenaRows)
	} else {
		r.canvas.reset(cols, arenaRows, s.Width, s.Height)
		for _, sh := range s.Shapes {
			switch sh.Kind {
			case physics.ShapeCircle:
				r.canvas.fillCircle(sh.X, sh.Y, sh.Radius, BallColor(sh.Color))
			case physics.ShapeRect:
				r.canvas.fillRect(sh.X, sh.Y, sh.W, sh.H, RgbPaddle)
			}
		}
		r.canvas.flush(r.screen, 0, RgbBackground)

		if s.Mode == config.ModePong {
			r.drawText(cols/4, 0, strconv.Itoa(s.LeftScore), RgbText)
			r.drawText(3*cols/4, 0, strconv.Itoa(s.RightScore), RgbText)
		} else {
			r.drawText(1, 0, fmt.Sprintf("gravity %.0f", s.Gravity), RgbDimText)
		}

		if s.Paused {
			msg := "Paused, press p to continue."
			r.drawText((cols-len(msg))/2, arenaRows*9/10, msg, RgbBanner)
		}
	}

	footer := helpLine(s)
	if r.ShowStats && stats != "" {
		footer = stats
	}
	r.drawText(0, rows-1, footer, RgbDimText)

	r.screen.Show()
}

func (r *Renderer) drawMenu(cols, rows int) {
	lines := []string{
		"B O U N C Y",
		"",
		"1  One Player",
		"2  Two Players",
		"",
		"q  Quit",
	}
	top := (rows - len(lines)) / 2
	for i, line := range lines {
		color := RgbText
		if i >= 2 {
			color = RgbMenuKey
		}
		r.drawText((cols-len(line))/2, top+i, line, color)
	}
}

// drawText writes ASCII text clipped to the screen
func (r *Renderer) drawText(x, y int, text string, fg tcell.Color) {
	cols, rows := r.screen.Size()
	if y < 0 || y >= rows {
		return
	}
	style := tcell.StyleDefault.Foreground(fg).Background(RgbBackground)
	for i, ch := range text {
		if col := x + i; col >= 0 && col < cols {
			r.screen.SetContent(col, y, ch, nil, style)
		}
	}
}

func helpLine(s engine.Snapshot) string {
	switch {
	case s.Phase == engine.PhaseStart:
		return "1/2 choose players  q quit"
	case s.Mode == config.ModePong && s.SinglePlayer:
		return "p pause  i/k or arrows right paddle  q quit"
	case s.Mode == config.ModePong:
		return "p pause  w/s left  i/k or arrows right  q quit"
	default:
		return "space fire  g/G gravity  p pause  q quit"
	}
}
