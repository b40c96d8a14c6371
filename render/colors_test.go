package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBallColor(t *testing.T) {
	tests := []struct {
		name string
		tag  int
		want tcell.Color
	}{
		{"Green", 0, RgbBallGreen},
		{"Red", 1, RgbBallRed},
		{"Blue", 2, RgbBallBlue},
		{"Wraps past palette", 4, RgbBallRed},
		{"Negative tag", -2, RgbBallBlue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BallColor(tt.tag); got != tt.want {
				t.Errorf("BallColor(%d) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestBallColorsDistinct(t *testing.T) {
	seen := make(map[tcell.Color]bool)
	for i := 0; i < len(ballColors); i++ {
		c := BallColor(i)
		if seen[c] {
			t.Errorf("tag %d reuses colour %v", i, c)
		}
		seen[c] = true
		if c == RgbBackground {
			t.Errorf("tag %d is invisible on the background", i)
		}
	}
}
