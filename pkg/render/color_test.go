package render

import (
	"image/color"
	"testing"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 51, 77})
	want := color.RGBA{100, 50, 25, 77}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestScaleColorClamps(t *testing.T) {
	got := ScaleColor(color.RGBA{200, 10, 0, 255}, 2)
	want := color.RGBA{255, 20, 0, 255}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestWithAlpha(t *testing.T) {
	if got := WithAlpha(color.RGBA{1, 2, 3, 255}, 10); got.A != 10 || got.R != 1 {
		t.Errorf("Unexpected %v", got)
	}
}
