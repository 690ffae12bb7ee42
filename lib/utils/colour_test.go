package utils

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestColourValidate(t *testing.T) {
	for _, c := range []string{"#ff0000ff", "#FFFFFFFF", "#00000000"} {
		if !ColourValidate(c) {
			t.Errorf("%s should be valid", c)
		}
	}
	for _, c := range []string{"", "ff0000ff", "#ff0000", "#ff0000ffff", "#gg0000ff", "x#ff0000ff"} {
		if ColourValidate(c) {
			t.Errorf("%s should be invalid", c)
		}
	}
}

func TestColourParse(t *testing.T) {
	got := ColourParse("#ff000080")
	want := mgl32.Vec4{1, 0, 0, 128.0 / 255}
	if !got.ApproxEqual(want) {
		t.Errorf("got %v, expected %v", got, want)
	}
	if got := ColourParse("nonsense"); got != (mgl32.Vec4{}) {
		t.Errorf("expected zero colour for invalid input, got %v", got)
	}
}
