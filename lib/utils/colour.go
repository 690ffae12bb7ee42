package utils

import (
	"fmt"
	"regexp"

	"github.com/go-gl/mathgl/mgl32"
)

var colourRegexp = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)

func ColourValidate(c string) bool {
	return colourRegexp.MatchString(c)
}

// ColourParse turns #RRGGBBAA into normalised RGBA components. Invalid
// input yields transparent black; check with ColourValidate first.
func ColourParse(s string) mgl32.Vec4 {
	var r, g, b, a uint8
	_, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a)
	if err != nil {
		return mgl32.Vec4{}
	}
	return mgl32.Vec4{
		float32(r) / 255,
		float32(g) / 255,
		float32(b) / 255,
		float32(a) / 255,
	}
}
