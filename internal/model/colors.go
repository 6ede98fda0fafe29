package model

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses a hex color string into an NRGBA value.
// Accepts #RGB, #RRGGBB and #RRGGBBAA; the leading '#' is optional.
func ParseHex(hex string) (color.NRGBA, error) {
	digits := HexDigits(hex)
	for _, r := range digits {
		if !isHexDigit(r) {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: non-hex character %q", hex, r)
		}
	}

	alpha := uint8(255)
	switch len(digits) {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		alpha = uint8(a)
		digits = digits[:6]
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: must be 3, 6 or 8 hex digits", hex)
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// HexDigits strips surrounding space and the leading '#', and lowercases.
func HexDigits(hex string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(hex), "#"))
}

// ContrastText returns black or white, whichever reads better on top of
// the given color. Invalid colors get white.
func ContrastText(hex string) string {
	c, err := ParseHex(hex)
	if err != nil {
		return "#FFFFFF"
	}
	cf, _ := colorful.MakeColor(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
	l, _, _ := cf.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#FFFFFF"
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// OpaqueHex returns the #rrggbb form of a color, expanding shorthand and
// dropping alpha. Terminals can't render translucency. Invalid colors give "".
func OpaqueHex(hex string) string {
	c, err := ParseHex(hex)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
