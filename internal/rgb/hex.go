package rgb

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Hex decoding errors.
var (
	ErrHexLength = errors.New("hex color length")
	ErrHexFormat = errors.New("hex color format")
)

const hexDigits = 6

// DecodeHex decodes a six digit, case-insensitive hex string into 0xRRGGBB.
func DecodeHex(s string) (uint32, error) {
	if len(s) != hexDigits {
		return 0, fmt.Errorf("%w: %q is %d characters, need %d", ErrHexLength, s, len(s), hexDigits)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a base16 string", ErrHexFormat, s)
	}
	return uint32(v), nil
}

// ParseHex decodes a six digit hex string into a Color.
func ParseHex(s string) (Color, error) {
	v, err := DecodeHex(s)
	if err != nil {
		return Color{}, err
	}
	return FromUint(v), nil
}

// ParsePalette parses a comma separated list of hex colors, e.g.
// "000000,888888,ffffff". Surrounding spaces are ignored.
func ParsePalette(s string) ([]Color, error) {
	parts := strings.Split(s, ",")
	colors := make([]Color, 0, len(parts))
	for _, part := range parts {
		c, err := ParseHex(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}
