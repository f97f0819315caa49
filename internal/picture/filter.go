package picture

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nfnt/resize"
)

// ErrUnknownFilter is returned when a filter name or index does not match.
var ErrUnknownFilter = errors.New("unknown filter")

// Filter is a named resampling kernel.
type Filter struct {
	Name   string
	Interp resize.InterpolationFunction
}

// Filters lists the kernels from cheapest to best.
var Filters = []Filter{
	{Name: "nearest", Interp: resize.NearestNeighbor},
	{Name: "bilinear", Interp: resize.Bilinear},
	{Name: "bicubic", Interp: resize.Bicubic},
	{Name: "mitchell", Interp: resize.MitchellNetravali},
	{Name: "lanczos3", Interp: resize.Lanczos3},
}

// DefaultFilter is the index of Lanczos3.
const DefaultFilter = 4

// LookupFilter accepts either an index into Filters or a filter name.
func LookupFilter(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i, err := strconv.Atoi(s); err == nil {
		if i < 0 || i >= len(Filters) {
			return 0, fmt.Errorf("%w: %d", ErrUnknownFilter, i)
		}
		return i, nil
	}
	for i, f := range Filters {
		if f.Name == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// FilterName returns the name at index i, or "?" when out of range.
func FilterName(i int) string {
	if i < 0 || i >= len(Filters) {
		return "?"
	}
	return Filters[i].Name
}

// FilterNames returns all names in index order.
func FilterNames() []string {
	names := make([]string, len(Filters))
	for i, f := range Filters {
		names[i] = f.Name
	}
	return names
}
