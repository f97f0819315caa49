package cell

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/llehouerou/timg/internal/rgb"
)

// ErrTableFormat is returned for a malformed color table definition.
var ErrTableFormat = errors.New("color table format")

// Table remaps literal SGR parameter strings (e.g. "38;2;0;0;0") to
// alternates (e.g. "30") before they are emitted.
type Table map[string]string

// xterm's default 16-color palette, in SGR order.
var xtermColors = [16]uint32{
	0x000000, 0xcd0000, 0x00cd00, 0xcdcd00, 0x0000ee, 0xcd00cd, 0x00cdcd, 0xe5e5e5,
	0x7f7f7f, 0xff0000, 0x00ff00, 0xffff00, 0x5c5cff, 0xff00ff, 0x00ffff, 0xffffff,
}

// DefaultTable maps the 16 xterm colors to their short SGR codes.
func DefaultTable() Table {
	t := make(Table, len(xtermColors)*2)
	for i, v := range xtermColors {
		p := rgb.Solid(rgb.FromUint(v))
		fgCode, bgCode := 30+i, 40+i
		if i >= 8 {
			fgCode, bgCode = 90+i-8, 100+i-8
		}
		t[Param(p, true)] = fmt.Sprint(fgCode)
		t[Param(p, false)] = fmt.Sprint(bgCode)
	}
	return t
}

// ParseTable parses "from:to,from:to", where both sides are SGR parameter
// strings made of digits and semicolons. An empty string is an empty table.
func ParseTable(s string) (Table, error) {
	t := Table{}
	if strings.TrimSpace(s) == "" {
		return t, nil
	}
	for entry := range strings.SplitSeq(s, ",") {
		from, to, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q has no ':' separator", ErrTableFormat, entry)
		}
		if !isParam(from) || !isParam(to) {
			return nil, fmt.Errorf("%w: %q is not an SGR parameter mapping", ErrTableFormat, entry)
		}
		t[from] = to
	}
	return t, nil
}

// Merge returns a new table with the entries of t overridden by other.
func (t Table) Merge(other Table) Table {
	merged := make(Table, len(t)+len(other))
	maps.Copy(merged, t)
	maps.Copy(merged, other)
	return merged
}

// String renders the table in the format accepted by ParseTable, sorted by key.
func (t Table) String() string {
	keys := slices.Sorted(maps.Keys(t))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+":"+t[k])
	}
	return strings.Join(parts, ",")
}

func isParam(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != ';' {
			return false
		}
	}
	return true
}
