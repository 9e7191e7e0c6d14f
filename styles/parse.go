package styles

import (
	"fmt"
	"strings"

	"github.com/unidoc/unioffice/schema/soo/sml"
)

type enum interface {
	~uint8 | ~int | ~int32 | ~uint16 | ~uint32
	String() string
}

// parseEnum matches s against the attribute spelling of every value in
// [lo, hi].
func parseEnum[T enum](what, s string, lo, hi T) (T, error) {
	s = strings.TrimSpace(s)
	for v := lo; ; v++ {
		if strings.EqualFold(v.String(), s) {
			return v, nil
		}
		if v == hi {
			break
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrInvalidValue, what, s)
}

// ParseBorderStyle parses a border style such as "thin" or "mediumDashed".
func ParseBorderStyle(s string) (sml.ST_BorderStyle, error) {
	return parseEnum("border style", s, sml.ST_BorderStyleNone, sml.ST_BorderStyleSlantDashDot)
}

// ParsePatternType parses a fill pattern such as "solid" or "gray125".
func ParsePatternType(s string) (sml.ST_PatternType, error) {
	return parseEnum("fill pattern", s, sml.ST_PatternTypeNone, sml.ST_PatternTypeGray0625)
}

func ParseHorizontalAlignment(s string) (sml.ST_HorizontalAlignment, error) {
	return parseEnum("horizontal alignment", s, sml.ST_HorizontalAlignmentGeneral, sml.ST_HorizontalAlignmentDistributed)
}

func ParseVerticalAlignment(s string) (sml.ST_VerticalAlignment, error) {
	return parseEnum("vertical alignment", s, sml.ST_VerticalAlignmentTop, sml.ST_VerticalAlignmentDistributed)
}

// ParseSide parses a border side name.
func ParseSide(s string) (Side, error) {
	return parseEnum("border side", s, SideTop, SideDiagonal)
}
