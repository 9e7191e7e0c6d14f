package styles

import (
	"fmt"
	"strings"

	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/schema/soo/sml"
)

// FontOption changes one property of a font being derived.
type FontOption func(*sml.CT_Font)

// DeriveFont returns a new font definition equal to base with opts applied.
// base is not modified and may be nil. Pass the result to CellStyle.SetFont.
func DeriveFont(base *sml.CT_Font, opts ...FontOption) *sml.CT_Font {
	var f *sml.CT_Font
	if base == nil {
		f = sml.NewCT_Font()
	} else {
		f = copyFont(base)
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func WithFontName(name string) FontOption {
	return func(f *sml.CT_Font) {
		n := sml.NewCT_FontName()
		n.ValAttr = name
		f.Name = []*sml.CT_FontName{n}
	}
}

// WithFontSize sets the size in points.
func WithFontSize(pt float64) FontOption {
	return func(f *sml.CT_Font) {
		sz := sml.NewCT_FontSize()
		sz.ValAttr = pt
		f.Sz = []*sml.CT_FontSize{sz}
	}
}

func WithBold(v bool) FontOption {
	return func(f *sml.CT_Font) { f.B = boolProperty(v) }
}

func WithItalic(v bool) FontOption {
	return func(f *sml.CT_Font) { f.I = boolProperty(v) }
}

// ParseRGB turns RRGGBB or AARRGGBB, with an optional leading '#', into the
// AARRGGBB form stored in the rgb attribute. Six digits get an opaque alpha.
func ParseRGB(hex string) (string, error) {
	s := strings.ToUpper(strings.TrimPrefix(hex, "#"))
	if len(s) != 6 && len(s) != 8 {
		return "", fmt.Errorf("%w: color %q", ErrInvalidValue, hex)
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789ABCDEF", r) {
			return "", fmt.Errorf("%w: color %q", ErrInvalidValue, hex)
		}
	}
	if len(s) == 6 {
		s = "FF" + s
	}
	return s, nil
}

// WithFontColorRGB sets an RRGGBB or AARRGGBB color. A value ParseRGB rejects
// leaves the color unchanged.
func WithFontColorRGB(hex string) FontOption {
	return func(f *sml.CT_Font) {
		argb, err := ParseRGB(hex)
		if err != nil {
			return
		}
		c := sml.NewCT_Color()
		c.RgbAttr = unioffice.String(argb)
		f.Color = []*sml.CT_Color{c}
	}
}

func WithFontColorIndex(idx uint32) FontOption {
	return func(f *sml.CT_Font) { f.Color = []*sml.CT_Color{newIndexedColor(idx)} }
}

func boolProperty(v bool) []*sml.CT_BooleanProperty {
	if !v {
		return nil
	}
	b := sml.NewCT_BooleanProperty()
	return []*sml.CT_BooleanProperty{b}
}

// FontName returns the typeface of f, or "" if unset.
func FontName(f *sml.CT_Font) string {
	if f == nil || len(f.Name) == 0 {
		return ""
	}
	return f.Name[0].ValAttr
}

// FontSize returns the size of f in points, or 0 if unset.
func FontSize(f *sml.CT_Font) float64 {
	if f == nil || len(f.Sz) == 0 {
		return 0
	}
	return f.Sz[0].ValAttr
}

func FontBold(f *sml.CT_Font) bool {
	return f != nil && boolSet(f.B)
}

func FontItalic(f *sml.CT_Font) bool {
	return f != nil && boolSet(f.I)
}

// FontColor returns the color of f, or nil.
func FontColor(f *sml.CT_Font) *sml.CT_Color {
	if f == nil || len(f.Color) == 0 {
		return nil
	}
	return f.Color[0]
}

// FontColorRGB returns the AARRGGBB value of an explicit font color, or "" for
// theme, indexed and automatic colors.
func FontColorRGB(f *sml.CT_Font) string {
	c := FontColor(f)
	if c == nil || c.RgbAttr == nil {
		return ""
	}
	return *c.RgbAttr
}

// An element without a val attribute means true.
func boolSet(p []*sml.CT_BooleanProperty) bool {
	if len(p) == 0 || p[0] == nil {
		return false
	}
	return p[0].ValAttr == nil || *p[0].ValAttr
}
