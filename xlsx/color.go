package xlsx

import (
	"strings"

	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
)

// legacyPalette is the default indexed color table. Indexes 64 and 65 are the
// system foreground and background and have no fixed value.
var legacyPalette = [...]string{
	"000000", "FFFFFF", "FF0000", "00FF00", "0000FF", "FFFF00", "FF00FF", "00FFFF",
	"000000", "FFFFFF", "FF0000", "00FF00", "0000FF", "FFFF00", "FF00FF", "00FFFF",
	"800000", "008000", "000080", "808000", "800080", "008080", "C0C0C0", "808080",
	"9999FF", "993366", "FFFFCC", "CCFFFF", "660066", "FF8080", "0066CC", "CCCCFF",
	"000080", "FF00FF", "FFFF00", "00FFFF", "800080", "800000", "008080", "0000FF",
	"00CCFF", "CCFFFF", "CCFFCC", "FFFF99", "99CCFF", "FF99CC", "CC99FF", "FFCC99",
	"3366FF", "33CCCC", "99CC00", "FFCC00", "FF9900", "FF6600", "666699", "969696",
	"003366", "339966", "003300", "333300", "993300", "993366", "333399", "333333",
}

// colorToRGB resolves an explicit, theme or indexed color to RRGGBB. It
// returns "" for automatic and unresolvable colors. Tint is not applied.
func colorToRGB(wb *spreadsheet.Workbook, c *sml.CT_Color) string {
	switch {
	case c == nil:
		return ""
	case c.RgbAttr != nil && *c.RgbAttr != "":
		return stripAlpha(*c.RgbAttr)
	case c.ThemeAttr != nil:
		return themeColor(wb, *c.ThemeAttr)
	case c.IndexedAttr != nil && int(*c.IndexedAttr) < len(legacyPalette):
		return legacyPalette[*c.IndexedAttr]
	}
	return ""
}

// themeColor looks idx up in the color scheme of the first theme. Theme
// indexes follow the scheme order dk1 lt1 dk2 lt2 accent1-6 hlink folHlink.
func themeColor(wb *spreadsheet.Workbook, idx uint32) string {
	if wb == nil {
		return ""
	}
	themes := wb.Themes()
	if len(themes) == 0 || themes[0] == nil {
		return ""
	}
	cs := themes[0].ThemeElements.ClrScheme
	scheme := []*dml.CT_Color{
		cs.Dk1, cs.Lt1, cs.Dk2, cs.Lt2,
		cs.Accent1, cs.Accent2, cs.Accent3, cs.Accent4, cs.Accent5, cs.Accent6,
		cs.Hlink, cs.FolHlink,
	}
	if int(idx) >= len(scheme) || scheme[idx] == nil {
		return ""
	}
	clr := scheme[idx]
	switch {
	case clr.SrgbClr != nil && clr.SrgbClr.ValAttr != "":
		return strings.ToUpper(clr.SrgbClr.ValAttr)
	case clr.SysClr != nil && clr.SysClr.LastClrAttr != nil:
		return strings.ToUpper(*clr.SysClr.LastClrAttr)
	}
	return ""
}

// stripAlpha drops the alpha byte of an AARRGGBB value.
func stripAlpha(hex string) string {
	hex = strings.ToUpper(strings.TrimPrefix(hex, "#"))
	if len(hex) == 8 {
		return hex[2:]
	}
	return hex
}
