package xlsx

import (
	"github.com/aerissecure/xlstyle/styles"
	"github.com/unidoc/unioffice/schema/soo/sml"
)

var summarySides = []styles.Side{styles.SideTop, styles.SideBottom, styles.SideLeft, styles.SideRight, styles.SideDiagonal}

// Summarize resolves every attribute of cs into a StyleSummary. Theme colors
// are looked up in the workbook theme.
func (w *Workbook) Summarize(cs *styles.CellStyle) (StyleSummary, error) {
	var st StyleSummary

	font, err := cs.Font()
	if err != nil {
		return st, err
	}
	st.FontFamily = styles.FontName(font)
	st.FontSizePt = styles.FontSize(font)
	st.FontColor = colorToRGB(w.wb, styles.FontColor(font))
	st.Bold = styles.FontBold(font)
	st.Italic = styles.FontItalic(font)

	pattern, err := cs.FillPattern()
	if err != nil {
		return st, err
	}
	st.FillPattern = pattern.String()
	if pattern != sml.ST_PatternTypeNone {
		fg, err := cs.FillForegroundColor()
		if err != nil {
			return st, err
		}
		st.BackgroundColor = colorToRGB(w.wb, fg)
	}

	for _, side := range summarySides {
		bs, err := cs.BorderStyle(side)
		if err != nil {
			return st, err
		}
		if bs == sml.ST_BorderStyleNone {
			continue
		}
		if st.Borders == nil {
			st.Borders = make(map[string]string)
		}
		st.Borders[side.String()] = bs.String()
	}
	left, err := cs.BorderColor(styles.SideLeft)
	if err != nil {
		return st, err
	}
	st.BorderColor = colorToRGB(w.wb, left)

	st.HorizontalAlign = cs.HorizontalAlignment().String()
	switch cs.VerticalAlignment() {
	case sml.ST_VerticalAlignmentTop:
		st.VerticalAlign = "top"
	case sml.ST_VerticalAlignmentCenter:
		st.VerticalAlign = "middle"
	default:
		st.VerticalAlign = "bottom"
	}
	st.WrapText = cs.WrapText()
	st.Indent = cs.Indent()
	st.IndentPx = float64(st.Indent) * 8.0
	st.Rotation = cs.Rotation()

	st.NumberFormat, err = cs.NumberFormat()
	if err != nil {
		return st, err
	}
	st.Locked = cs.Locked()
	st.Hidden = cs.Hidden()
	return st, nil
}
