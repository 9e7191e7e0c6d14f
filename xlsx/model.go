package xlsx

import (
	"fmt"
)

// Intermediate representation of a resolved cell style.

// StyleSummary captures the effective formatting of one cell after the
// direct and named style tiers have been resolved against the stylesheet.
type StyleSummary struct {
	FontFamily      string            `json:"fontFamily,omitempty"` // e.g. "Calibri"
	FontSizePt      float64           `json:"fontSizePt,omitempty"` // original size in points
	FontColor       string            `json:"fontColor,omitempty"`  // "RRGGBB"
	Bold            bool              `json:"bold,omitempty"`
	Italic          bool              `json:"italic,omitempty"`
	FillPattern     string            `json:"fillPattern"`               // none|solid|gray125|...
	BackgroundColor string            `json:"backgroundColor,omitempty"` // "RRGGBB", pattern foreground
	BorderColor     string            `json:"borderColor,omitempty"`     // left-border color as representative
	Borders         map[string]string `json:"borders,omitempty"`         // side -> style, sides with a line only
	HorizontalAlign string            `json:"horizontalAlign"`           // general|left|center|right|...
	VerticalAlign   string            `json:"verticalAlign"`             // top|middle|bottom
	WrapText        bool              `json:"wrapText,omitempty"`
	Indent          int               `json:"indent,omitempty"`
	IndentPx        float64           `json:"indentPx,omitempty"` // computed indent in pixels
	Rotation        int               `json:"rotation,omitempty"`
	NumberFormat    string            `json:"numberFormat"`
	Locked          bool              `json:"locked"`
	Hidden          bool              `json:"hidden,omitempty"`
}

func (s StyleSummary) String() string {
	return fmt.Sprintf("FontFamily: %s, FontSizePt: %f, FontColor: %s, Bold: %t, Italic: %t, FillPattern: %s, BackgroundColor: %s, BorderColor: %s, Borders: %v, HorizontalAlign: %s, VerticalAlign: %s, WrapText: %t, IndentPx: %f, Rotation: %d, NumberFormat: %q, Locked: %t, Hidden: %t",
		s.FontFamily, s.FontSizePt, s.FontColor, s.Bold, s.Italic, s.FillPattern, s.BackgroundColor, s.BorderColor, s.Borders, s.HorizontalAlign, s.VerticalAlign, s.WrapText, s.IndentPx, s.Rotation, s.NumberFormat, s.Locked, s.Hidden)
}
