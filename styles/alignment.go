package styles

import (
	"fmt"

	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/schema/soo/sml"
)

const (
	// MaxIndent is the largest indent level SpreadsheetML allows.
	MaxIndent = 250
	// RotationVertical stacks the characters top to bottom.
	RotationVertical = 255
	MaxRotation      = 180
)

// Alignment and protection live on the direct tier, so the getters below
// attach empty records on first use just like the setters do.

// HorizontalAlignment reads as general when unset.
func (cs *CellStyle) HorizontalAlignment() sml.ST_HorizontalAlignment {
	if h := cs.rec.Alignment().HorizontalAttr; h != sml.ST_HorizontalAlignmentUnset {
		return h
	}
	return sml.ST_HorizontalAlignmentGeneral
}

func (cs *CellStyle) SetHorizontalAlignment(h sml.ST_HorizontalAlignment) error {
	if h < sml.ST_HorizontalAlignmentGeneral || h > sml.ST_HorizontalAlignmentDistributed {
		return fmt.Errorf("%w: horizontal alignment %d", ErrInvalidValue, h)
	}
	cs.rec.Alignment().HorizontalAttr = h
	cs.rec.markAlignment()
	return nil
}

// VerticalAlignment reads as bottom when unset.
func (cs *CellStyle) VerticalAlignment() sml.ST_VerticalAlignment {
	if v := cs.rec.Alignment().VerticalAttr; v != sml.ST_VerticalAlignmentUnset {
		return v
	}
	return sml.ST_VerticalAlignmentBottom
}

func (cs *CellStyle) SetVerticalAlignment(v sml.ST_VerticalAlignment) error {
	if v < sml.ST_VerticalAlignmentTop || v > sml.ST_VerticalAlignmentDistributed {
		return fmt.Errorf("%w: vertical alignment %d", ErrInvalidValue, v)
	}
	cs.rec.Alignment().VerticalAttr = v
	cs.rec.markAlignment()
	return nil
}

func (cs *CellStyle) WrapText() bool {
	w := cs.rec.Alignment().WrapTextAttr
	return w != nil && *w
}

func (cs *CellStyle) SetWrapText(v bool) {
	cs.rec.Alignment().WrapTextAttr = unioffice.Bool(v)
	cs.rec.markAlignment()
}

func (cs *CellStyle) ShrinkToFit() bool {
	s := cs.rec.Alignment().ShrinkToFitAttr
	return s != nil && *s
}

func (cs *CellStyle) SetShrinkToFit(v bool) {
	cs.rec.Alignment().ShrinkToFitAttr = unioffice.Bool(v)
	cs.rec.markAlignment()
}

// Indent returns the indent level in units of one character width.
func (cs *CellStyle) Indent() int {
	if i := cs.rec.Alignment().IndentAttr; i != nil {
		return int(*i)
	}
	return 0
}

func (cs *CellStyle) SetIndent(level int) error {
	if err := CheckIndent(level); err != nil {
		return err
	}
	cs.rec.Alignment().IndentAttr = unioffice.Uint32(uint32(level))
	cs.rec.markAlignment()
	return nil
}

// Rotation returns the text rotation: 0 to 90 degrees counterclockwise, 91 to
// 180 for 1 to 90 degrees clockwise, or RotationVertical.
func (cs *CellStyle) Rotation() int {
	if r := cs.rec.Alignment().TextRotationAttr; r != nil {
		return int(*r)
	}
	return 0
}

func (cs *CellStyle) SetRotation(deg int) error {
	if err := CheckRotation(deg); err != nil {
		return err
	}
	r := uint8(deg)
	cs.rec.Alignment().TextRotationAttr = &r
	cs.rec.markAlignment()
	return nil
}

// Locked reads as true when unset, matching SpreadsheetML defaults.
func (cs *CellStyle) Locked() bool {
	l := cs.rec.Protection().LockedAttr
	return l == nil || *l
}

func (cs *CellStyle) SetLocked(v bool) {
	cs.rec.Protection().LockedAttr = unioffice.Bool(v)
	cs.rec.markProtection()
}

// Hidden reports whether the formula is hidden while the sheet is protected.
func (cs *CellStyle) Hidden() bool {
	h := cs.rec.Protection().HiddenAttr
	return h != nil && *h
}

func (cs *CellStyle) SetHidden(v bool) {
	cs.rec.Protection().HiddenAttr = unioffice.Bool(v)
	cs.rec.markProtection()
}

func CheckIndent(level int) error {
	if level < 0 || level > MaxIndent {
		return fmt.Errorf("%w: indent %d", ErrInvalidValue, level)
	}
	return nil
}

// CheckRotation accepts 0 to MaxRotation and RotationVertical.
func CheckRotation(deg int) error {
	if (deg < 0 || deg > MaxRotation) && deg != RotationVertical {
		return fmt.Errorf("%w: text rotation %d", ErrInvalidValue, deg)
	}
	return nil
}
