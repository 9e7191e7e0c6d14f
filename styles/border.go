package styles

import (
	"fmt"

	"github.com/unidoc/unioffice/schema/soo/sml"
)

// Side selects one edge of a border definition.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
	SideDiagonal
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideDiagonal:
		return "diagonal"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

func (s Side) slot(b *sml.CT_Border) **sml.CT_BorderPr {
	switch s {
	case SideTop:
		return &b.Top
	case SideBottom:
		return &b.Bottom
	case SideLeft:
		return &b.Left
	case SideRight:
		return &b.Right
	case SideDiagonal:
		return &b.Diagonal
	}
	return nil
}

func (cs *CellStyle) BorderID() (uint32, error) { return cs.rec.BorderID() }

// Border returns the shared border definition of the cell.
func (cs *CellStyle) Border() (*sml.CT_Border, error) {
	id, err := cs.rec.BorderID()
	if err != nil {
		return nil, err
	}
	return cs.border.get(id, cs.pool.Border)
}

// borderPr returns the properties of one side, creating them when create is
// set. It returns nil for a side that is absent and not created.
func (cs *CellStyle) borderPr(side Side, create bool) (*sml.CT_BorderPr, error) {
	b, err := cs.Border()
	if err != nil {
		return nil, err
	}
	slot := side.slot(b)
	if slot == nil {
		return nil, fmt.Errorf("%w: border side %s", ErrInvalidValue, side)
	}
	if *slot == nil && create {
		*slot = sml.NewCT_BorderPr()
	}
	return *slot, nil
}

// BorderStyle returns the line style of one side. Sides without a style read
// as none.
func (cs *CellStyle) BorderStyle(side Side) (sml.ST_BorderStyle, error) {
	pr, err := cs.borderPr(side, false)
	if err != nil {
		return sml.ST_BorderStyleUnset, err
	}
	if pr == nil || pr.StyleAttr == sml.ST_BorderStyleUnset {
		return sml.ST_BorderStyleNone, nil
	}
	return pr.StyleAttr, nil
}

// BorderStyleIndex returns the line style of one side in the legacy numeric
// encoding, where none is 0 and thin is 1.
func (cs *CellStyle) BorderStyleIndex(side Side) (int, error) {
	st, err := cs.BorderStyle(side)
	if err != nil {
		return 0, err
	}
	return int(st) - 1, nil
}

// SetBorderStyle sets the line style of one side of the shared border.
func (cs *CellStyle) SetBorderStyle(side Side, st sml.ST_BorderStyle) error {
	if st < sml.ST_BorderStyleNone || st > sml.ST_BorderStyleSlantDashDot {
		return fmt.Errorf("%w: border style %d", ErrInvalidValue, st)
	}
	pr, err := cs.borderPr(side, true)
	if err != nil {
		return err
	}
	pr.StyleAttr = st
	return nil
}

// SetBorderStyleIndex is SetBorderStyle taking the legacy numeric encoding.
func (cs *CellStyle) SetBorderStyleIndex(side Side, idx int) error {
	if idx < 0 || idx > int(sml.ST_BorderStyleSlantDashDot)-1 {
		return fmt.Errorf("%w: border style index %d", ErrInvalidValue, idx)
	}
	return cs.SetBorderStyle(side, sml.ST_BorderStyle(idx+1))
}

// BorderColor returns the color of one side, or nil when it has none.
func (cs *CellStyle) BorderColor(side Side) (*sml.CT_Color, error) {
	pr, err := cs.borderPr(side, false)
	if err != nil || pr == nil {
		return nil, err
	}
	return pr.Color, nil
}

// BorderColorIndex returns the palette index of one side's color, or
// IndexedColorAutomatic when the color is unset or not indexed.
func (cs *CellStyle) BorderColorIndex(side Side) (uint32, error) {
	c, err := cs.BorderColor(side)
	if err != nil {
		return 0, err
	}
	return indexedColor(c), nil
}

// SetBorderColor replaces the color of one side of the shared border. A nil
// color removes it.
func (cs *CellStyle) SetBorderColor(side Side, c *sml.CT_Color) error {
	pr, err := cs.borderPr(side, true)
	if err != nil {
		return err
	}
	pr.Color = c
	return nil
}

// SetBorderColorIndex sets one side of the shared border to a palette color.
func (cs *CellStyle) SetBorderColorIndex(side Side, idx uint32) error {
	if err := CheckIndexedColor(idx); err != nil {
		return err
	}
	return cs.SetBorderColor(side, newIndexedColor(idx))
}

// IsolateBorder gives the record a private copy of its border and returns the
// id of the copy. Later border edits through cs no longer reach other cells.
func (cs *CellStyle) IsolateBorder() (uint32, error) {
	id, err := cs.rec.BorderID()
	if err != nil {
		return 0, err
	}
	nid, err := cs.pool.CloneBorder(id)
	if err != nil {
		return 0, err
	}
	cs.rec.SetBorderID(nid)
	return nid, nil
}
