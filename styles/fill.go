package styles

import (
	"fmt"

	"github.com/unidoc/unioffice/schema/soo/sml"
)

func (cs *CellStyle) FillID() (uint32, error) { return cs.rec.FillID() }

// Fill returns the shared fill definition of the cell.
func (cs *CellStyle) Fill() (*sml.CT_Fill, error) {
	id, err := cs.rec.FillID()
	if err != nil {
		return nil, err
	}
	return cs.fill.get(id, cs.pool.Fill)
}

func (cs *CellStyle) patternFill(create bool) (*sml.CT_PatternFill, error) {
	f, err := cs.Fill()
	if err != nil {
		return nil, err
	}
	if f.PatternFill == nil && create {
		f.PatternFill = sml.NewCT_PatternFill()
	}
	return f.PatternFill, nil
}

// FillPattern returns the pattern of the cell's fill. Fills without a pattern
// read as none.
func (cs *CellStyle) FillPattern() (sml.ST_PatternType, error) {
	pf, err := cs.patternFill(false)
	if err != nil {
		return sml.ST_PatternTypeUnset, err
	}
	if pf == nil || pf.PatternTypeAttr == sml.ST_PatternTypeUnset {
		return sml.ST_PatternTypeNone, nil
	}
	return pf.PatternTypeAttr, nil
}

// SetFillPattern sets the pattern of the shared fill.
func (cs *CellStyle) SetFillPattern(pt sml.ST_PatternType) error {
	if pt < sml.ST_PatternTypeNone || pt > sml.ST_PatternTypeGray0625 {
		return fmt.Errorf("%w: fill pattern %d", ErrInvalidValue, pt)
	}
	pf, err := cs.patternFill(true)
	if err != nil {
		return err
	}
	pf.PatternTypeAttr = pt
	return nil
}

// FillForegroundColor returns the pattern color, or nil when unset.
func (cs *CellStyle) FillForegroundColor() (*sml.CT_Color, error) {
	pf, err := cs.patternFill(false)
	if err != nil || pf == nil {
		return nil, err
	}
	return pf.FgColor, nil
}

func (cs *CellStyle) FillForegroundColorIndex() (uint32, error) {
	c, err := cs.FillForegroundColor()
	if err != nil {
		return 0, err
	}
	return indexedColor(c), nil
}

// SetFillForegroundColor replaces the pattern color of the shared fill.
func (cs *CellStyle) SetFillForegroundColor(c *sml.CT_Color) error {
	pf, err := cs.patternFill(true)
	if err != nil {
		return err
	}
	pf.FgColor = c
	return nil
}

func (cs *CellStyle) SetFillForegroundColorIndex(idx uint32) error {
	if err := CheckIndexedColor(idx); err != nil {
		return err
	}
	return cs.SetFillForegroundColor(newIndexedColor(idx))
}

// FillBackgroundColor returns the color behind the pattern, or nil when
// unset.
func (cs *CellStyle) FillBackgroundColor() (*sml.CT_Color, error) {
	pf, err := cs.patternFill(false)
	if err != nil || pf == nil {
		return nil, err
	}
	return pf.BgColor, nil
}

func (cs *CellStyle) FillBackgroundColorIndex() (uint32, error) {
	c, err := cs.FillBackgroundColor()
	if err != nil {
		return 0, err
	}
	return indexedColor(c), nil
}

func (cs *CellStyle) SetFillBackgroundColor(c *sml.CT_Color) error {
	pf, err := cs.patternFill(true)
	if err != nil {
		return err
	}
	pf.BgColor = c
	return nil
}

func (cs *CellStyle) SetFillBackgroundColorIndex(idx uint32) error {
	if err := CheckIndexedColor(idx); err != nil {
		return err
	}
	return cs.SetFillBackgroundColor(newIndexedColor(idx))
}

// IsolateFill gives the record a private copy of its fill and returns the id
// of the copy.
func (cs *CellStyle) IsolateFill() (uint32, error) {
	id, err := cs.rec.FillID()
	if err != nil {
		return 0, err
	}
	nid, err := cs.pool.CloneFill(id)
	if err != nil {
		return 0, err
	}
	cs.rec.SetFillID(nid)
	return nid, nil
}
