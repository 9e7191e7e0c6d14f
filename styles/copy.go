package styles

import "github.com/unidoc/unioffice/schema/soo/sml"

// The copies below duplicate everything the setters in this package write
// through. Parts that are only ever replaced wholesale stay shared.

func copyFont(f *sml.CT_Font) *sml.CT_Font {
	c := *f
	c.Name = cloneEach(f.Name)
	c.Sz = cloneEach(f.Sz)
	c.B = cloneEach(f.B)
	c.I = cloneEach(f.I)
	c.Color = make([]*sml.CT_Color, len(f.Color))
	for i, col := range f.Color {
		c.Color[i] = copyColor(col)
	}
	return &c
}

func copyFill(f *sml.CT_Fill) *sml.CT_Fill {
	c := *f
	if f.PatternFill != nil {
		pf := *f.PatternFill
		pf.FgColor = copyColor(f.PatternFill.FgColor)
		pf.BgColor = copyColor(f.PatternFill.BgColor)
		c.PatternFill = &pf
	}
	return &c
}

func copyBorder(b *sml.CT_Border) *sml.CT_Border {
	c := *b
	c.Left = copyBorderPr(b.Left)
	c.Right = copyBorderPr(b.Right)
	c.Top = copyBorderPr(b.Top)
	c.Bottom = copyBorderPr(b.Bottom)
	c.Diagonal = copyBorderPr(b.Diagonal)
	c.Vertical = copyBorderPr(b.Vertical)
	c.Horizontal = copyBorderPr(b.Horizontal)
	return &c
}

func copyBorderPr(p *sml.CT_BorderPr) *sml.CT_BorderPr {
	if p == nil {
		return nil
	}
	c := *p
	c.Color = copyColor(p.Color)
	return &c
}

func copyColor(col *sml.CT_Color) *sml.CT_Color {
	if col == nil {
		return nil
	}
	c := *col
	c.AutoAttr = copyPtr(col.AutoAttr)
	c.IndexedAttr = copyPtr(col.IndexedAttr)
	c.RgbAttr = copyPtr(col.RgbAttr)
	c.ThemeAttr = copyPtr(col.ThemeAttr)
	c.TintAttr = copyPtr(col.TintAttr)
	return &c
}

// CopyXf returns a copy of xf whose id fields and nested alignment and
// protection records can be edited independently of the original.
func CopyXf(xf *sml.CT_Xf) *sml.CT_Xf {
	if xf == nil {
		return sml.NewCT_Xf()
	}
	c := *xf
	c.NumFmtIdAttr = copyPtr(xf.NumFmtIdAttr)
	c.FontIdAttr = copyPtr(xf.FontIdAttr)
	c.FillIdAttr = copyPtr(xf.FillIdAttr)
	c.BorderIdAttr = copyPtr(xf.BorderIdAttr)
	c.XfIdAttr = copyPtr(xf.XfIdAttr)
	if xf.Alignment != nil {
		a := *xf.Alignment
		c.Alignment = &a
	}
	if xf.Protection != nil {
		p := *xf.Protection
		c.Protection = &p
	}
	return &c
}

func cloneEach[T any](s []*T) []*T {
	if s == nil {
		return nil
	}
	out := make([]*T, len(s))
	for i, v := range s {
		if v != nil {
			c := *v
			out[i] = &c
		}
	}
	return out
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
