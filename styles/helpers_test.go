package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/schema/soo/sml"
)

func testFont(name string, size float64) *sml.CT_Font {
	return DeriveFont(nil, WithFontName(name), WithFontSize(size))
}

func testBorder(bottom sml.ST_BorderStyle) *sml.CT_Border {
	b := sml.NewCT_Border()
	if bottom != sml.ST_BorderStyleUnset {
		b.Bottom = sml.NewCT_BorderPr()
		b.Bottom.StyleAttr = bottom
	}
	return b
}

func testFill(pt sml.ST_PatternType) *sml.CT_Fill {
	f := sml.NewCT_Fill()
	f.PatternFill = sml.NewCT_PatternFill()
	f.PatternFill.PatternTypeAttr = pt
	return f
}

// newTestPool returns a pool with fonts {0: Calibri/11, 1: Arial/10}, fills
// {0: none, 1: gray125} and borders {0: empty, 1: empty, 2: thin bottom},
// appended without deduplication.
func newTestPool(t *testing.T) *Pool {
	t.Helper()
	p := NewPool(nil, WithoutDedup())
	for _, f := range []*sml.CT_Font{testFont("Calibri", 11), testFont("Arial", 10)} {
		_, err := p.InsertFont(f)
		require.NoError(t, err)
	}
	for _, f := range []*sml.CT_Fill{testFill(sml.ST_PatternTypeNone), testFill(sml.ST_PatternTypeGray125)} {
		_, err := p.InsertFill(f)
		require.NoError(t, err)
	}
	for _, b := range []*sml.CT_Border{testBorder(sml.ST_BorderStyleUnset), testBorder(sml.ST_BorderStyleUnset), testBorder(sml.ST_BorderStyleThin)} {
		_, err := p.InsertBorder(b)
		require.NoError(t, err)
	}
	p.dedup = true
	return p
}

func testXf(font, fill, border, numFmt uint32) *sml.CT_Xf {
	xf := sml.NewCT_Xf()
	xf.FontIdAttr = unioffice.Uint32(font)
	xf.FillIdAttr = unioffice.Uint32(fill)
	xf.BorderIdAttr = unioffice.Uint32(border)
	xf.NumFmtIdAttr = unioffice.Uint32(numFmt)
	return xf
}
