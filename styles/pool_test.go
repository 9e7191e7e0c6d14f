package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidoc/unioffice/schema/soo/sml"
)

func TestPoolGetOutOfRange(t *testing.T) {
	p := newTestPool(t)

	f, err := p.Font(1)
	require.NoError(t, err)
	assert.Equal(t, "Arial", FontName(f))

	_, err = p.Font(5)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = p.Fill(2)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = p.Border(3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPoolGetStableIdentity(t *testing.T) {
	p := newTestPool(t)
	a, err := p.Border(2)
	require.NoError(t, err)
	b, err := p.Border(2)
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestPoolInsertDeduplicates(t *testing.T) {
	p := newTestPool(t)

	id, err := p.InsertFont(testFont("Arial", 10))
	require.NoError(t, err)
	assert.EqualValues(t, 1, id)
	assert.Equal(t, 2, p.Len(KindFont))

	id, err = p.InsertFont(testFont("Arial", 12))
	require.NoError(t, err)
	assert.EqualValues(t, 2, id)
	assert.Equal(t, 3, p.Len(KindFont))
	require.NotNil(t, p.Stylesheet().Fonts.CountAttr)
	assert.EqualValues(t, 3, *p.Stylesheet().Fonts.CountAttr)
}

func TestPoolInsertEqualDefinitionsReadBackEqual(t *testing.T) {
	for _, opts := range [][]PoolOption{nil, {WithoutDedup()}} {
		p := NewPool(nil, opts...)
		a, err := p.InsertBorder(testBorder(sml.ST_BorderStyleDashed))
		require.NoError(t, err)
		b, err := p.InsertBorder(testBorder(sml.ST_BorderStyleDashed))
		require.NoError(t, err)

		ba, err := p.Border(a)
		require.NoError(t, err)
		bb, err := p.Border(b)
		require.NoError(t, err)
		assert.Equal(t, ba, bb)
	}
}

func TestPoolInsertWithoutDedupAppends(t *testing.T) {
	p := NewPool(nil, WithoutDedup())
	a, err := p.InsertFill(testFill(sml.ST_PatternTypeSolid))
	require.NoError(t, err)
	b, err := p.InsertFill(testFill(sml.ST_PatternTypeSolid))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestPoolInsertAfterInPlaceEdit(t *testing.T) {
	p := NewPool(nil)
	empty, err := p.InsertBorder(testBorder(sml.ST_BorderStyleUnset))
	require.NoError(t, err)
	thin, err := p.InsertBorder(testBorder(sml.ST_BorderStyleThin))
	require.NoError(t, err)
	require.NotEqual(t, empty, thin)

	b, err := p.Border(thin)
	require.NoError(t, err)
	b.Bottom.StyleAttr = sml.ST_BorderStyleThick

	again, err := p.InsertBorder(testBorder(sml.ST_BorderStyleThin))
	require.NoError(t, err)
	assert.NotEqual(t, thin, again, "edited entry must not match its old contents")

	thick, err := p.InsertBorder(testBorder(sml.ST_BorderStyleThick))
	require.NoError(t, err)
	assert.Equal(t, thin, thick)
}

func TestPoolInsertKeepsOwnCopy(t *testing.T) {
	p := NewPool(nil)
	f := testFont("Arial", 10)
	id, err := p.InsertFont(f)
	require.NoError(t, err)

	f.Sz[0].ValAttr = 20
	stored, err := p.Font(id)
	require.NoError(t, err)
	assert.NotSame(t, f, stored)
	assert.Equal(t, 10.0, FontSize(stored))

	b := testBorder(sml.ST_BorderStyleThin)
	bid, err := p.InsertBorder(b)
	require.NoError(t, err)
	b.Bottom.StyleAttr = sml.ST_BorderStyleThick
	storedBorder, err := p.Border(bid)
	require.NoError(t, err)
	assert.Equal(t, sml.ST_BorderStyleThin, storedBorder.Bottom.StyleAttr)
}

func TestPoolInsertNil(t *testing.T) {
	p := NewPool(nil)
	_, err := p.InsertFont(nil)
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = p.InsertBorder(nil)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, 0, p.Len(KindBorder))
}

func TestPoolCloneIsIndependent(t *testing.T) {
	p := newTestPool(t)

	id, err := p.CloneBorder(2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, id)

	orig, err := p.Border(2)
	require.NoError(t, err)
	clone, err := p.Border(id)
	require.NoError(t, err)
	assert.Equal(t, orig, clone)
	assert.NotSame(t, orig.Bottom, clone.Bottom)

	clone.Bottom.StyleAttr = sml.ST_BorderStyleDouble
	assert.Equal(t, sml.ST_BorderStyleThin, orig.Bottom.StyleAttr)

	_, err = p.CloneFill(7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPoolNumberFormats(t *testing.T) {
	p := NewPool(nil)

	id, err := p.InsertNumberFormat("0.00%")
	require.NoError(t, err)
	assert.EqualValues(t, 10, id)
	assert.Nil(t, p.Stylesheet().NumFmts)

	custom, err := p.InsertNumberFormat("0.000")
	require.NoError(t, err)
	assert.EqualValues(t, 164, custom)

	again, err := p.InsertNumberFormat("0.000")
	require.NoError(t, err)
	assert.Equal(t, custom, again)

	next, err := p.InsertNumberFormat("#,##0.000")
	require.NoError(t, err)
	assert.EqualValues(t, 165, next)

	code, err := p.NumberFormat(164)
	require.NoError(t, err)
	assert.Equal(t, "0.000", code)
	code, err = p.NumberFormat(0)
	require.NoError(t, err)
	assert.Equal(t, "General", code)

	_, err = p.NumberFormat(300)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = p.InsertNumberFormat("")
	assert.ErrorIs(t, err, ErrInvalidValue)

	assert.True(t, p.Has(KindNumberFormat, 165))
	assert.False(t, p.Has(KindNumberFormat, 166))
}

func TestPoolNumberFormatsContinueAfterLoadedIDs(t *testing.T) {
	ss := sml.NewCT_Stylesheet()
	ss.NumFmts = sml.NewCT_NumFmts()
	nf := sml.NewCT_NumFmt()
	nf.NumFmtIdAttr = 170
	nf.FormatCodeAttr = "yyyy-mm-dd"
	ss.NumFmts.NumFmt = append(ss.NumFmts.NumFmt, nf)
	p := NewPool(ss)

	id, err := p.InsertNumberFormat("yyyy-mm-dd")
	require.NoError(t, err)
	assert.EqualValues(t, 170, id)

	id, err = p.InsertNumberFormat("hh:mm")
	require.NoError(t, err)
	assert.EqualValues(t, 171, id)
	assert.EqualValues(t, 2, *ss.NumFmts.CountAttr)
}

func TestPoolNumberFormatsRedefinedBuiltin(t *testing.T) {
	ss := sml.NewCT_Stylesheet()
	ss.NumFmts = sml.NewCT_NumFmts()
	nf := sml.NewCT_NumFmt()
	nf.NumFmtIdAttr = 14
	nf.FormatCodeAttr = "yyyy-mm-dd"
	ss.NumFmts.NumFmt = append(ss.NumFmts.NumFmt, nf)
	p := NewPool(ss)

	code, err := p.NumberFormat(14)
	require.NoError(t, err)
	assert.Equal(t, "yyyy-mm-dd", code)

	id, err := p.InsertNumberFormat("m/d/yy")
	require.NoError(t, err)
	assert.EqualValues(t, 164, id)
	code, err = p.NumberFormat(id)
	require.NoError(t, err)
	assert.Equal(t, "m/d/yy", code)

	id, err = p.InsertNumberFormat("yyyy-mm-dd")
	require.NoError(t, err)
	assert.EqualValues(t, 14, id)

	// Builtins the workbook leaves alone are still shared.
	id, err = p.InsertNumberFormat("0.00%")
	require.NoError(t, err)
	assert.EqualValues(t, 10, id)
}

func TestPoolHas(t *testing.T) {
	p := newTestPool(t)
	assert.True(t, p.Has(KindBorder, 2))
	assert.False(t, p.Has(KindBorder, 3))
	assert.True(t, p.Has(KindFill, 1))
	assert.False(t, p.Has(Kind(42), 0))
}
