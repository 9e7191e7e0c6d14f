package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aerissecure/xlstyle/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/schema/soo/sml"
)

func newCellStyle(t *testing.T) (*styles.Pool, *styles.CellStyle) {
	t.Helper()
	pool := styles.NewPool(nil)
	font, err := pool.InsertFont(styles.DeriveFont(nil, styles.WithFontName("Calibri"), styles.WithFontSize(11)))
	require.NoError(t, err)
	fill, err := pool.InsertFill(sml.NewCT_Fill())
	require.NoError(t, err)
	border, err := pool.InsertBorder(sml.NewCT_Border())
	require.NoError(t, err)

	named := sml.NewCT_Xf()
	named.FontIdAttr = unioffice.Uint32(font)
	named.FillIdAttr = unioffice.Uint32(fill)
	named.BorderIdAttr = unioffice.Uint32(border)
	named.NumFmtIdAttr = unioffice.Uint32(0)
	return pool, styles.NewCellStyle(styles.NewRecord(nil, named), pool)
}

const headerPatch = `
font:
  name: Arial
  size: 12
  bold: true
fill:
  isolate: true
  pattern: solid
  foreground: 22
border:
  isolate: true
  sides:
    bottom: {style: medium, color: 8}
    top: {style: thin}
alignment:
  horizontal: center
  vertical: top
  wrap: true
  indent: 1
  rotation: 90
protection:
  locked: false
  hidden: true
numberFormat: "0.0%"
quotePrefix: true
`

func TestPatchApply(t *testing.T) {
	pool, cs := newCellStyle(t)
	p, err := parsePatch([]byte(headerPatch))
	require.NoError(t, err)
	require.NoError(t, p.Apply(cs))

	f, err := cs.Font()
	require.NoError(t, err)
	assert.Equal(t, "Arial", styles.FontName(f))
	assert.Equal(t, 12.0, styles.FontSize(f))
	assert.True(t, styles.FontBold(f))
	assert.Equal(t, 2, pool.Len(styles.KindFont))

	pt, err := cs.FillPattern()
	require.NoError(t, err)
	assert.Equal(t, sml.ST_PatternTypeSolid, pt)
	fg, err := cs.FillForegroundColorIndex()
	require.NoError(t, err)
	assert.EqualValues(t, 22, fg)

	bs, err := cs.BorderStyle(styles.SideBottom)
	require.NoError(t, err)
	assert.Equal(t, sml.ST_BorderStyleMedium, bs)
	bc, err := cs.BorderColorIndex(styles.SideBottom)
	require.NoError(t, err)
	assert.EqualValues(t, 8, bc)
	bs, err = cs.BorderStyle(styles.SideTop)
	require.NoError(t, err)
	assert.Equal(t, sml.ST_BorderStyleThin, bs)

	assert.Equal(t, sml.ST_HorizontalAlignmentCenter, cs.HorizontalAlignment())
	assert.Equal(t, sml.ST_VerticalAlignmentTop, cs.VerticalAlignment())
	assert.True(t, cs.WrapText())
	assert.Equal(t, 1, cs.Indent())
	assert.Equal(t, 90, cs.Rotation())
	assert.False(t, cs.Locked())
	assert.True(t, cs.Hidden())
	assert.True(t, cs.Record().QuotePrefix())

	code, err := cs.NumberFormat()
	require.NoError(t, err)
	assert.Equal(t, "0.0%", code)

	// Isolated edits left the original shared definitions alone.
	orig, err := pool.Border(0)
	require.NoError(t, err)
	assert.Nil(t, orig.Bottom)
	origFill, err := pool.Fill(0)
	require.NoError(t, err)
	assert.Nil(t, origFill.PatternFill)
}

func TestPatchRejectsBadValuesBeforeEditing(t *testing.T) {
	for name, doc := range map[string]string{
		"border style":   "border: {sides: {bottom: {style: wavy}}}",
		"border side":    "border: {sides: {middle: {style: thin}}}",
		"border color":   "border: {sides: {bottom: {color: 99}}}",
		"pattern":        "fill: {pattern: stripes}",
		"fill color":     "fill: {foreground: 70}",
		"horizontal":     "alignment: {horizontal: middle}",
		"indent":         "alignment: {indent: -2}",
		"rotation":       "alignment: {rotation: 200}",
		"font size":      "font: {size: -1}",
		"font color ix":  "font: {colorIndex: 80}",
		"font color":     "font: {color: not-a-color}",
		"font color hex": "font: {color: \"#12345\"}",
	} {
		t.Run(name, func(t *testing.T) {
			pool, cs := newCellStyle(t)
			p, err := parsePatch([]byte("protection: {hidden: true}\n" + doc))
			require.NoError(t, err)

			err = p.Apply(cs)
			assert.ErrorIs(t, err, styles.ErrInvalidValue)
			assert.Nil(t, cs.Record().Direct().Alignment)
			assert.Nil(t, cs.Record().Direct().Protection)
			assert.Nil(t, cs.Record().Direct().FontIdAttr)
			assert.Equal(t, 1, pool.Len(styles.KindFont))
			assert.Equal(t, 1, pool.Len(styles.KindBorder))
		})
	}
}

func TestLoadPatchRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colour: red\n"), 0o644))

	_, err := LoadPatch(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("detach: true\nnumberFormat: \"@\"\n"), 0o644))
	p, err := LoadPatch(path)
	require.NoError(t, err)
	assert.True(t, p.Detach)
	assert.Equal(t, "@", p.NumberFormat)
}

func TestResolveSheet(t *testing.T) {
	orig := sheetName
	t.Cleanup(func() { sheetName = orig })

	sheetName = ""
	t.Setenv("XLSTYLE_SHEET", "Data")
	assert.Equal(t, "Data", resolveSheet())

	sheetName = "Summary"
	assert.Equal(t, "Summary", resolveSheet())
}
