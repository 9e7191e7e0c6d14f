package xlsx

import (
	"fmt"
	"io"

	"github.com/aerissecure/xlstyle/styles"
	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
)

// Workbook hands out cell styles for the cells of a spreadsheet. All cell
// styles it returns share one pool over the workbook stylesheet.
type Workbook struct {
	wb   *spreadsheet.Workbook
	pool *styles.Pool
}

// Read reads an XLSX from r/size.
func Read(r io.ReaderAt, size int64) (*Workbook, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return nil, err
	}
	return Wrap(wb), nil
}

// Open reads the XLSX file at path.
func Open(path string) (*Workbook, error) {
	wb, err := spreadsheet.Open(path)
	if err != nil {
		return nil, err
	}
	return Wrap(wb), nil
}

// Wrap adopts an already loaded workbook.
func Wrap(wb *spreadsheet.Workbook) *Workbook {
	return &Workbook{
		wb:   wb,
		pool: styles.NewPool(&wb.StyleSheet.X().CT_Stylesheet),
	}
}

// X returns the underlying workbook.
func (w *Workbook) X() *spreadsheet.Workbook { return w.wb }

func (w *Workbook) Pool() *styles.Pool { return w.pool }

// Record builds the two tier record for cellXfs entry styleIndex. The
// fallback is the cellStyleXfs entry named by the xf's xfId; it is absent
// when xfId is unset or points past the end of cellStyleXfs.
func (w *Workbook) Record(styleIndex uint32) (*styles.Record, error) {
	ss := w.pool.Stylesheet()
	if ss.CellXfs == nil || uint64(styleIndex) >= uint64(len(ss.CellXfs.Xf)) {
		return nil, fmt.Errorf("%w: cell format %d", styles.ErrNotFound, styleIndex)
	}
	xf := ss.CellXfs.Xf[styleIndex]
	var named *sml.CT_Xf
	if xf.XfIdAttr != nil && ss.CellStyleXfs != nil && uint64(*xf.XfIdAttr) < uint64(len(ss.CellStyleXfs.Xf)) {
		named = ss.CellStyleXfs.Xf[*xf.XfIdAttr]
	}
	return styles.NewRecord(xf, named), nil
}

// AddRecord appends xf to cellXfs and returns its style index.
func (w *Workbook) AddRecord(xf *sml.CT_Xf) uint32 {
	ss := w.pool.Stylesheet()
	if ss.CellXfs == nil {
		ss.CellXfs = sml.NewCT_CellXfs()
	}
	ss.CellXfs.Xf = append(ss.CellXfs.Xf, xf)
	ss.CellXfs.CountAttr = unioffice.Uint32(uint32(len(ss.CellXfs.Xf)))
	return uint32(len(ss.CellXfs.Xf) - 1)
}

// CellStyle returns the style of the cell at ref on the named sheet. An empty
// sheet name selects the first sheet. Cells without a style attribute use
// style index 0, which they share with every other unstyled cell.
func (w *Workbook) CellStyle(sheetName, ref string) (*styles.CellStyle, error) {
	cell, err := w.cell(sheetName, ref)
	if err != nil {
		return nil, err
	}
	rec, err := w.Record(styleIndex(cell))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}
	return styles.NewCellStyle(rec, w.pool), nil
}

// DetachCellStyle copies the cell's format into a new cellXfs entry and
// points the cell at it, so that edits through the returned style touch no
// other cell's record. Fonts, fills and borders stay shared.
func (w *Workbook) DetachCellStyle(sheetName, ref string) (*styles.CellStyle, error) {
	cell, err := w.cell(sheetName, ref)
	if err != nil {
		return nil, err
	}
	rec, err := w.Record(styleIndex(cell))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}
	idx := w.AddRecord(styles.CopyXf(rec.Direct()))
	cell.X().SAttr = unioffice.Uint32(idx)
	return styles.NewCellStyle(styles.NewRecord(w.pool.Stylesheet().CellXfs.Xf[idx], rec.Fallback()), w.pool), nil
}

// SaveToFile writes the workbook to path.
func (w *Workbook) SaveToFile(path string) error {
	return w.wb.SaveToFile(path)
}

// Save writes the workbook to out.
func (w *Workbook) Save(out io.Writer) error {
	return w.wb.Save(out)
}

func (w *Workbook) sheet(name string) (spreadsheet.Sheet, error) {
	sheets := w.wb.Sheets()
	if len(sheets) == 0 {
		return spreadsheet.Sheet{}, fmt.Errorf("workbook has no sheets")
	}
	if name == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s.Name() == name {
			return s, nil
		}
	}
	return spreadsheet.Sheet{}, fmt.Errorf("sheet %q not found", name)
}

func (w *Workbook) cell(sheetName, ref string) (spreadsheet.Cell, error) {
	s, err := w.sheet(sheetName)
	if err != nil {
		return spreadsheet.Cell{}, err
	}
	return s.Cell(ref), nil
}

func styleIndex(cell spreadsheet.Cell) uint32 {
	if s := cell.X().SAttr; s != nil {
		return *s
	}
	return 0
}
