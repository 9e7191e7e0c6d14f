package styles

import (
	"fmt"

	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/schema/soo/sml"
)

// firstCustomFormatID is the lowest numFmtId Excel assigns to workbook
// defined formats.
const firstCustomFormatID = 164

// builtinFormats are the number formats every SpreadsheetML consumer knows
// without a numFmt element.
var builtinFormats = map[uint32]string{
	0:  "General",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	5:  `"$"#,##0_);("$"#,##0)`,
	6:  `"$"#,##0_);[Red]("$"#,##0)`,
	7:  `"$"#,##0.00_);("$"#,##0.00)`,
	8:  `"$"#,##0.00_);[Red]("$"#,##0.00)`,
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "m/d/yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yy h:mm",
	37: "#,##0_);(#,##0)",
	38: "#,##0_);[Red](#,##0)",
	39: "#,##0.00_);(#,##0.00)",
	40: "#,##0.00_);[Red](#,##0.00)",
	41: `_(* #,##0_);_(* (#,##0);_(* "-"_);_(@_)`,
	42: `_("$"* #,##0_);_("$"* (#,##0);_("$"* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* (#,##0.00);_(* "-"??_);_(@_)`,
	44: `_("$"* #,##0.00_);_("$"* (#,##0.00);_("$"* "-"??_);_(@_)`,
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mm:ss.0",
	48: "##0.0E+0",
	49: "@",
}

var builtinFormatIDs = func() map[string]uint32 {
	m := make(map[string]uint32, len(builtinFormats))
	for id, code := range builtinFormats {
		m[code] = id
	}
	return m
}()

// NumberFormats resolves a numFmtId to its format code.
type NumberFormats interface {
	NumberFormat(id uint32) (string, error)
}

// NumberFormat returns the format code for id. Workbook defined formats take
// precedence over builtins with the same id.
func (p *Pool) NumberFormat(id uint32) (string, error) {
	for _, nf := range p.customFormats() {
		if nf.NumFmtIdAttr == id {
			return nf.FormatCodeAttr, nil
		}
	}
	if code, ok := builtinFormats[id]; ok {
		return code, nil
	}
	return "", fmt.Errorf("%w: %s %d", ErrNotFound, KindNumberFormat, id)
}

// InsertNumberFormat returns the id of the format with the given code, adding
// a workbook defined format when neither a builtin nor an existing custom
// format matches. A builtin id redefined by the workbook is not reused.
func (p *Pool) InsertNumberFormat(code string) (uint32, error) {
	if code == "" {
		return 0, fmt.Errorf("%w: empty number format", ErrInvalidValue)
	}
	if id, ok := builtinFormatIDs[code]; ok && !p.redefined(id) {
		return id, nil
	}
	next := uint32(firstCustomFormatID)
	for _, nf := range p.customFormats() {
		if p.dedup && nf.FormatCodeAttr == code {
			return nf.NumFmtIdAttr, nil
		}
		if nf.NumFmtIdAttr >= next {
			next = nf.NumFmtIdAttr + 1
		}
	}
	if p.ss.NumFmts == nil {
		p.ss.NumFmts = sml.NewCT_NumFmts()
	}
	nf := sml.NewCT_NumFmt()
	nf.NumFmtIdAttr = next
	nf.FormatCodeAttr = code
	p.ss.NumFmts.NumFmt = append(p.ss.NumFmts.NumFmt, nf)
	p.ss.NumFmts.CountAttr = unioffice.Uint32(uint32(len(p.ss.NumFmts.NumFmt)))
	return next, nil
}

// redefined reports whether the workbook declares its own format under a
// builtin id.
func (p *Pool) redefined(id uint32) bool {
	for _, nf := range p.customFormats() {
		if nf.NumFmtIdAttr == id {
			return true
		}
	}
	return false
}

func (p *Pool) customFormats() []*sml.CT_NumFmt {
	if p.ss.NumFmts == nil {
		return nil
	}
	return p.ss.NumFmts.NumFmt
}
