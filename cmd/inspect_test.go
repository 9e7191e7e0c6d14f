package cmd

import (
	"testing"

	"github.com/aerissecure/xlstyle/styles"
	"github.com/aerissecure/xlstyle/xlsx"
	"github.com/stretchr/testify/assert"
	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
)

func TestDescribeReportsUnresolvedIDs(t *testing.T) {
	wb := xlsx.Wrap(spreadsheet.New())
	xf := sml.NewCT_Xf()
	xf.FontIdAttr = unioffice.Uint32(0)
	xf.FillIdAttr = unioffice.Uint32(0)
	xf.BorderIdAttr = unioffice.Uint32(0)
	cs := styles.NewCellStyle(styles.NewRecord(xf, nil), wb.Pool())

	res, err := describe(wb, cs)
	assert.ErrorIs(t, err, styles.ErrUnresolved)
	assert.Zero(t, res.Style)
}
