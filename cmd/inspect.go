package cmd

import (
	"github.com/aerissecure/xlstyle/styles"
	"github.com/aerissecure/xlstyle/xlsx"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file> <cell>",
	Short: "Print the resolved formatting of a cell",
	Long: `Print the effective formatting of a cell as JSON, after the cell format
and its named cell style have been resolved against the stylesheet.

Examples:
  xlstyle inspect report.xlsx B4
  xlstyle inspect report.xlsx B4 --sheet Summary`,
	Args: cobra.ExactArgs(2),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

type inspectResult struct {
	Cell           string            `json:"cell"`
	Sheet          string            `json:"sheet,omitempty"`
	Named          bool              `json:"namedStyle"`
	FontID         uint32            `json:"fontId"`
	FillID         uint32            `json:"fillId"`
	BorderID       uint32            `json:"borderId"`
	NumberFormatID uint32            `json:"numFmtId"`
	Style          xlsx.StyleSummary `json:"style"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	filePath, ref := args[0], args[1]

	wb, err := xlsx.Open(filePath)
	if err != nil {
		return err
	}
	sheet := resolveSheet()
	cs, err := wb.CellStyle(sheet, ref)
	if err != nil {
		return err
	}
	res, err := describe(wb, cs)
	if err != nil {
		return err
	}
	res.Cell, res.Sheet = ref, sheet
	return jsonPrint(cmd.OutOrStdout(), res)
}

func describe(wb *xlsx.Workbook, cs *styles.CellStyle) (inspectResult, error) {
	var res inspectResult
	var err error
	rec := cs.Record()
	res.Named = rec.HasFallback()
	if res.FontID, err = rec.FontID(); err != nil {
		return res, err
	}
	if res.FillID, err = rec.FillID(); err != nil {
		return res, err
	}
	if res.BorderID, err = rec.BorderID(); err != nil {
		return res, err
	}
	if res.NumberFormatID, err = rec.NumberFormatID(); err != nil {
		return res, err
	}
	res.Style, err = wb.Summarize(cs)
	return res, err
}
