package cmd

import (
	"github.com/aerissecure/xlstyle/styles"
	"github.com/aerissecure/xlstyle/xlsx"
	"github.com/spf13/cobra"
)

var (
	applyPatch string
	applyOut   string
)

var applyCmd = &cobra.Command{
	Use:   "apply <file> <cell>",
	Short: "Apply a YAML style patch to a cell",
	Long: `Apply a YAML style patch to a cell and save the workbook.

Fill and border edits change the shared definition and so every cell using
it, unless the patch sets isolate. Font and number format edits only repoint
the cell format. Set detach to give the cell its own cell format first.

Examples:
  xlstyle apply report.xlsx B4 --patch header.yaml
  xlstyle apply report.xlsx B4 --patch header.yaml --out styled.xlsx`,
	Args: cobra.ExactArgs(2),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVarP(&applyPatch, "patch", "p", "", "YAML patch file")
	applyCmd.Flags().StringVarP(&applyOut, "out", "o", "", "Output path (default: overwrite the input)")
	_ = applyCmd.MarkFlagRequired("patch")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	filePath, ref := args[0], args[1]

	patch, err := LoadPatch(applyPatch)
	if err != nil {
		return err
	}
	wb, err := xlsx.Open(filePath)
	if err != nil {
		return err
	}
	sheet := resolveSheet()

	var cs *styles.CellStyle
	if patch.Detach {
		cs, err = wb.DetachCellStyle(sheet, ref)
	} else {
		cs, err = wb.CellStyle(sheet, ref)
	}
	if err != nil {
		return err
	}
	logger.Debug("applying patch", "cell", ref, "sheet", sheet, "detach", patch.Detach, "named", cs.Record().HasFallback())

	if err := patch.Apply(cs); err != nil {
		return err
	}

	out := applyOut
	if out == "" {
		out = filePath
	}
	if err := wb.SaveToFile(out); err != nil {
		return err
	}
	logger.Debug("saved workbook", "path", out)

	res, err := describe(wb, cs)
	if err != nil {
		return err
	}
	res.Cell, res.Sheet = ref, sheet
	return jsonPrint(cmd.OutOrStdout(), res)
}
