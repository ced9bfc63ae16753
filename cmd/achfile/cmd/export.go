package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/paynearme/ach/export"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export a NACHA file's entries as XLSX or Parquet",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "xlsx", "output format: xlsx or parquet")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output path (required)")
	if err := exportCmd.MarkFlagRequired("output"); err != nil {
		fmt.Fprintf(os.Stderr, "Error marking flag required: %s\n", err)
		os.Exit(1)
	}
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	file, err := loadFile(args[0])
	if err != nil {
		return err
	}

	out, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", exportOutput, err)
	}
	defer out.Close()

	switch exportFormat {
	case "xlsx":
		err = export.XLSX(out, file)
	case "parquet":
		err = export.Parquet(out, file)
	default:
		return fmt.Errorf("unsupported format %q (want xlsx or parquet)", exportFormat)
	}
	if err != nil {
		return err
	}

	log.WithField("output", exportOutput).WithField("format", exportFormat).Debug("exported entries")
	return nil
}
