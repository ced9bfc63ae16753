package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Print a summary of a NACHA file's entries and totals",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	file, err := loadFile(args[0])
	if err != nil {
		return err
	}

	debit := color.New(color.FgRed)
	credit := color.New(color.FgGreen)

	for _, line := range strings.Split(file.Report(), "\r\n") {
		switch {
		case strings.HasPrefix(line, "Debit Total:"):
			debit.Fprintln(cmd.OutOrStdout(), line)
		case strings.HasPrefix(line, "Credit Total:"):
			credit.Fprintln(cmd.OutOrStdout(), line)
		default:
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
	}
	return nil
}
