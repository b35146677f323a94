package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/doeshing/termsh/internal/domain"
)

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the audited command history",
	}

	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show the most recent commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			container := buildContainer(flags, cmd)
			records, err := container.Audit.Records(limit, "")
			if err != nil {
				return fmt.Errorf("read audit log: %w", err)
			}
			printRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}
	listCmd.Flags().IntVarP(&limit, "limit", "n", domain.DefaultHistoryLimit, "maximum entries to show")

	var searchLimit int
	searchCmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search past commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container := buildContainer(flags, cmd)
			records, err := container.Audit.Records(searchLimit, args[0])
			if err != nil {
				return fmt.Errorf("search audit log: %w", err)
			}
			if len(records) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no commands matching %q\n", args[0])
				return nil
			}
			printRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultHistorySearchLimit, "maximum entries to show")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the audited history",
		RunE: func(cmd *cobra.Command, args []string) error {
			container := buildContainer(flags, cmd)
			if err := container.Audit.Clear(); err != nil {
				return fmt.Errorf("clear audit log: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
			return nil
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export the audited history as JSON lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container := buildContainer(flags, cmd)
			if err := container.Audit.ExportJSON(args[0]); err != nil {
				return fmt.Errorf("export audit log: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(listCmd, searchCmd, clearCmd, exportCmd)
	cmd.RunE = listCmd.RunE
	cmd.Flags().IntVarP(&limit, "limit", "n", domain.DefaultHistoryLimit, "maximum entries to show")
	return cmd
}

func printRecords(out io.Writer, records []domain.AuditRecord) {
	for _, record := range records {
		marker := " "
		switch {
		case record.Cancelled:
			marker = "✗"
		case record.HighRisk:
			marker = "!"
		case record.Builtin:
			marker = "·"
		}
		line := fmt.Sprintf("%s %-20s %s", marker, humanize.Time(record.Timestamp), record.Command)
		if record.ExitCode != 0 && !record.Builtin && !record.Cancelled {
			line += fmt.Sprintf("  (exit %d)", record.ExitCode)
		}
		fmt.Fprintln(out, line)
	}
}
