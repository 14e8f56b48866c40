package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvukas/rostertag/internal/model"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tagging text and captions",
	}

	cmd.AddCommand(newExportMatchCmd())
	cmd.AddCommand(newExportTeamCmd())
	cmd.AddCommand(newExportCaptionsCmd())

	return cmd
}

func newExportMatchCmd() *cobra.Command {
	var outFile string
	var save bool

	cmd := &cobra.Command{
		Use:   "match <match-id>",
		Short: "Export the tagging text for a whole match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := gw.ExportMatch(cmd.Context(), model.MatchID(args[0]))
			if err != nil {
				return err
			}
			return writeExport(result, outFile, save)
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "Write to this file instead of stdout")
	cmd.Flags().BoolVar(&save, "save", false, "Write to the export's default filename")

	return cmd
}

func newExportTeamCmd() *cobra.Command {
	var outFile string
	var save bool

	cmd := &cobra.Command{
		Use:   "team <team-id>",
		Short: "Export the tagging text for a single team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := gw.ExportTeam(cmd.Context(), model.TeamID(args[0]))
			if err != nil {
				return err
			}
			return writeExport(result, outFile, save)
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "Write to this file instead of stdout")
	cmd.Flags().BoolVar(&save, "save", false, "Write to the export's default filename")

	return cmd
}

func newExportCaptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "captions <match-id>",
		Short: "Show the stock photo captions for a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := gw.Captions(cmd.Context(), model.MatchID(args[0]))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func writeExport(result ExportResult, outFile string, save bool) error {
	if save && outFile == "" {
		outFile = result.Filename
	}

	if outFile != "" {
		if err := os.WriteFile(outFile, []byte(result.Content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outFile, err)
		}
		out := NewOutput(cfg.Output)
		out.PrintMessage(fmt.Sprintf("Wrote %s", outFile))
		return nil
	}

	out := NewOutput(cfg.Output)
	out.Print(result)
	return nil
}
