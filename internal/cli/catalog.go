package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvukas/rostertag/internal/model"
)

func newSportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sport",
		Short: "Sport management commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all sports",
		RunE: func(cmd *cobra.Command, args []string) error {
			sports, err := gw.Sports(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(sports)
			return nil
		},
	})

	cmd.AddCommand(newSportImportCmd())

	return cmd
}

func newSportImportCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace all sports from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var sports []model.Sport
			if err := readJSONFile(file, &sports); err != nil {
				return err
			}

			if err := gw.SaveSports(cmd.Context(), sports); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Saved %d sports", len(sports)))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file with the sports collection (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match management commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := gw.Matches(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(matches)
			return nil
		},
	})

	cmd.AddCommand(newMatchImportCmd())

	return cmd
}

func newMatchImportCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace all matches from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var matches []model.Match
			if err := readJSONFile(file, &matches); err != nil {
				return err
			}

			if err := gw.SaveMatches(cmd.Context(), matches); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Saved %d matches", len(matches)))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file with the matches collection (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Team management commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := gw.Teams(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(teams)
			return nil
		},
	})

	cmd.AddCommand(newTeamImportCmd())

	return cmd
}

func newTeamImportCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace all teams from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var teams []model.Team
			if err := readJSONFile(file, &teams); err != nil {
				return err
			}

			if err := gw.SaveTeams(cmd.Context(), teams); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Saved %d teams", len(teams)))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file with the teams collection (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
