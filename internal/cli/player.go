package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvukas/rostertag/internal/dependencies/random"
	"github.com/mvukas/rostertag/internal/model"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Roster management commands",
	}

	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerIngestCmd())
	cmd.AddCommand(newPlayerClearCmd())
	cmd.AddCommand(newPlayerSwapCmd())
	cmd.AddCommand(newPlayerCleanCmd())

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a team's roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := gw.Players(cmd.Context(), model.TeamID(team))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(players)
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Team ID (required)")
	_ = cmd.MarkFlagRequired("team")

	return cmd
}

func newPlayerIngestCmd() *cobra.Command {
	var team, code, file string
	var filter, replace bool

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Parse roster text and add the players to a team",
		Long: `Parses pasted roster text (one player per line) with the grammar the
data-entry form uses, normalizes names, and appends the resulting
players to the team. Reads from --file or stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readTextInput(file)
			if err != nil {
				return err
			}

			parsed, err := gw.Parse(cmd.Context(), text, filter)
			if err != nil {
				return err
			}

			teamID := model.TeamID(team)
			var current []model.Player
			if !replace {
				current, err = gw.Players(cmd.Context(), teamID)
				if err != nil {
					return err
				}
			}

			rnd := random.New()
			for _, p := range parsed {
				current = append(current, model.Player{
					ID:           model.PlayerID(rnd.ID("pl_")),
					PlayerNumber: p.PlayerNumber,
					FirstName:    p.FirstName,
					LastName:     p.LastName,
					RawInput:     p.RawInput,
					Valid:        p.Valid,
					TeamCode:     code,
				})
			}

			if err := gw.SavePlayers(cmd.Context(), teamID, current); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(current)
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Team ID (required)")
	cmd.Flags().StringVar(&code, "code", "", "Team code to tag players with")
	cmd.Flags().StringVar(&file, "file", "", "Roster text file (defaults to stdin)")
	cmd.Flags().BoolVar(&filter, "filter", false, "Pre-filter likely player lines from pasted PDF text")
	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the roster instead of appending")
	_ = cmd.MarkFlagRequired("team")

	return cmd
}

func newPlayerClearCmd() *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete a team's roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := gw.DeletePlayers(cmd.Context(), model.TeamID(team)); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Roster deleted")
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Team ID (required)")
	_ = cmd.MarkFlagRequired("team")

	return cmd
}

func newPlayerSwapCmd() *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:   "swap",
		Short: "Swap first and last names across a team's roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := gw.SwapNames(cmd.Context(), model.TeamID(team))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(players)
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Team ID (required)")
	_ = cmd.MarkFlagRequired("team")

	return cmd
}

func newPlayerCleanCmd() *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Strip diacritics from every name on a team's roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := gw.CleanNames(cmd.Context(), model.TeamID(team))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(players)
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Team ID (required)")
	_ = cmd.MarkFlagRequired("team")

	return cmd
}

func newParseCmd() *cobra.Command {
	var file string
	var filter bool

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse roster text without saving anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readTextInput(file)
			if err != nil {
				return err
			}

			parsed, err := gw.Parse(cmd.Context(), text, filter)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(parsed)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Roster text file (defaults to stdin)")
	cmd.Flags().BoolVar(&filter, "filter", false, "Pre-filter likely player lines from pasted PDF text")

	return cmd
}

func readTextInput(file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
