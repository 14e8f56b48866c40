package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mvukas/rostertag/internal/captions"
	"github.com/mvukas/rostertag/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case []model.Sport:
		o.printSports(v)
	case []model.Match:
		o.printMatches(v)
	case []model.Team:
		o.printTeams(v)
	case []model.Player:
		o.printPlayers(v)
	case []model.ParsedPlayer:
		o.printParsed(v)
	case LoginResult:
		o.printLoginResult(v)
	case VerifyResult:
		o.printVerifyResult(v)
	case ExportResult:
		o.printExportResult(v)
	case captions.All:
		o.printCaptions(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// LoginResult is the login response (matches API)
type LoginResult struct {
	Token   string `json:"token"`
	Trusted bool   `json:"trusted,omitempty"`
}

// VerifyResult is the token verification response
type VerifyResult struct {
	Valid   bool `json:"valid"`
	Trusted bool `json:"trusted,omitempty"`
}

// ExportResult carries a rendered export artifact
type ExportResult struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSports(sports []model.Sport) {
	if len(sports) == 0 {
		fmt.Println("No sports")
		return
	}
	for _, s := range sports {
		fmt.Printf("%s  %s\n", s.ID, s.Name)
	}
}

func (o *Output) printMatches(matches []model.Match) {
	if len(matches) == 0 {
		fmt.Println("No matches")
		return
	}
	for _, m := range matches {
		fmt.Printf("%s  %s  %s\n", m.ID, m.Date, m.Description)
		if m.City != "" || m.Country != "" || m.Venue != "" {
			fmt.Printf("    %s, %s (%s)\n", m.City, m.Country, m.Venue)
		}
	}
}

func (o *Output) printTeams(teams []model.Team) {
	if len(teams) == 0 {
		fmt.Println("No teams")
		return
	}
	for _, t := range teams {
		fmt.Printf("%s  [%s] %s (match %s)\n", t.ID, t.TeamCode, t.Name, t.MatchID)
	}
}

// playerRow renders one roster row: an "!" marker for invalid entries,
// then number and name. Persisted and freshly-parsed players share this
// via the parser-level view.
func playerRow(p model.ParsedPlayer) string {
	marker := " "
	if !p.Valid {
		marker = "!"
	}
	return fmt.Sprintf("%s %-4s %s %s", marker, p.PlayerNumber, p.FirstName, p.LastName)
}

func (o *Output) printPlayers(players []model.Player) {
	if len(players) == 0 {
		fmt.Println("No players")
		return
	}
	for _, p := range players {
		fmt.Println(playerRow(p.Parsed()))
	}
}

func (o *Output) printParsed(players []model.ParsedPlayer) {
	valid := 0
	for _, p := range players {
		if p.Valid {
			valid++
		}
		fmt.Println(playerRow(p))
	}
	fmt.Printf("%d lines, %d valid\n", len(players), valid)
}

func (o *Output) printLoginResult(r LoginResult) {
	if r.Trusted {
		fmt.Println("Trusted mode: no login required")
		return
	}
	fmt.Printf("Token: %s\n", r.Token)
}

func (o *Output) printVerifyResult(r VerifyResult) {
	validStr := "no"
	if r.Valid {
		validStr = "yes"
	}
	fmt.Printf("Valid: %s\n", validStr)
	if r.Trusted {
		fmt.Println("Trusted: yes")
	}
}

func (o *Output) printExportResult(r ExportResult) {
	fmt.Println(r.Content)
}

func (o *Output) printCaptions(c captions.All) {
	fmt.Printf("Shutterstock: %s\n", c.Shutterstock)
	fmt.Printf("Editorial:    %s\n", c.Editorial)
	fmt.Printf("Imago:        %s\n", c.Imago)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
