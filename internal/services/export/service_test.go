package export

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mvukas/rostertag/internal/dependencies/mocks"
	"github.com/mvukas/rostertag/internal/model"
	"github.com/mvukas/rostertag/internal/services/catalog"
	"github.com/mvukas/rostertag/internal/services/players"
	"github.com/mvukas/rostertag/internal/storage/memory"
	"github.com/mvukas/rostertag/internal/testutil"
)

type ExportSuite struct {
	suite.Suite
	catalog *catalog.Service
	players *players.Service
	service *Service
	ctx     context.Context

	match model.Match
	team  model.Team
}

func TestExportSuite(t *testing.T) {
	suite.Run(t, new(ExportSuite))
}

func (s *ExportSuite) SetupTest() {
	store := memory.New()
	clk := mocks.NewMockClock(time.Date(2026, 1, 8, 12, 0, 0, 0, time.UTC))
	rnd := mocks.NewMockRandom()
	logger := testutil.NopLogger()

	s.catalog = catalog.New(store, clk, rnd, logger)
	s.players = players.New(store, rnd, logger)
	s.service = New(s.catalog, s.players, logger)
	s.ctx = context.Background()

	sport, err := s.catalog.CreateSport(s.ctx, "Football")
	s.Require().NoError(err)

	s.match, err = s.catalog.CreateMatch(s.ctx, catalog.NewMatch{
		SportID:     sport.ID,
		Date:        "2026-01-08",
		City:        "Zagreb",
		Country:     "Croatia",
		Venue:       "Stadion Maksimir",
		Description: "Friendly match",
	})
	s.Require().NoError(err)

	s.team, err = s.catalog.CreateTeam(s.ctx, s.match.ID, "Croatia", "HRV")
	s.Require().NoError(err)
}

func (s *ExportSuite) ingest(text string) {
	_, err := s.players.IngestText(s.ctx, s.team, text)
	s.Require().NoError(err)
}

// Match export tests

func (s *ExportSuite) TestForMatch() {
	s.ingest("7 Ivan Horvat")

	artifact, err := s.service.ForMatch(s.ctx, s.match.ID)
	s.Require().NoError(err)
	s.Equal("2026-01-08-Croatia.txt", artifact.Filename)
	s.Contains(artifact.Content, "Football")
	s.Contains(artifact.Content, "ZAGREB, CROATIA - JANUARY 8, 2026: Friendly match")
	s.Contains(artifact.Content, "HRV7\tIvan HORVAT (7)")
}

func (s *ExportSuite) TestForMatchUnknownMatch() {
	_, err := s.service.ForMatch(s.ctx, "m_unknown")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *ExportSuite) TestForMatchNoTeams() {
	other, err := s.catalog.CreateMatch(s.ctx, catalog.NewMatch{
		SportID: s.match.SportID,
		Date:    "2026-02-01",
	})
	s.Require().NoError(err)

	_, err = s.service.ForMatch(s.ctx, other.ID)
	s.ErrorIs(err, model.ErrTeamNotFound)
}

func (s *ExportSuite) TestForMatchRequiresTeamCode() {
	noCode, err := s.catalog.CreateTeam(s.ctx, s.match.ID, "Mystery", "")
	s.Require().NoError(err)
	_, err = s.players.IngestText(s.ctx, noCode, "7 Ivan Horvat")
	s.Require().NoError(err)

	_, err = s.service.ForMatch(s.ctx, s.match.ID)
	s.ErrorIs(err, model.ErrTeamCodeRequired)
}

func (s *ExportSuite) TestForMatchRequiresValidPlayers() {
	s.ingest("Invalid Line")

	_, err := s.service.ForMatch(s.ctx, s.match.ID)
	s.ErrorIs(err, model.ErrNoValidPlayers)
}

// Team export tests

func (s *ExportSuite) TestForTeam() {
	s.ingest("7 Ivan Horvat\nInvalid Line")

	artifact, err := s.service.ForTeam(s.ctx, s.team.ID)
	s.Require().NoError(err)
	s.Equal("team-HRV.txt", artifact.Filename)
	s.Contains(artifact.Content, "HRV7\tIvan HORVAT (7)")
	s.NotContains(artifact.Content, "INVALID LINE")
}

func (s *ExportSuite) TestForTeamUnknownTeam() {
	_, err := s.service.ForTeam(s.ctx, "t_unknown")
	s.ErrorIs(err, model.ErrTeamNotFound)
}

// Caption tests

func (s *ExportSuite) TestCaptions() {
	all, err := s.service.Captions(s.ctx, s.match.ID)
	s.Require().NoError(err)
	s.Contains(all.Shutterstock, "ZAGREB, CROATIA")
	s.Contains(all.Editorial, "Croatia v Team 2")
	s.Contains(all.Imago, "8th January 2026")
}

func (s *ExportSuite) TestCaptionsUnknownMatch() {
	_, err := s.service.Captions(s.ctx, "m_unknown")
	s.ErrorIs(err, model.ErrMatchNotFound)
}
