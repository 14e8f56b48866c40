package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mvukas/rostertag/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Sport tests

func (s *StorageSuite) TestGetSportsEmpty() {
	sports, err := s.storage.GetSports(s.ctx)
	s.Require().NoError(err)
	s.Empty(sports)
	s.NotNil(sports)
}

func (s *StorageSuite) TestSaveAndGetSports() {
	sports := []model.Sport{
		{ID: "sp_1", Name: "Football"},
		{ID: "sp_2", Name: "Handball"},
	}

	err := s.storage.SaveSports(s.ctx, sports)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSports(s.ctx)
	s.Require().NoError(err)
	s.Equal(sports, retrieved)
}

func (s *StorageSuite) TestSaveSportsReplacesWholeCollection() {
	_ = s.storage.SaveSports(s.ctx, []model.Sport{{ID: "sp_1", Name: "Football"}})
	_ = s.storage.SaveSports(s.ctx, []model.Sport{{ID: "sp_2", Name: "Handball"}})

	retrieved, err := s.storage.GetSports(s.ctx)
	s.Require().NoError(err)
	s.Len(retrieved, 1)
	s.Equal(model.SportID("sp_2"), retrieved[0].ID)
}

func (s *StorageSuite) TestGetSportsReturnsCopy() {
	_ = s.storage.SaveSports(s.ctx, []model.Sport{{ID: "sp_1", Name: "Football"}})

	retrieved, _ := s.storage.GetSports(s.ctx)
	retrieved[0].Name = "Mutated"

	again, _ := s.storage.GetSports(s.ctx)
	s.Equal("Football", again[0].Name)
}

// Match tests

func (s *StorageSuite) TestSaveAndGetMatches() {
	matches := []model.Match{
		{ID: "m_1", SportID: "sp_1", Date: "2026-01-08", City: "Zagreb"},
	}

	err := s.storage.SaveMatches(s.ctx, matches)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMatches(s.ctx)
	s.Require().NoError(err)
	s.Equal(matches, retrieved)
}

// Team tests

func (s *StorageSuite) TestSaveAndGetTeams() {
	teams := []model.Team{
		{ID: "t_1", MatchID: "m_1", Name: "Croatia", TeamCode: "HRV"},
		{ID: "t_2", MatchID: "m_1", Name: "Germany", TeamCode: "GER"},
	}

	err := s.storage.SaveTeams(s.ctx, teams)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetTeams(s.ctx)
	s.Require().NoError(err)
	s.Equal(teams, retrieved)
}

// Player tests

func (s *StorageSuite) TestGetPlayersUnknownTeamIsEmpty() {
	players, err := s.storage.GetPlayers(s.ctx, "t_unknown")
	s.Require().NoError(err)
	s.Empty(players)
	s.NotNil(players)
}

func (s *StorageSuite) TestSaveAndGetPlayers() {
	players := []model.Player{
		{ID: "p1", PlayerNumber: "7", FirstName: "Ivan", LastName: "HORVAT", Valid: true},
	}

	err := s.storage.SavePlayers(s.ctx, "t_1", players)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayers(s.ctx, "t_1")
	s.Require().NoError(err)
	s.Equal(players, retrieved)
}

func (s *StorageSuite) TestPlayersKeyedByTeam() {
	_ = s.storage.SavePlayers(s.ctx, "t_1", []model.Player{{ID: "p1", LastName: "HORVAT"}})
	_ = s.storage.SavePlayers(s.ctx, "t_2", []model.Player{{ID: "p2", LastName: "MULLER"}})

	players, err := s.storage.GetPlayers(s.ctx, "t_1")
	s.Require().NoError(err)
	s.Len(players, 1)
	s.Equal(model.PlayerID("p1"), players[0].ID)
}

func (s *StorageSuite) TestDeletePlayers() {
	_ = s.storage.SavePlayers(s.ctx, "t_1", []model.Player{{ID: "p1", LastName: "HORVAT"}})

	err := s.storage.DeletePlayers(s.ctx, "t_1")
	s.Require().NoError(err)

	players, err := s.storage.GetPlayers(s.ctx, "t_1")
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestDeletePlayersUnknownTeamIsNoop() {
	s.NoError(s.storage.DeletePlayers(s.ctx, "t_unknown"))
}
