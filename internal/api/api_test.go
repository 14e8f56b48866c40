package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvukas/rostertag/internal/api"
	"github.com/mvukas/rostertag/internal/api/response"
	"github.com/mvukas/rostertag/internal/captions"
	"github.com/mvukas/rostertag/internal/factory"
	"github.com/mvukas/rostertag/internal/model"
	"github.com/mvukas/rostertag/internal/services/catalog"
	"github.com/mvukas/rostertag/internal/services/auth"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.App
}

func newTestServer(t *testing.T, authCfg auth.Config) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{
		StorageType: factory.StorageTypeMemory,
		AuthConfig:  authCfg,
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AuthService:    app.AuthService,
		CatalogService: app.CatalogService,
		PlayersService: app.PlayersService,
		ExportService:  app.ExportService,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// seed creates a sport, match and team, and ingests roster text
func (ts *testServer) seed(t *testing.T, rosterText string) (model.Match, model.Team) {
	t.Helper()
	ctx := context.Background()

	sport, err := ts.app.CatalogService.CreateSport(ctx, "Football")
	require.NoError(t, err)

	match, err := ts.app.CatalogService.CreateMatch(ctx, catalog.NewMatch{
		SportID:     sport.ID,
		Date:        "2026-01-08",
		City:        "Zagreb",
		Country:     "Croatia",
		Venue:       "Stadion Maksimir",
		Description: "Friendly match",
	})
	require.NoError(t, err)

	team, err := ts.app.CatalogService.CreateTeam(ctx, match.ID, "Croatia", "HRV")
	require.NoError(t, err)

	if rosterText != "" {
		_, err = ts.app.PlayersService.IngestText(ctx, team, rosterText)
		require.NoError(t, err)
	}

	return match, team
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	rr := ts.request(http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

// Auth tests

func TestLoginAndVerify(t *testing.T) {
	ts := newTestServer(t, auth.Config{AdminPassword: "hunter2"})

	rr := ts.request(http.MethodPost, "/api/auth/login", map[string]string{"password": "hunter2"}, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var loginResp response.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &loginResp))
	assert.NotEmpty(t, loginResp.Token)
	assert.False(t, loginResp.Trusted)

	rr = ts.request(http.MethodGet, "/api/auth/verify", nil, loginResp.Token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var verifyResp response.VerifyResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &verifyResp))
	assert.True(t, verifyResp.Valid)
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newTestServer(t, auth.Config{AdminPassword: "hunter2"})

	rr := ts.request(http.MethodPost, "/api/auth/login", map[string]string{"password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_PASSWORD")
}

func TestVerifyWithoutToken(t *testing.T) {
	ts := newTestServer(t, auth.Config{AdminPassword: "hunter2"})

	rr := ts.request(http.MethodGet, "/api/auth/verify", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestWriteRequiresToken(t *testing.T) {
	ts := newTestServer(t, auth.Config{AdminPassword: "hunter2"})

	rr := ts.request(http.MethodPost, "/api/sports", []model.Sport{{ID: "sp_1", Name: "Football"}}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodPost, "/api/sports", []model.Sport{{ID: "sp_1", Name: "Football"}}, "sess_bogus")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestTrustedModeSkipsAuth(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	rr := ts.request(http.MethodPost, "/api/sports", []model.Sport{{ID: "sp_1", Name: "Football"}}, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/auth/verify", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var verifyResp response.VerifyResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &verifyResp))
	assert.True(t, verifyResp.Valid)
	assert.True(t, verifyResp.Trusted)
}

// Catalog tests

func TestSaveAndListSports(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	sports := []model.Sport{{ID: "sp_1", Name: "Football"}}
	rr := ts.request(http.MethodPost, "/api/sports", sports, "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/sports", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var listed []model.Sport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Football", listed[0].Name)
}

func TestSaveMatchesValidatesDate(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	matches := []model.Match{{ID: "m_1", SportID: "sp_1", Date: "08.01.2026"}}
	rr := ts.request(http.MethodPost, "/api/matches", matches, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "VALIDATION_FAILED")
}

// Player tests

func TestSaveAndListPlayers(t *testing.T) {
	ts := newTestServer(t, auth.Config{})
	_, team := ts.seed(t, "")

	players := []model.Player{
		{ID: "p1", PlayerNumber: "10", LastName: "MODRIC", Valid: true},
		{ID: "p2", PlayerNumber: "9", LastName: "KRAMARIC", Valid: true},
	}
	rr := ts.request(http.MethodPost, "/api/players/"+string(team.ID), players, "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/players/"+string(team.ID), nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var listed []model.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	// Sorted by player number
	assert.Equal(t, "9", listed[0].PlayerNumber)
	assert.Equal(t, "10", listed[1].PlayerNumber)
}

func TestDeletePlayers(t *testing.T) {
	ts := newTestServer(t, auth.Config{})
	_, team := ts.seed(t, "7 Ivan Horvat")

	rr := ts.request(http.MethodDelete, "/api/players/"+string(team.ID), nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/players/"+string(team.ID), nil, "")
	var listed []model.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	assert.Empty(t, listed)
}

func TestSwapAndCleanPlayers(t *testing.T) {
	ts := newTestServer(t, auth.Config{})
	_, team := ts.seed(t, "7 Ivan Čačić")

	rr := ts.request(http.MethodPost, "/api/players/"+string(team.ID)+"/clean", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var cleaned []model.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cleaned))
	require.Len(t, cleaned, 1)
	assert.Equal(t, "CACIC", cleaned[0].LastName)

	rr = ts.request(http.MethodPost, "/api/players/"+string(team.ID)+"/swap", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var swapped []model.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &swapped))
	require.Len(t, swapped, 1)
	assert.Equal(t, "Cacic", swapped[0].FirstName)
	assert.Equal(t, "IVAN", swapped[0].LastName)
}

// Parse tests

func TestParse(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	body := map[string]any{"text": "7 Ivan Horvat\nInvalid Line"}
	rr := ts.request(http.MethodPost, "/api/parse", body, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var parsed []model.ParsedPlayer
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &parsed))
	require.Len(t, parsed, 2)
	assert.True(t, parsed[0].Valid)
	assert.False(t, parsed[1].Valid)
	assert.Equal(t, "INVALID LINE", parsed[1].LastName)
}

func TestParseWithFilter(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	body := map[string]any{"text": "TEAM SHEET\n7 Ivan Horvat\nPage 1 of 2", "filter": true}
	rr := ts.request(http.MethodPost, "/api/parse", body, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var parsed []model.ParsedPlayer
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, "7", parsed[0].PlayerNumber)
}

// Export tests

func TestExportMatchAsDownload(t *testing.T) {
	ts := newTestServer(t, auth.Config{})
	match, _ := ts.seed(t, "7 Ivan Horvat")

	rr := ts.request(http.MethodGet, "/api/export/"+string(match.ID), nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "2026-01-08-Croatia.txt")
	assert.Contains(t, rr.Body.String(), "HRV7\tIvan HORVAT (7)")
}

func TestExportMatchAsJSON(t *testing.T) {
	ts := newTestServer(t, auth.Config{})
	match, _ := ts.seed(t, "7 Ivan Horvat")

	rr := ts.request(http.MethodGet, "/api/export/"+string(match.ID)+"?format=json", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.ExportResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "2026-01-08-Croatia.txt", resp.Filename)
	assert.Contains(t, resp.Content, "HRV7\tIvan HORVAT (7)")
}

func TestExportTeam(t *testing.T) {
	ts := newTestServer(t, auth.Config{})
	_, team := ts.seed(t, "7 Ivan Horvat")

	rr := ts.request(http.MethodGet, "/api/export/team/"+string(team.ID)+"?format=json", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.ExportResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "team-HRV.txt", resp.Filename)
}

func TestExportBlockedWithoutValidPlayers(t *testing.T) {
	ts := newTestServer(t, auth.Config{})
	match, _ := ts.seed(t, "Invalid Line")

	rr := ts.request(http.MethodGet, "/api/export/"+string(match.ID), nil, "")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "EXPORT_BLOCKED")
}

func TestExportUnknownMatch(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	rr := ts.request(http.MethodGet, "/api/export/m_unknown", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "MATCH_NOT_FOUND")
}

// Caption tests

func TestCaptions(t *testing.T) {
	ts := newTestServer(t, auth.Config{})
	match, _ := ts.seed(t, "")

	rr := ts.request(http.MethodGet, "/api/captions/"+string(match.ID), nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var all captions.All
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))
	assert.Contains(t, all.Shutterstock, "ZAGREB, CROATIA")
	assert.Contains(t, all.Editorial, "Croatia v Team 2")
	assert.Contains(t, all.Imago, "8th January 2026")
}
