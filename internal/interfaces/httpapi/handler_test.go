package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/fc-tournament/internal/domain/account"
	"github.com/riskibarqy/fc-tournament/internal/domain/tournament"
	"github.com/riskibarqy/fc-tournament/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fc-tournament/internal/platform/id"
	"github.com/riskibarqy/fc-tournament/internal/platform/logging"
	"github.com/riskibarqy/fc-tournament/internal/usecase"
)

type stubVerifier map[string]account.Principal

func (v stubVerifier) VerifyAccessToken(_ context.Context, token string) (account.Principal, error) {
	principal, ok := v[token]
	if !ok {
		return account.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}
	return principal, nil
}

var testTokens = stubVerifier{
	"owner":    {AccountID: 1, Role: account.RoleUser},
	"player":   {AccountID: 2, Role: account.RoleUser},
	"outsider": {AccountID: 4, Role: account.RoleUser},
	"admin":    {AccountID: 5, Role: account.RoleAdmin},
}

type envelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       T                `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	tournaments, fixtures := memory.NewTournamentRepositories()
	catalog := memory.NewTeamCatalog(memory.SeedTeams())
	accounts := memory.NewAccountDirectory(memory.SeedAccounts())

	bus := usecase.NewEventBus(logger)
	locks := usecase.NewTournamentLocks()
	detector := usecase.NewCompletionDetector(tournaments, fixtures, bus, locks, logger)
	bus.SubscribeResultRecorded(detector)

	handler := NewHandler(
		usecase.NewTeamService(catalog),
		usecase.NewTournamentService(tournaments, fixtures, catalog, accounts, id.NewUUIDGenerator(), locks, tournament.DefaultRosterRules(), logger),
		usecase.NewResultService(tournaments, fixtures, bus, locks, tournament.EditPolicyRecompute, logger),
		usecase.NewDashboardService(tournaments, fixtures, catalog, 2),
		usecase.NewReconcileService(tournaments, detector, 2, logger),
		nil,
		logger,
	)
	return NewRouter(handler, testTokens, logger, []string{"*"})
}

func do(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var out envelope[T]
	if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response %q: %v", rec.Body.String(), err)
	}
	return out
}

func createTwoPlayerTournament(t *testing.T, router http.Handler) tournamentDetailDTO {
	t.Helper()

	rec := do(t, router, http.MethodPost, "/v1/tournaments", "owner", `{
		"name": "Friday Night",
		"players": [
			{"account_id": 1, "team_id": "arsenal"},
			{"account_id": 2, "team_id": "chelsea"}
		]
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create tournament status=%d body=%s", rec.Code, rec.Body.String())
	}
	return decode[tournamentDetailDTO](t, rec).Data
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthorizedRoutesRequireBearerToken(t *testing.T) {
	router := newTestRouter(t)

	if rec := do(t, router, http.MethodGet, "/v1/dashboard", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", rec.Code)
	}
	if rec := do(t, router, http.MethodGet, "/v1/dashboard", "forged", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown token: expected 401, got %d", rec.Code)
	}
}

func TestListTeamsGrouped(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/v1/teams/grouped", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	groups := decode[[]leagueGroupDTO](t, rec).Data
	if len(groups) == 0 || groups[0].League != "Premier League" {
		t.Fatalf("unexpected groups: %+v", groups)
	}

	if rec := do(t, router, http.MethodGet, "/v1/teams/unknown-fc", "", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown team: expected 404, got %d", rec.Code)
	}
}

func TestCreateTournament_GeneratesScheduleAndTable(t *testing.T) {
	router := newTestRouter(t)
	detail := createTwoPlayerTournament(t, router)

	if detail.Tournament.Status != string(tournament.StatusActive) {
		t.Fatalf("expected active tournament, got %s", detail.Tournament.Status)
	}
	if len(detail.Fixtures) != 2 || len(detail.Standings) != 2 {
		t.Fatalf("expected 2 fixtures and 2 rows, got %d and %d", len(detail.Fixtures), len(detail.Standings))
	}
	if detail.Competitors[0].Name != "sergio" {
		t.Fatalf("expected competitor name from username, got %q", detail.Competitors[0].Name)
	}
	for _, item := range detail.Fixtures {
		if item.Status != "pending" || item.HomeGoals != nil {
			t.Fatalf("new fixture must be pending: %+v", item)
		}
	}
}

func TestCreateTournament_RejectsBadPayloads(t *testing.T) {
	router := newTestRouter(t)

	cases := map[string]struct {
		body   string
		reason string
	}{
		"unknown field":  {body: `{"name":"x","players":[],"extra":true}`, reason: "invalidInput"},
		"missing name":   {body: `{"players":[{"account_id":1,"team_id":"arsenal"},{"account_id":2,"team_id":"chelsea"}]}`, reason: "invalidInput"},
		"single player":  {body: `{"name":"x","players":[{"account_id":1,"team_id":"arsenal"}]}`, reason: "invalidRoster"},
		"unknown team":   {body: `{"name":"x","players":[{"account_id":1,"team_id":"arsenal"},{"account_id":2,"team_id":"atlantis"}]}`, reason: "invalidRoster"},
		"same account":   {body: `{"name":"x","players":[{"account_id":1,"team_id":"arsenal"},{"account_id":1,"team_id":"chelsea"}]}`, reason: "invalidRoster"},
		"unknown player": {body: `{"name":"x","players":[{"account_id":1,"team_id":"arsenal"},{"account_id":99,"team_id":"chelsea"}]}`, reason: "invalidRoster"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/v1/tournaments", "owner", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
			}
			body := decode[any](t, rec)
			if body.Error == nil || len(body.Error.Errors) != 1 || body.Error.Errors[0].Reason != tc.reason {
				t.Fatalf("unexpected error body: %s", rec.Body.String())
			}
		})
	}
}

func TestTournamentVisibility(t *testing.T) {
	router := newTestRouter(t)
	detail := createTwoPlayerTournament(t, router)
	path := "/v1/tournaments/" + detail.Tournament.ID

	for token, want := range map[string]int{
		"owner":    http.StatusOK,
		"player":   http.StatusOK,
		"admin":    http.StatusOK,
		"outsider": http.StatusNotFound,
	} {
		if rec := do(t, router, http.MethodGet, path, token, ""); rec.Code != want {
			t.Fatalf("%s: expected %d, got %d", token, want, rec.Code)
		}
	}
}

func TestRecordResult_CompletesTournament(t *testing.T) {
	router := newTestRouter(t)
	detail := createTwoPlayerTournament(t, router)
	first, second := detail.Fixtures[0], detail.Fixtures[1]

	rec := do(t, router, http.MethodPost, "/v1/fixtures/"+first.ID+"/result", "owner", `{"home_goals": 3, "away_goals": 1}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("record first result status=%d body=%s", rec.Code, rec.Body.String())
	}
	out := decode[recordResultDTO](t, rec).Data
	if out.Fixture.Status != "played" || out.Fixture.HomeGoals == nil || *out.Fixture.HomeGoals != 3 {
		t.Fatalf("unexpected fixture: %+v", out.Fixture)
	}
	if out.Tournament.Status != string(tournament.StatusActive) {
		t.Fatalf("tournament must stay active with a pending fixture")
	}

	rec = do(t, router, http.MethodPost, "/v1/fixtures/"+second.ID+"/result", "admin", `{"home_goals": 0, "away_goals": 0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("record second result status=%d body=%s", rec.Code, rec.Body.String())
	}
	out = decode[recordResultDTO](t, rec).Data
	if out.Tournament.Status != string(tournament.StatusCompleted) {
		t.Fatalf("expected completed tournament, got %+v", out.Tournament)
	}

	rec = do(t, router, http.MethodGet, "/v1/tournaments/"+detail.Tournament.ID, "player", "")
	final := decode[tournamentDetailDTO](t, rec).Data
	if final.Champion == nil || final.Champion.ID != final.Standings[0].CompetitorID {
		t.Fatalf("champion must be the table leader: %+v", final.Champion)
	}
	if final.Summary.MatchesPlayed != 2 || final.Summary.TotalGoals != 4 {
		t.Fatalf("unexpected summary: %+v", final.Summary)
	}
}

func TestRecordResult_ErrorOrdering(t *testing.T) {
	router := newTestRouter(t)
	detail := createTwoPlayerTournament(t, router)
	path := "/v1/fixtures/" + detail.Fixtures[0].ID + "/result"

	if rec := do(t, router, http.MethodPost, "/v1/fixtures/missing/result", "owner", `{"home_goals": -1, "away_goals": 0}`); rec.Code != http.StatusNotFound {
		t.Fatalf("missing fixture: expected 404, got %d", rec.Code)
	}
	if rec := do(t, router, http.MethodPost, path, "player", `{"home_goals": -1, "away_goals": 0}`); rec.Code != http.StatusForbidden {
		t.Fatalf("participant: expected 403, got %d", rec.Code)
	}
	for _, body := range []string{
		`{"home_goals": -1, "away_goals": 2}`,
		`{"home_goals": 1.5, "away_goals": 0}`,
		`{"away_goals": 0}`,
	} {
		rec := do(t, router, http.MethodPost, path, "owner", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}

	rec := do(t, router, http.MethodGet, "/v1/tournaments/"+detail.Tournament.ID, "owner", "")
	if got := decode[tournamentDetailDTO](t, rec).Data.Fixtures[0]; got.Status != "pending" {
		t.Fatalf("rejected score must leave fixture unchanged: %+v", got)
	}
}

func TestRenameAndDeleteTournament(t *testing.T) {
	router := newTestRouter(t)
	detail := createTwoPlayerTournament(t, router)
	path := "/v1/tournaments/" + detail.Tournament.ID

	if rec := do(t, router, http.MethodPut, path, "player", `{"name":"Hijacked"}`); rec.Code != http.StatusForbidden {
		t.Fatalf("participant rename: expected 403, got %d", rec.Code)
	}
	rec := do(t, router, http.MethodPut, path, "owner", `{"name":"  Saturday Cup  "}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("rename status=%d body=%s", rec.Code, rec.Body.String())
	}
	if got := decode[tournamentDTO](t, rec).Data.Name; got != "Saturday Cup" {
		t.Fatalf("unexpected name %q", got)
	}

	if rec := do(t, router, http.MethodDelete, path, "owner", ""); rec.Code != http.StatusOK {
		t.Fatalf("delete status=%d", rec.Code)
	}
	if rec := do(t, router, http.MethodGet, path, "owner", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("deleted tournament: expected 404, got %d", rec.Code)
	}
	if rec := do(t, router, http.MethodPost, "/v1/fixtures/"+detail.Fixtures[0].ID+"/result", "owner", `{"home_goals":1,"away_goals":0}`); rec.Code != http.StatusNotFound {
		t.Fatalf("fixture of deleted tournament: expected 404, got %d", rec.Code)
	}
}

func TestDashboard_ShowsVisibleTournaments(t *testing.T) {
	router := newTestRouter(t)
	createTwoPlayerTournament(t, router)

	rec := do(t, router, http.MethodGet, "/v1/dashboard", "player", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard status=%d", rec.Code)
	}
	if got := decode[dashboardDTO](t, rec).Data; len(got.Tournaments) != 1 || got.CurrentChampion != nil {
		t.Fatalf("unexpected dashboard for participant: %+v", got)
	}

	rec = do(t, router, http.MethodGet, "/v1/dashboard", "outsider", "")
	if got := decode[dashboardDTO](t, rec).Data; len(got.Tournaments) != 0 {
		t.Fatalf("outsider must not see the tournament: %+v", got)
	}
}

func TestReconcileRequiresAdmin(t *testing.T) {
	router := newTestRouter(t)
	createTwoPlayerTournament(t, router)

	if rec := do(t, router, http.MethodPost, "/v1/internal/reconcile", "owner", ""); rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin: expected 403, got %d", rec.Code)
	}
	rec := do(t, router, http.MethodPost, "/v1/internal/reconcile", "admin", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("admin reconcile status=%d body=%s", rec.Code, rec.Body.String())
	}
	if got := decode[usecase.ReconcileResult](t, rec).Data; got.Checked != 1 || got.Failed != 0 {
		t.Fatalf("unexpected reconcile result: %+v", got)
	}
}

func TestLiveRouteDisabledWithoutHub(t *testing.T) {
	router := newTestRouter(t)
	detail := createTwoPlayerTournament(t, router)

	rec := do(t, router, http.MethodGet, "/v1/tournaments/"+detail.Tournament.ID+"/live", "owner", "")
	if rec.Code != http.StatusNotFound && rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected live route to be absent, got %d", rec.Code)
	}
}
