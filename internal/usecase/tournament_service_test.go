package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fc-tournament/internal/domain/account"
	"github.com/riskibarqy/fc-tournament/internal/domain/tournament"
)

func TestTournamentService_CreateBuildsRosterAndSchedule(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, tournament.EditPolicyRecompute, tournament.DefaultRosterRules())
	detail := env.create(t, "  Friday Cup ", rosterOf("1", "arsenal", "2", "milan", "3", "psg"))

	if detail.Tournament.Name != "Friday Cup" || detail.Tournament.OwnerID != ownerPrincipal.AccountID {
		t.Fatalf("unexpected tournament: %+v", detail.Tournament)
	}
	if detail.Tournament.Status != tournament.StatusActive || detail.Tournament.ChampionID != "" {
		t.Fatalf("new tournament must be active without champion: %+v", detail.Tournament)
	}
	if len(detail.Competitors) != 3 || detail.Competitors[0].Name != "sergio" || detail.Competitors[2].Name != "panda" {
		t.Fatalf("unexpected competitors: %+v", detail.Competitors)
	}
	for i, item := range detail.Competitors {
		if item.EntryIndex != i+1 {
			t.Fatalf("competitor %d has entry index %d, want %d", i, item.EntryIndex, i+1)
		}
	}
	if len(detail.Fixtures) != 6 {
		t.Fatalf("expected 6 fixtures, got %d", len(detail.Fixtures))
	}
	for i := 1; i < len(detail.Fixtures); i++ {
		if detail.Fixtures[i-1].Round > detail.Fixtures[i].Round {
			t.Fatalf("fixtures must be ordered by round: %+v", detail.Fixtures)
		}
	}
	if len(detail.Standings) != 3 || detail.Standings[0].Name != "panda" {
		t.Fatalf("empty table must be ordered by name: %+v", detail.Standings)
	}
	if detail.Summary.TotalMatches != 6 || detail.Summary.MatchesPlayed != 0 {
		t.Fatalf("unexpected summary: %+v", detail.Summary)
	}
}

func TestTournamentService_CreateValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   CreateTournamentInput
		domain  error
		usecase error
	}{
		{name: "blank name", input: CreateTournamentInput{Name: " ", Entries: rosterOf("1", "arsenal", "2", "milan")}, usecase: ErrInvalidInput},
		{name: "one player", input: CreateTournamentInput{Name: "Cup", Entries: rosterOf("1", "arsenal")}, usecase: ErrInvalidInput, domain: tournament.ErrInvalidSize},
		{name: "invalid entries filtered", input: CreateTournamentInput{Name: "Cup", Entries: rosterOf("1", "arsenal", "x", "milan")}, usecase: ErrInvalidInput, domain: tournament.ErrInvalidSize},
		{name: "unknown team", input: CreateTournamentInput{Name: "Cup", Entries: rosterOf("1", "arsenal", "2", "wrexham")}, usecase: ErrInvalidInput, domain: tournament.ErrUnknownTeam},
		{name: "same account twice", input: CreateTournamentInput{Name: "Cup", Entries: rosterOf("1", "arsenal", "1", "milan")}, usecase: ErrInvalidInput, domain: tournament.ErrDuplicateOwner},
		{name: "missing account", input: CreateTournamentInput{Name: "Cup", Entries: rosterOf("1", "arsenal", "77", "milan")}, usecase: ErrInvalidInput, domain: tournament.ErrUnknownOwner},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t, tournament.EditPolicyRecompute, tournament.DefaultRosterRules())
			_, err := env.service.Create(context.Background(), ownerPrincipal, tc.input)
			if !errors.Is(err, tc.usecase) {
				t.Fatalf("expected %v, got %v", tc.usecase, err)
			}
			if tc.domain != nil && !errors.Is(err, tc.domain) {
				t.Fatalf("expected %v, got %v", tc.domain, err)
			}

			listed, listErr := env.tournaments.ListVisible(context.Background(), 0, true)
			if listErr != nil || len(listed) != 0 {
				t.Fatalf("nothing must be stored on failure: %+v err=%v", listed, listErr)
			}
		})
	}
}

func TestTournamentService_CreateRequiresPrincipal(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, tournament.EditPolicyRecompute, tournament.DefaultRosterRules())
	_, err := env.service.Create(context.Background(), account.Principal{}, CreateTournamentInput{Name: "Cup"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestTournamentService_NamedRosterMode(t *testing.T) {
	t.Parallel()

	rules := tournament.DefaultRosterRules()
	rules.Mode = tournament.RosterModeNames
	env := newTestEnv(t, tournament.EditPolicyRecompute, rules)

	detail := env.create(t, "Names", []tournament.RawEntry{
		{Name: "Bravo", TeamID: "ajax"},
		{Name: "Alpha", TeamID: "ajax"},
	})
	if detail.Competitors[0].AccountID != 0 || detail.Standings[0].Name != "Alpha" {
		t.Fatalf("unexpected named roster: %+v", detail)
	}
}

func TestTournamentService_GetVisibility(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, tournament.EditPolicyRecompute, tournament.DefaultRosterRules())
	detail := env.create(t, "Cup", rosterOf("1", "arsenal", "2", "milan"))
	ctx := context.Background()

	cases := []struct {
		name   string
		caller account.Principal
		ok     bool
	}{
		{name: "owner", caller: ownerPrincipal, ok: true},
		{name: "player", caller: playerPrincipal, ok: true},
		{name: "admin", caller: adminPrincipal, ok: true},
		{name: "outsider", caller: outsiderPrincipal, ok: false},
	}
	for _, tc := range cases {
		_, err := env.service.Get(ctx, tc.caller, detail.Tournament.ID)
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, ErrNotFound) {
			t.Fatalf("%s: expected ErrNotFound, got %v", tc.name, err)
		}
	}

	if _, err := env.service.Get(ctx, ownerPrincipal, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTournamentService_RenameAndDelete(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, tournament.EditPolicyRecompute, tournament.DefaultRosterRules())
	detail := env.create(t, "Cup", rosterOf("1", "arsenal", "2", "milan"))
	ctx := context.Background()
	id := detail.Tournament.ID

	if _, err := env.service.Rename(ctx, playerPrincipal, id, "Mine now"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := env.service.Rename(ctx, ownerPrincipal, id, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	renamed, err := env.service.Rename(ctx, adminPrincipal, id, " Winter Cup ")
	if err != nil || renamed.Name != "Winter Cup" {
		t.Fatalf("rename: %+v err=%v", renamed, err)
	}

	if err := env.service.Delete(ctx, playerPrincipal, id); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := env.service.Delete(ctx, ownerPrincipal, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, exists, _ := env.fixtures.GetByID(ctx, detail.Fixtures[0].ID); exists {
		t.Fatalf("fixtures must be removed with the tournament")
	}
	if err := env.service.Delete(ctx, ownerPrincipal, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
