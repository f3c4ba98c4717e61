package tournament

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/fc-tournament/internal/domain/account"
)

const (
	DefaultMinRosterSize = 2
	DefaultMaxRosterSize = 10
)

type RosterMode string

const (
	// RosterModeAccounts binds each entry to an existing account and takes
	// the display name from its username.
	RosterModeAccounts RosterMode = "accounts"
	// RosterModeNames accepts free-text display names.
	RosterModeNames RosterMode = "names"
)

type RosterRules struct {
	MinSize             int
	MaxSize             int
	AllowDuplicateTeams bool
	Mode                RosterMode
}

func DefaultRosterRules() RosterRules {
	return RosterRules{
		MinSize:             DefaultMinRosterSize,
		MaxSize:             DefaultMaxRosterSize,
		AllowDuplicateTeams: true,
		Mode:                RosterModeAccounts,
	}
}

// RawEntry is a roster line as submitted; AccountRef may be a number or a
// numeric string.
type RawEntry struct {
	AccountRef string
	Name       string
	TeamID     string
}

type RosterEntry struct {
	AccountID int64
	Name      string
	TeamID    string
}

// TeamLookup answers catalog membership.
type TeamLookup interface {
	HasTeam(teamID string) bool
}

// AccountSet maps resolved account ids to their accounts.
type AccountSet map[int64]account.Account

// NormalizeEntries trims fields and drops entries that cannot form a roster
// line: a blank team, or (in accounts mode) a missing or non-positive account
// reference, or (in names mode) a blank name. Order is kept.
func NormalizeEntries(raw []RawEntry, mode RosterMode) []RosterEntry {
	out := make([]RosterEntry, 0, len(raw))
	for _, item := range raw {
		teamID := strings.TrimSpace(item.TeamID)
		if teamID == "" {
			continue
		}
		entry := RosterEntry{TeamID: teamID, Name: strings.TrimSpace(item.Name)}

		switch mode {
		case RosterModeNames:
			if entry.Name == "" {
				continue
			}
		default:
			accountID, err := strconv.ParseInt(strings.TrimSpace(item.AccountRef), 10, 64)
			if err != nil || accountID <= 0 {
				continue
			}
			entry.AccountID = accountID
		}
		out = append(out, entry)
	}
	return out
}

// AccountIDs lists the distinct account ids referenced by entries.
func AccountIDs(entries []RosterEntry) []int64 {
	seen := make(map[int64]struct{}, len(entries))
	out := make([]int64, 0, len(entries))
	for _, item := range entries {
		if item.AccountID <= 0 {
			continue
		}
		if _, ok := seen[item.AccountID]; ok {
			continue
		}
		seen[item.AccountID] = struct{}{}
		out = append(out, item.AccountID)
	}
	return out
}

// ValidateRoster checks normalized entries in a fixed order: size, unknown
// team, duplicate team, duplicate account, unknown account. The first failure
// wins. In accounts mode the returned entries take their names from the
// resolved usernames.
func ValidateRoster(entries []RosterEntry, teams TeamLookup, accounts AccountSet, rules RosterRules) ([]RosterEntry, error) {
	if rules.MinSize <= 0 {
		rules.MinSize = DefaultMinRosterSize
	}
	if rules.MaxSize <= 0 {
		rules.MaxSize = DefaultMaxRosterSize
	}

	if len(entries) < rules.MinSize || len(entries) > rules.MaxSize {
		return nil, errors.Wrapf(ErrInvalidSize, "got %d competitors, allowed %d..%d", len(entries), rules.MinSize, rules.MaxSize)
	}

	for _, item := range entries {
		if teams == nil || !teams.HasTeam(item.TeamID) {
			return nil, errors.Wrapf(ErrUnknownTeam, "team %q", item.TeamID)
		}
	}

	if !rules.AllowDuplicateTeams {
		seenTeams := make(map[string]struct{}, len(entries))
		for _, item := range entries {
			if _, dup := seenTeams[item.TeamID]; dup {
				return nil, errors.Wrapf(ErrDuplicateTeam, "team %q", item.TeamID)
			}
			seenTeams[item.TeamID] = struct{}{}
		}
	}

	if rules.Mode == RosterModeNames {
		return append([]RosterEntry(nil), entries...), nil
	}

	seenAccounts := make(map[int64]struct{}, len(entries))
	for _, item := range entries {
		if _, dup := seenAccounts[item.AccountID]; dup {
			return nil, errors.Wrapf(ErrDuplicateOwner, "account %d", item.AccountID)
		}
		seenAccounts[item.AccountID] = struct{}{}
	}

	out := make([]RosterEntry, 0, len(entries))
	for _, item := range entries {
		resolved, ok := accounts[item.AccountID]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownOwner, "account %d", item.AccountID)
		}
		item.Name = resolved.Username
		out = append(out, item)
	}

	return out, nil
}
