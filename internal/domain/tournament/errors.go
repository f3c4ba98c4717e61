package tournament

import "github.com/cockroachdb/errors"

var (
	ErrInvalidSize         = errors.New("roster size out of range")
	ErrUnknownTeam         = errors.New("team is not in the catalog")
	ErrDuplicateTeam       = errors.New("team picked by more than one competitor")
	ErrDuplicateOwner      = errors.New("account listed more than once")
	ErrUnknownOwner        = errors.New("account does not exist")
	ErrTournamentNotFound  = errors.New("tournament not found")
	ErrTournamentCompleted = errors.New("tournament is completed")
)
