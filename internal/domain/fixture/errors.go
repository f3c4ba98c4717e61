package fixture

import "github.com/cockroachdb/errors"

var (
	ErrFixtureNotFound = errors.New("fixture not found")
	ErrInvalidScore    = errors.New("goals must be non-negative integers")
	ErrInvalidPairing  = errors.New("invalid competitor list for fixture generation")
)
