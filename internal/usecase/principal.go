package usecase

import (
	"fmt"

	"github.com/riskibarqy/fc-tournament/internal/domain/account"
	"github.com/riskibarqy/fc-tournament/internal/domain/tournament"
)

func requirePrincipal(principal account.Principal) error {
	if principal.AccountID <= 0 {
		return fmt.Errorf("%w: authenticated account is required", ErrUnauthorized)
	}
	return nil
}

// canView: admins see everything, others only what they own or play in.
func canView(principal account.Principal, t tournament.Tournament, competitors []tournament.Competitor) bool {
	if principal.CanManage(t.OwnerID) {
		return true
	}
	return tournament.HasParticipant(competitors, principal.AccountID)
}

func requireManage(principal account.Principal, t tournament.Tournament) error {
	if !principal.CanManage(t.OwnerID) {
		return fmt.Errorf("%w: account=%d cannot manage tournament=%s", ErrForbidden, principal.AccountID, t.ID)
	}
	return nil
}
