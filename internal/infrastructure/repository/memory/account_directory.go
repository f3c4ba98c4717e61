package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fc-tournament/internal/domain/account"
)

type AccountDirectory struct {
	mu       sync.RWMutex
	accounts map[int64]account.Account
}

func NewAccountDirectory(accounts []account.Account) *AccountDirectory {
	byID := make(map[int64]account.Account, len(accounts))
	for _, item := range accounts {
		byID[item.ID] = item
	}
	return &AccountDirectory{accounts: byID}
}

func (d *AccountDirectory) ResolveExisting(_ context.Context, ids []int64) (map[int64]account.Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[int64]account.Account, len(ids))
	for _, accountID := range ids {
		if item, ok := d.accounts[accountID]; ok {
			out[accountID] = item
		}
	}
	return out, nil
}
