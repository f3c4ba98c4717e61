package account

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account is an externally managed user that can own tournaments or play in them.
type Account struct {
	ID       int64
	Username string
	Role     string
}

// Principal is the authenticated caller of a request.
type Principal struct {
	AccountID int64
	Role      string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanManage reports whether p may edit a tournament owned by ownerID.
func (p Principal) CanManage(ownerID int64) bool {
	return p.IsAdmin() || (p.AccountID > 0 && p.AccountID == ownerID)
}
