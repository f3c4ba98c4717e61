package token

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/riskibarqy/fc-tournament/internal/domain/account"
	"github.com/riskibarqy/fc-tournament/internal/platform/logging"
	"github.com/riskibarqy/fc-tournament/internal/usecase"
)

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier checks HS256 bearer tokens issued by the account service. The
// subject claim carries the numeric account id.
type Verifier struct {
	secret []byte
	issuer string
	logger *logging.Logger
	now    func() time.Time
}

func NewVerifier(secret, issuer string, logger *logging.Logger) *Verifier {
	if logger == nil {
		logger = logging.Default()
	}

	return &Verifier{
		secret: []byte(secret),
		issuer: strings.TrimSpace(issuer),
		logger: logger,
		now:    time.Now,
	}
}

func (v *Verifier) VerifyAccessToken(ctx context.Context, raw string) (account.Principal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return account.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.now),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		options = append(options, jwt.WithIssuer(v.issuer))
	}

	parsed := &claims{}
	if _, err := jwt.ParseWithClaims(raw, parsed, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, options...); err != nil {
		v.logger.DebugContext(ctx, "reject access token", "error", err)
		return account.Principal{}, fmt.Errorf("%w: invalid token: %w", usecase.ErrUnauthorized, err)
	}

	accountID, err := strconv.ParseInt(parsed.Subject, 10, 64)
	if err != nil || accountID <= 0 {
		return account.Principal{}, fmt.Errorf("%w: invalid subject %q", usecase.ErrUnauthorized, parsed.Subject)
	}

	role := strings.ToLower(strings.TrimSpace(parsed.Role))
	if role != account.RoleAdmin {
		role = account.RoleUser
	}

	return account.Principal{AccountID: accountID, Role: role}, nil
}

// Issue signs a token for principal. It backs local tooling and tests; in
// production tokens come from the account service.
func (v *Verifier) Issue(principal account.Principal, ttl time.Duration) (string, error) {
	now := v.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: principal.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(principal.AccountID, 10),
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}
