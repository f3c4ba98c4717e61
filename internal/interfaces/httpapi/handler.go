package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fc-tournament/internal/domain/account"
	"github.com/riskibarqy/fc-tournament/internal/interfaces/ws"
	"github.com/riskibarqy/fc-tournament/internal/platform/logging"
	"github.com/riskibarqy/fc-tournament/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	teamService       *usecase.TeamService
	tournamentService *usecase.TournamentService
	resultService     *usecase.ResultService
	dashboardService  *usecase.DashboardService
	reconcileService  *usecase.ReconcileService
	liveHub           *ws.Hub
	logger            *logging.Logger
	validator         *validator.Validate
}

// NewHandler wires the HTTP handlers. liveHub may be nil, which disables the
// live tournament stream.
func NewHandler(
	teamService *usecase.TeamService,
	tournamentService *usecase.TournamentService,
	resultService *usecase.ResultService,
	dashboardService *usecase.DashboardService,
	reconcileService *usecase.ReconcileService,
	liveHub *ws.Hub,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:       teamService,
		tournamentService: tournamentService,
		resultService:     resultService,
		dashboardService:  dashboardService,
		reconcileService:  reconcileService,
		liveHub:           liveHub,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) liveEnabled() bool {
	return h.liveHub != nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeJSON rejects unknown fields and bodies over maxRequestBodyBytes.
func decodeJSON(r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	decoder.UseNumber()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func requirePrincipal(ctx context.Context) (account.Principal, error) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return account.Principal{}, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}
	return principal, nil
}
