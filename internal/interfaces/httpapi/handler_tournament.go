package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fc-tournament/internal/interfaces/ws"
)

func (h *Handler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRequestSpan(r, "httpapi.Handler.CreateTournament")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createTournamentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.tournamentService.Create(ctx, principal, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create tournament failed", "account_id", principal.AccountID, "players", len(req.Players), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, tournamentDetailToDTO(ctx, detail))
}

func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRequestSpan(r, "httpapi.Handler.GetTournament")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	tournamentID := r.PathValue("tournamentID")
	detail, err := h.tournamentService.Get(ctx, principal, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get tournament failed", "tournament_id", tournamentID, "account_id", principal.AccountID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentDetailToDTO(ctx, detail))
}

func (h *Handler) GetTournamentStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRequestSpan(r, "httpapi.Handler.GetTournamentStandings")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	tournamentID := r.PathValue("tournamentID")
	rows, err := h.tournamentService.Standings(ctx, principal, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "tournament_id", tournamentID, "account_id", principal.AccountID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(rows))
}

func (h *Handler) RenameTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRequestSpan(r, "httpapi.Handler.RenameTournament")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req renameTournamentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	tournamentID := r.PathValue("tournamentID")
	item, err := h.tournamentService.Rename(ctx, principal, tournamentID, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "rename tournament failed", "tournament_id", tournamentID, "account_id", principal.AccountID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(item))
}

func (h *Handler) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRequestSpan(r, "httpapi.Handler.DeleteTournament")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	tournamentID := r.PathValue("tournamentID")
	if err := h.tournamentService.Delete(ctx, principal, tournamentID); err != nil {
		h.logger.WarnContext(ctx, "delete tournament failed", "tournament_id", tournamentID, "account_id", principal.AccountID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": tournamentID, "status": "deleted"})
}

// StreamTournament upgrades to a websocket that first receives the current
// detail, then result and completion events for the tournament.
func (h *Handler) StreamTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRequestSpan(r, "httpapi.Handler.StreamTournament")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	tournamentID := r.PathValue("tournamentID")
	detail, err := h.tournamentService.Get(ctx, principal, tournamentID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	snapshot := &ws.Message{
		Type:         ws.MessageTypeSnapshot,
		TournamentID: detail.Tournament.ID,
		Payload:      tournamentDetailToDTO(ctx, detail),
	}
	if err := h.liveHub.Serve(w, r.WithContext(ctx), detail.Tournament.ID, snapshot); err != nil {
		h.logger.WarnContext(ctx, "upgrade live stream failed", "tournament_id", tournamentID, "error", err)
	}
}
