package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fc-tournament/internal/usecase"
)

func (h *Handler) RecordResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRequestSpan(r, "httpapi.Handler.RecordResult")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req recordResultRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	fixtureID := r.PathValue("fixtureID")
	out, err := h.resultService.RecordResult(ctx, principal, usecase.RecordResultInput{
		FixtureID: fixtureID,
		HomeGoals: req.HomeGoals.String(),
		AwayGoals: req.AwayGoals.String(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record result failed", "fixture_id", fixtureID, "account_id", principal.AccountID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recordResultDTO{
		Fixture:           fixtureToDTO(out.Fixture),
		Tournament:        tournamentToDTO(out.Tournament),
		CompletionPending: out.CompletionPending,
	})
}
