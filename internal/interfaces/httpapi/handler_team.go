package httpapi

import "net/http"

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRequestSpan(r, "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, item := range teams {
		items = append(items, teamToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeamsGroupedByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRequestSpan(r, "httpapi.Handler.ListTeamsGroupedByLeague")
	defer span.End()

	groups, err := h.teamService.ListGroupedByLeague(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list grouped teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueGroupDTO, 0, len(groups))
	for _, group := range groups {
		dto := leagueGroupDTO{League: group.League, Teams: make([]teamDTO, 0, len(group.Teams))}
		for _, item := range group.Teams {
			dto.Teams = append(dto.Teams, teamToDTO(item))
		}
		items = append(items, dto)
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRequestSpan(r, "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	item, err := h.teamService.GetTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}
