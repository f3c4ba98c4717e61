package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/grouped", handler.ListTeamsGroupedByLeague)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedDashboardRoutes(mux, handler, verifier)
	registerAuthorizedTournamentRoutes(mux, handler, verifier)
	registerAuthorizedResultRoutes(mux, handler, verifier)
}

func registerAuthorizedDashboardRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/dashboard", RequireAuth(verifier, http.HandlerFunc(handler.GetDashboard)))
}

func registerAuthorizedTournamentRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/tournaments", RequireAuth(verifier, http.HandlerFunc(handler.CreateTournament)))
	mux.Handle("GET /v1/tournaments/{tournamentID}", RequireAuth(verifier, http.HandlerFunc(handler.GetTournament)))
	mux.Handle("GET /v1/tournaments/{tournamentID}/standings", RequireAuth(verifier, http.HandlerFunc(handler.GetTournamentStandings)))
	mux.Handle("PUT /v1/tournaments/{tournamentID}", RequireAuth(verifier, http.HandlerFunc(handler.RenameTournament)))
	mux.Handle("DELETE /v1/tournaments/{tournamentID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteTournament)))
	if handler.liveEnabled() {
		mux.Handle("GET /v1/tournaments/{tournamentID}/live", RequireAuth(verifier, http.HandlerFunc(handler.StreamTournament)))
	}
}

func registerAuthorizedResultRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/fixtures/{fixtureID}/result", RequireAuth(verifier, http.HandlerFunc(handler.RecordResult)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/internal/reconcile", RequireAuth(verifier, RequireAdmin(http.HandlerFunc(handler.RunReconcile))))
}
