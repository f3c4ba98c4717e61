package httpapi

import "net/http"

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRequestSpan(r, "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRequestSpan(r, "httpapi.Handler.GetDashboard")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	dashboard, err := h.dashboardService.Get(ctx, principal)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "account_id", principal.AccountID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(dashboard))
}

func (h *Handler) RunReconcile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRequestSpan(r, "httpapi.Handler.RunReconcile")
	defer span.End()

	result, err := h.reconcileService.Run(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "reconcile tournaments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
