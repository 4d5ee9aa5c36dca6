package httpapi

import "net/http"

// ListDailyHomeRuns returns a bare array so the front end can render it as is.
func (h *Handler) ListDailyHomeRuns(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDailyHomeRuns")
	defer span.End()

	date, err := h.parseDateQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.queryService.ListHomeRuns(ctx, date)
	if err != nil {
		h.logger.ErrorContext(ctx, "list daily home runs failed", "date", date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, homeRunsToDTO(items))
}

func (h *Handler) ListLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaderboard")
	defer span.End()

	items, err := h.queryService.ListLeaderboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, leaderboardToDTO(items))
}

func (h *Handler) ListPitchers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPitchers")
	defer span.End()

	items, err := h.queryService.ListPitchers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list pitchers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, pitchersToDTO(items))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	items, err := h.rosterService.ListPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playersToDTO(items))
}
