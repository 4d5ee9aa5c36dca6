package httpapi

import (
	"net/http"
	"time"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Health")
	defer span.End()

	health := h.queryService.Health(ctx)
	status, code := "healthy", http.StatusOK
	if !health.Healthy {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	writeJSON(ctx, w, code, healthDTO{
		Status:    status,
		Database:  health.Database,
		Timestamp: formatTimestamp(health.CheckedAt),
	})
}

func (h *Handler) DebugCollections(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DebugCollections")
	defer span.End()

	counts, err := h.queryService.CollectionCounts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "count collections failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, collectionsDTO{
		Collections: counts,
		Timestamp:   formatTimestamp(time.Now()),
	})
}
