package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/mlb-daily-stats/internal/usecase"
)

// UpdateData runs every pipeline synchronously. A client disconnect does not
// cancel the run; other triggers may be sharing it.
func (h *Handler) UpdateData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateData")
	defer span.End()

	summary, err := h.pipelineService.RunAll(context.WithoutCancel(ctx))
	if err != nil {
		h.logger.ErrorContext(ctx, "manual pipeline run failed", "run_id", summary.RunID, "error", err)
		writeJSON(ctx, w, http.StatusInternalServerError, updateFailureDTO{
			Success: false,
			Error:   err.Error(),
			Results: summary.Results,
		})
		return
	}

	writeJSON(ctx, w, http.StatusOK, updateResponseDTO{
		Success:   true,
		Message:   "Data updated successfully",
		Timestamp: formatTimestamp(time.Now()),
		RunID:     summary.RunID,
		Results:   summary.Results,
	})
}

// UpdateCategory returns a handler that runs a single pipeline.
func (h *Handler) UpdateCategory(category usecase.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCategory")
		defer span.End()

		result, err := h.pipelineService.Run(context.WithoutCancel(ctx), category)
		if err != nil {
			h.logger.ErrorContext(ctx, "manual pipeline run failed", "category", category, "error", err)
			writeJSON(ctx, w, http.StatusInternalServerError, updateFailureDTO{
				Success: false,
				Error:   err.Error(),
			})
			return
		}

		writeJSON(ctx, w, http.StatusOK, updateResponseDTO{
			Success:   true,
			Message:   fmt.Sprintf("%s updated successfully", category),
			Timestamp: formatTimestamp(time.Now()),
			Results:   []usecase.RunResult{result},
		})
	}
}
