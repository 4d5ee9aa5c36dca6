package httpapi

import (
	"net/http"

	"github.com/riskibarqy/mlb-daily-stats/internal/usecase"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsHandler http.Handler) {
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /debug/collections", handler.DebugCollections)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /daily_homeruns", handler.ListDailyHomeRuns)
	mux.HandleFunc("GET /leaderboard", handler.ListLeaderboard)
	mux.HandleFunc("GET /pitchers", handler.ListPitchers)
	mux.HandleFunc("GET /players", handler.ListPlayers)
}

func registerPipelineRoutes(mux *http.ServeMux, handler *Handler, adminKey string) {
	mux.HandleFunc("POST /update-data", handler.UpdateData)

	mux.Handle("GET /admin/update-all", RequireAdminKey(adminKey, http.HandlerFunc(handler.UpdateData)))
	for _, category := range usecase.Categories {
		mux.Handle("GET /admin/update-"+string(category), RequireAdminKey(adminKey, handler.UpdateCategory(category)))
	}
}
