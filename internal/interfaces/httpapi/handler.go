package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/logging"
	"github.com/riskibarqy/mlb-daily-stats/internal/usecase"
)

type Handler struct {
	pipelineService *usecase.PipelineService
	queryService    *usecase.QueryService
	rosterService   *usecase.RosterService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	pipelineService *usecase.PipelineService,
	queryService *usecase.QueryService,
	rosterService *usecase.RosterService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		pipelineService: pipelineService,
		queryService:    queryService,
		rosterService:   rosterService,
		logger:          logger.Named("httpapi"),
		validator:       validator.New(),
	}
}

type dateQuery struct {
	Date string `validate:"omitempty,datetime=2006-01-02"`
}

func (h *Handler) parseDateQuery(r *http.Request) (string, error) {
	query := dateQuery{Date: strings.TrimSpace(r.URL.Query().Get("date"))}
	if err := h.validator.Struct(query); err != nil {
		return "", fmt.Errorf("%w: date must be YYYY-MM-DD", usecase.ErrInvalidInput)
	}
	return query.Date, nil
}
