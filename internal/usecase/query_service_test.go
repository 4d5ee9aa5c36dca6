package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/mlb-daily-stats/internal/domain/homerun"
	"github.com/riskibarqy/mlb-daily-stats/internal/domain/leaderboard"
	homerunmock "github.com/riskibarqy/mlb-daily-stats/internal/mocks/domain/homerun"
	leaderboardmock "github.com/riskibarqy/mlb-daily-stats/internal/mocks/domain/leaderboard"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/logging"
	"github.com/riskibarqy/mlb-daily-stats/internal/platform/reportdate"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubStoreInspector struct {
	pingErr error
	counts  map[string]int
}

func (s stubStoreInspector) Ping(context.Context) error { return s.pingErr }

func (s stubStoreInspector) CountByCollection(context.Context) (map[string]int, error) {
	if s.pingErr != nil {
		return nil, s.pingErr
	}
	return s.counts, nil
}

func TestQueryService_ListHomeRuns_DefaultsDateAndSortsByDistance(t *testing.T) {
	t.Parallel()

	hrRepo := homerunmock.NewRepository(t)
	hrRepo.
		On("ListByDate", mock.Anything, testDate).
		Return([]homerun.Event{
			{PlayerID: 1, TotalDistance: intPtr(401)},
			{PlayerID: 2},
			{PlayerID: 3, TotalDistance: intPtr(455)},
		}, nil).
		Once()

	svc := NewQueryService(hrRepo, nil, nil, stubStoreInspector{}, reportdate.Pinned(testDate), logging.NewNop())
	got, err := svc.ListHomeRuns(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, []int64{3, 1, 2}, []int64{got[0].PlayerID, got[1].PlayerID, got[2].PlayerID})
}

func TestQueryService_ListHomeRuns_RejectsMalformedDate(t *testing.T) {
	t.Parallel()

	svc := NewQueryService(homerunmock.NewRepository(t), nil, nil, stubStoreInspector{}, reportdate.Pinned(testDate), logging.NewNop())
	_, err := svc.ListHomeRuns(context.Background(), "05/23/2025")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestQueryService_ListLeaderboard_SortsByHomeRunsThenRank(t *testing.T) {
	t.Parallel()

	lbRepo := leaderboardmock.NewRepository(t)
	lbRepo.
		On("ListByDate", mock.Anything, testDate).
		Return([]leaderboard.Entry{
			{PlayerID: 3, HomeRuns: 38, Rank: leaderboard.Rank{Position: 3}},
			{PlayerID: 2, HomeRuns: 40, Rank: leaderboard.Rank{Position: 1, Tied: true}},
			{PlayerID: 1, HomeRuns: 40, Rank: leaderboard.Rank{Position: 1}},
		}, nil).
		Once()

	svc := NewQueryService(nil, lbRepo, nil, stubStoreInspector{}, reportdate.Pinned(testDate), logging.NewNop())
	got, err := svc.ListLeaderboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int64{2, 1, 3}, []int64{got[0].PlayerID, got[1].PlayerID, got[2].PlayerID})
}

func TestQueryService_Health(t *testing.T) {
	t.Parallel()

	healthy := NewQueryService(nil, nil, nil, stubStoreInspector{}, reportdate.Pinned(testDate), logging.NewNop()).Health(context.Background())
	require.True(t, healthy.Healthy)
	require.Equal(t, "connected", healthy.Database)

	var logs bytes.Buffer
	down := NewQueryService(nil, nil, nil, stubStoreInspector{pingErr: errors.New("refused")}, reportdate.Pinned(testDate), logging.NewJSONTo(&logs, logging.LevelWarn)).Health(context.Background())
	require.False(t, down.Healthy)
	require.Equal(t, "disconnected", down.Database)
	require.Contains(t, logs.String(), `"level":"WARN"`)
	require.Contains(t, logs.String(), "database ping failed")
	require.Contains(t, logs.String(), "refused")
}

func TestQueryService_CollectionCounts_WrapsStoreFailure(t *testing.T) {
	t.Parallel()

	svc := NewQueryService(nil, nil, nil, stubStoreInspector{pingErr: errors.New("refused")}, reportdate.Pinned(testDate), logging.NewNop())
	_, err := svc.CollectionCounts(context.Background())
	require.ErrorIs(t, err, ErrDependencyUnavailable)
}
