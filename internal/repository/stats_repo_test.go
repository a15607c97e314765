package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStatsRepositoryGetNotFound(t *testing.T) {
	repo := NewUserStatsRepository(newTestDB(t))

	_, err := repo.Get(context.Background(), "no-such-user")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserStatsRepositoryRecordAnalysis(t *testing.T) {
	repo := NewUserStatsRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now()

	stats, err := repo.RecordAnalysis(ctx, "user-1", 80, true, now)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalAnalyses)
	assert.Equal(t, 1, stats.HighRiskAnalyses)
	assert.Equal(t, 80, stats.AverageRiskScore)

	stats, err = repo.RecordAnalysis(ctx, "user-1", 40, false, now)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalAnalyses)
	assert.Equal(t, 1, stats.HighRiskAnalyses)
	assert.Equal(t, 60, stats.AverageRiskScore)

	// round((60*2 + 35) / 3) = round(51.67) = 52
	stats, err = repo.RecordAnalysis(ctx, "user-1", 35, false, now)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalAnalyses)
	assert.Equal(t, 52, stats.AverageRiskScore)
}

func TestUserStatsRepositoryRecordConsent(t *testing.T) {
	repo := NewUserStatsRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now()

	// 首次同意时统计行可能还不存在
	require.NoError(t, repo.RecordConsent(ctx, "user-1", now))
	require.NoError(t, repo.RecordConsent(ctx, "user-1", now))

	stats, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.ConsentDecisionsCount)
	assert.Equal(t, 0, stats.TotalAnalyses)
}

func TestUserStatsRepositoryIsolatedPerUser(t *testing.T) {
	repo := NewUserStatsRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now()

	_, err := repo.RecordAnalysis(ctx, "user-1", 90, true, now)
	require.NoError(t, err)
	_, err = repo.RecordAnalysis(ctx, "user-2", 30, false, now)
	require.NoError(t, err)

	stats1, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	stats2, err := repo.Get(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, 90, stats1.AverageRiskScore)
	assert.Equal(t, 30, stats2.AverageRiskScore)
}

func TestWeightedAverage(t *testing.T) {
	tests := []struct {
		oldAvg, oldTotal, newScore, newTotal, want int
	}{
		{0, 0, 70, 1, 70},
		{70, 1, 30, 2, 50},
		{50, 2, 51, 3, 50}, // round(151/3)=round(50.33)
		{50, 3, 52, 4, 51}, // round(202/4)=round(50.5) 四舍五入
		{0, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := weightedAverage(tt.oldAvg, tt.oldTotal, tt.newScore, tt.newTotal); got != tt.want {
			t.Errorf("weightedAverage(%d,%d,%d,%d) = %d, want %d",
				tt.oldAvg, tt.oldTotal, tt.newScore, tt.newTotal, got, tt.want)
		}
	}
}
