package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymstats/internal/gymstats/repo"
	"github.com/2beens/gymstats/internal/telemetry/metrics"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=stats_test

type sessionsRepo interface {
	ListSessions(ctx context.Context, q repo.SessionQuery) ([]repo.TrainingSession, error)
	CountSessions(ctx context.Context, q repo.SessionQuery) (int, error)
}

type exercisesRepo interface {
	GetExercises(ctx context.Context, ids []string) (map[string]repo.Exercise, error)
}

const (
	opSummary      = "summary"
	opDistribution = "muscle_distribution"
	opProgress     = "progress"
)

// Analyzer computes training statistics from closed sessions.
// Every call recomputes from the stores; nothing is cached.
type Analyzer struct {
	sessions  sessionsRepo
	exercises exercisesRepo
	metrics   *metrics.Manager
	now       func() time.Time
}

type NewAnalyzerParams struct {
	Sessions  sessionsRepo
	Exercises exercisesRepo
	// Metrics is optional.
	Metrics *metrics.Manager
	// Now defaults to time.Now.
	Now func() time.Time
}

func NewAnalyzer(params NewAnalyzerParams) *Analyzer {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Analyzer{
		sessions:  params.Sessions,
		exercises: params.Exercises,
		metrics:   params.Metrics,
		now:       now,
	}
}

func (a *Analyzer) closedSessions(
	ctx context.Context,
	ownerID string,
	w Window,
	exerciseID string,
) ([]repo.TrainingSession, error) {
	sessions, err := a.sessions.ListSessions(ctx, repo.SessionQuery{
		OwnerID:    ownerID,
		Status:     repo.SessionStatusClosed,
		From:       w.From,
		To:         w.To,
		ExerciseID: exerciseID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list sessions: %w", ErrUpstreamQuery, err)
	}
	return sessions, nil
}

func (a *Analyzer) observe(op string, started time.Time, err error) {
	a.metrics.ObserveAnalyticsQuery(op, time.Since(started).Seconds(), err)
}
