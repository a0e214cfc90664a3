package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymstats/internal/gymstats/repo"
	"github.com/2beens/gymstats/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type Summary struct {
	TotalSessions     int     `json:"totalSessions"`
	TotalVolume       float64 `json:"totalVolume"`
	TotalReps         int     `json:"totalReps"`
	SessionsThisMonth int     `json:"sessionsThisMonth"`
}

// Summary totals the owner's closed sessions inside w. SessionsThisMonth ignores w and counts
// closed sessions started since the first day of the current UTC month.
func (a *Analyzer) Summary(ctx context.Context, ownerID string, w Window) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.gymstats.summary")
	started := time.Now()
	defer func() {
		a.observe(opSummary, started, err)
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("owner_id", ownerID),
		attribute.String("window", w.String()),
	)

	sessions, err := a.closedSessions(ctx, ownerID, w, "")
	if err != nil {
		return nil, err
	}

	summary := &Summary{TotalSessions: len(sessions)}
	for _, s := range sessions {
		for _, ex := range s.Exercises {
			for _, set := range ex.Sets {
				summary.TotalVolume += set.Volume()
				summary.TotalReps += set.Reps
			}
		}
	}

	now := a.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	summary.SessionsThisMonth, err = a.sessions.CountSessions(ctx, repo.SessionQuery{
		OwnerID: ownerID,
		Status:  repo.SessionStatusClosed,
		From:    &monthStart,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: count sessions: %w", ErrUpstreamQuery, err)
	}

	return summary, nil
}
