package bodymetrics

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymstats/internal/gymstats/repo"
	"github.com/2beens/gymstats/internal/gymstats/stats"
	"github.com/2beens/gymstats/internal/telemetry/metrics"
	"github.com/2beens/gymstats/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=bodymetrics_test

type metricsRepo interface {
	AddMetric(ctx context.Context, m repo.BodyMetric) (*repo.BodyMetric, error)
	ListMetrics(ctx context.Context, q repo.MetricQuery) ([]repo.BodyMetric, error)
}

// Input holds the optional measurements of one sample.
type Input struct {
	Weight  *float64 `json:"weight"`
	Height  *float64 `json:"height"`
	BodyFat *float64 `json:"bodyFat"`
}

// Tracker records body metric samples and reads them back in time order.
type Tracker struct {
	repo    metricsRepo
	metrics *metrics.Manager
	now     func() time.Time
}

type NewTrackerParams struct {
	Repo    metricsRepo
	Metrics *metrics.Manager
	Now     func() time.Time
}

func NewTracker(params NewTrackerParams) *Tracker {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		repo:    params.Repo,
		metrics: params.Metrics,
		now:     now,
	}
}

// AddMetric stores a sample stamped with the tracker clock. All fields may be nil.
func (t *Tracker) AddMetric(ctx context.Context, ownerID string, in Input) (_ *repo.BodyMetric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bodymetrics.gymstats.add")
	started := time.Now()
	defer func() {
		t.metrics.ObserveAnalyticsQuery("add_metric", time.Since(started).Seconds(), err)
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner_id", ownerID))

	metric, err := t.repo.AddMetric(ctx, repo.BodyMetric{
		OwnerID:    ownerID,
		Weight:     in.Weight,
		Height:     in.Height,
		BodyFat:    in.BodyFat,
		MeasuredAt: t.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: add metric: %w", stats.ErrUpstreamQuery, err)
	}

	if t.metrics != nil {
		t.metrics.CounterBodyMetricsRecorded.Inc()
	}
	log.Tracef("body metric %s recorded for %s", metric.ID, ownerID)

	return metric, nil
}

// Metrics returns the owner's samples measured inside w, oldest first.
func (t *Tracker) Metrics(ctx context.Context, ownerID string, w stats.Window) (_ []repo.BodyMetric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bodymetrics.gymstats.list")
	started := time.Now()
	defer func() {
		t.metrics.ObserveAnalyticsQuery("list_metrics", time.Since(started).Seconds(), err)
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("owner_id", ownerID),
		attribute.String("window", w.String()),
	)

	samples, err := t.repo.ListMetrics(ctx, repo.MetricQuery{
		OwnerID: ownerID,
		From:    w.From,
		To:      w.To,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list metrics: %w", stats.ErrUpstreamQuery, err)
	}
	if samples == nil {
		samples = []repo.BodyMetric{}
	}

	return samples, nil
}
