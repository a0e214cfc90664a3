// Package gymstats composes the training analytics and the body metrics tracker
// behind one facade, taking raw window bounds as they arrive from the transports.
package gymstats

import (
	"context"

	"github.com/2beens/gymstats/internal/gymstats/bodymetrics"
	"github.com/2beens/gymstats/internal/gymstats/repo"
	"github.com/2beens/gymstats/internal/gymstats/stats"
	"github.com/2beens/gymstats/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=gymstats_test

type statsAnalyzer interface {
	Summary(ctx context.Context, ownerID string, w stats.Window) (*stats.Summary, error)
	MuscleDistribution(ctx context.Context, ownerID string, w stats.Window) ([]stats.MuscleShare, error)
	ExerciseProgress(ctx context.Context, ownerID, exerciseID string, w stats.Window) ([]stats.ProgressPoint, error)
}

type metricsTracker interface {
	AddMetric(ctx context.Context, ownerID string, in bodymetrics.Input) (*repo.BodyMetric, error)
	Metrics(ctx context.Context, ownerID string, w stats.Window) ([]repo.BodyMetric, error)
}

// Service expects an already authorized owner id on every call.
type Service struct {
	analyzer statsAnalyzer
	tracker  metricsTracker
}

func NewService(analyzer statsAnalyzer, tracker metricsTracker) *Service {
	return &Service{
		analyzer: analyzer,
		tracker:  tracker,
	}
}

func (s *Service) Summary(ctx context.Context, ownerID, startDate, endDate string) (_ *stats.Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w, err := stats.ParseWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	return s.analyzer.Summary(ctx, ownerID, w)
}

func (s *Service) MuscleDistribution(ctx context.Context, ownerID, startDate, endDate string) (_ []stats.MuscleShare, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.muscle_distribution")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w, err := stats.ParseWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	return s.analyzer.MuscleDistribution(ctx, ownerID, w)
}

func (s *Service) ExerciseProgress(
	ctx context.Context,
	ownerID, exerciseID, startDate, endDate string,
) (_ []stats.ProgressPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.exercise_progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	w, err := stats.ParseWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	return s.analyzer.ExerciseProgress(ctx, ownerID, exerciseID, w)
}

func (s *Service) AddMetric(ctx context.Context, ownerID string, in bodymetrics.Input) (_ *repo.BodyMetric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.add_metric")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.tracker.AddMetric(ctx, ownerID, in)
}

func (s *Service) Metrics(ctx context.Context, ownerID, startDate, endDate string) (_ []repo.BodyMetric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.metrics")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w, err := stats.ParseWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	return s.tracker.Metrics(ctx, ownerID, w)
}
