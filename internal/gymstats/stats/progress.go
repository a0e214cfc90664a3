package stats

import (
	"context"
	"sort"
	"time"

	"github.com/2beens/gymstats/internal/telemetry/tracing"
	"github.com/2beens/gymstats/pkg"

	"go.opentelemetry.io/otel/attribute"
)

type ProgressPoint struct {
	Date      time.Time `json:"date"`
	MaxWeight float64   `json:"maxWeight"`
	Volume    float64   `json:"volume"`
	OneRepMax float64   `json:"oneRepMax"`
}

// EstimateOneRepMax is the Epley estimate: weight * (1 + reps/30).
func EstimateOneRepMax(weight float64, reps int) float64 {
	return weight * (1 + float64(reps)/30)
}

// ExerciseProgress returns one point per distinct session start date, oldest first,
// built only from the sets of exerciseID.
func (a *Analyzer) ExerciseProgress(
	ctx context.Context,
	ownerID, exerciseID string,
	w Window,
) (_ []ProgressPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.gymstats.exercise_progress")
	started := time.Now()
	defer func() {
		a.observe(opProgress, started, err)
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("owner_id", ownerID),
		attribute.String("exercise_id", exerciseID),
		attribute.String("window", w.String()),
	)

	sessions, err := a.closedSessions(ctx, ownerID, w, exerciseID)
	if err != nil {
		return nil, err
	}

	// keyed by UnixNano so equal instants in different locations merge
	byDate := make(map[int64]*ProgressPoint)
	for _, s := range sessions {
		for _, ex := range s.Exercises {
			if ex.ExerciseID != exerciseID {
				continue
			}
			for _, set := range ex.Sets {
				key := s.StartDate.UnixNano()
				point, ok := byDate[key]
				if !ok {
					point = &ProgressPoint{Date: s.StartDate.UTC()}
					byDate[key] = point
				}
				point.MaxWeight = max(point.MaxWeight, set.Weight)
				point.Volume += set.Volume()
				point.OneRepMax = max(point.OneRepMax, EstimateOneRepMax(set.Weight, set.Reps))
			}
		}
	}

	points := make([]ProgressPoint, 0, len(byDate))
	for _, point := range byDate {
		point.OneRepMax = pkg.Round2(point.OneRepMax)
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	span.SetAttributes(attribute.Int("points", len(points)))

	return points, nil
}
