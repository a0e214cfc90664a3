package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/gymstats/internal/gymstats/repo"
	"github.com/2beens/gymstats/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type MuscleShare struct {
	MuscleGroup repo.MuscleGroup `json:"muscleGroup"`
	SetCount    int              `json:"setCount"`
	Percentage  float64          `json:"percentage"`
}

// MuscleDistribution splits the owner's in-window sets by muscle group, largest share first.
// Sets of exercises that no longer resolve are left out of both the groups and the total.
func (a *Analyzer) MuscleDistribution(ctx context.Context, ownerID string, w Window) (_ []MuscleShare, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.gymstats.muscle_distribution")
	started := time.Now()
	defer func() {
		a.observe(opDistribution, started, err)
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

	setsPerExercise := make(map[string]int)
	var exerciseIDs []string
	for _, s := range sessions {
		for _, ex := range s.Exercises {
			if len(ex.Sets) == 0 {
				continue
			}
			if _, seen := setsPerExercise[ex.ExerciseID]; !seen {
				exerciseIDs = append(exerciseIDs, ex.ExerciseID)
			}
			setsPerExercise[ex.ExerciseID] += len(ex.Sets)
		}
	}

	shares := []MuscleShare{}
	if len(exerciseIDs) == 0 {
		return shares, nil
	}

	exercises, err := a.exercises.GetExercises(ctx, exerciseIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve exercises: %w", ErrUpstreamQuery, err)
	}

	setsPerGroup := make(map[repo.MuscleGroup]int)
	total := 0
	for _, id := range exerciseIDs {
		exercise, ok := exercises[id]
		if !ok {
			log.WithFields(log.Fields{
				"owner_id":    ownerID,
				"exercise_id": id,
				"sets":        setsPerExercise[id],
			}).Warn("session references unknown exercise, left out of muscle distribution")
			continue
		}
		setsPerGroup[exercise.MuscleGroup] += setsPerExercise[id]
		total += setsPerExercise[id]
	}
	span.SetAttributes(attribute.Int("total_sets", total))

	if total == 0 {
		return shares, nil
	}

	for group, count := range setsPerGroup {
		shares = append(shares, MuscleShare{
			MuscleGroup: group,
			SetCount:    count,
			Percentage:  100 * float64(count) / float64(total),
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].SetCount != shares[j].SetCount {
			return shares[i].SetCount > shares[j].SetCount
		}
		return shares[i].MuscleGroup < shares[j].MuscleGroup
	})

	return shares, nil
}
