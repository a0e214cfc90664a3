package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

const exerciseColumns = `e.id, e.name, e.description, e.muscle_group, COALESCE(e.created_by, ''), e.is_default`

func scanExercise(row pgx.Row) (Exercise, error) {
	var (
		e           Exercise
		muscleGroup string
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Description, &muscleGroup, &e.CreatedBy, &e.IsDefault); err != nil {
		return Exercise{}, err
	}
	e.MuscleGroup = MuscleGroup(muscleGroup)
	return e, nil
}

// GetExercises resolves the given ids in one round trip. Unknown ids are absent from the result.
func (r *Repo) GetExercises(ctx context.Context, ids []string) (_ map[string]Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.exercises.get_many")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("ids", len(ids)))

	resolved := make(map[string]Exercise, len(ids))
	if len(ids) == 0 {
		return resolved, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise e WHERE e.id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		resolved[e.ID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercises: %w", err)
	}

	return resolved, nil
}

func (r *Repo) GetExercise(ctx context.Context, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", id))

	e, err := scanExercise(r.db.QueryRow(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise e WHERE e.id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}

	return &e, nil
}

func (r *Repo) AddExercise(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if exercise.ID == "" {
		exercise.ID = r.newID()
	}

	var createdBy *string
	if exercise.CreatedBy != "" {
		createdBy = &exercise.CreatedBy
	}

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO exercise (id, name, description, muscle_group, created_by, is_default)
			VALUES ($1, $2, $3, $4, $5, $6)`,
		exercise.ID, exercise.Name, exercise.Description, string(exercise.MuscleGroup), createdBy, exercise.IsDefault,
	); err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	return &exercise, nil
}
