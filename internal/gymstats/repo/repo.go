package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/gymstats/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// pgxDB is the part of *pgxpool.Pool the repo uses.
type pgxDB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repo is the postgres store for training sessions, exercises and body metrics.
type Repo struct {
	db    pgxDB
	newID func() string
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return newRepo(db)
}

func newRepo(db pgxDB) *Repo {
	return &Repo{
		db:    db,
		newID: uuid.NewString,
	}
}

func sessionConditions(q SessionQuery) (string, []any) {
	conds := []string{"s.owner_id = $1"}
	args := []any{q.OwnerID}

	if q.Status != "" {
		args = append(args, string(q.Status))
		conds = append(conds, fmt.Sprintf("s.status = $%d", len(args)))
	}
	if q.From != nil {
		args = append(args, *q.From)
		conds = append(conds, fmt.Sprintf("s.start_date >= $%d", len(args)))
	}
	if q.To != nil {
		args = append(args, *q.To)
		conds = append(conds, fmt.Sprintf("s.start_date <= $%d", len(args)))
	}
	if q.ExerciseID != "" {
		args = append(args, q.ExerciseID)
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM session_exercise se WHERE se.session_id = s.id AND se.exercise_id = $%d)",
			len(args),
		))
	}

	return strings.Join(conds, " AND "), args
}

func setQueryAttributes(q SessionQuery) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("owner_id", q.OwnerID),
		attribute.String("status", string(q.Status)),
	}
	if q.From != nil {
		attrs = append(attrs, attribute.String("from", q.From.String()))
	}
	if q.To != nil {
		attrs = append(attrs, attribute.String("to", q.To.String()))
	}
	if q.ExerciseID != "" {
		attrs = append(attrs, attribute.String("exercise_id", q.ExerciseID))
	}
	return attrs
}

// ListSessions returns matching sessions ordered by start date, with their exercises and sets.
// With q.ExerciseID set, only entries of that exercise are loaded for each session.
func (r *Repo) ListSessions(ctx context.Context, q SessionQuery) (_ []TrainingSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.sessions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(setQueryAttributes(q)...)

	where, args := sessionConditions(q)
	rows, err := r.db.Query(
		ctx,
		`SELECT s.id, s.owner_id, s.name, COALESCE(s.template_id, ''), s.start_date, s.end_date, s.status, s.notes
			FROM training_session s
			WHERE `+where+`
			ORDER BY s.start_date, s.id`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	sessions := []TrainingSession{}
	sessionIdx := make(map[string]int)
	for rows.Next() {
		var s TrainingSession
		var status string
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Name, &s.TemplateID, &s.StartDate, &s.EndDate, &status, &s.Notes); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.Status = SessionStatus(status)
		s.StartDate = s.StartDate.UTC()
		if s.EndDate != nil {
			end := s.EndDate.UTC()
			s.EndDate = &end
		}
		s.Exercises = []SessionExercise{}
		sessionIdx[s.ID] = len(sessions)
		sessions = append(sessions, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	span.SetAttributes(attribute.Int("sessions", len(sessions)))
	if len(sessions) == 0 {
		return sessions, nil
	}

	if err := r.loadSessionExercises(ctx, sessions, sessionIdx, q.ExerciseID); err != nil {
		return nil, err
	}

	return sessions, nil
}

type exerciseSlot struct {
	session  int
	exercise int
}

func (r *Repo) loadSessionExercises(
	ctx context.Context,
	sessions []TrainingSession,
	sessionIdx map[string]int,
	exerciseID string,
) error {
	sessionIDs := make([]string, 0, len(sessions))
	for _, s := range sessions {
		sessionIDs = append(sessionIDs, s.ID)
	}

	query := `SELECT se.id, se.session_id, se.exercise_id, se.notes FROM session_exercise se WHERE se.session_id = ANY($1)`
	args := []any{sessionIDs}
	if exerciseID != "" {
		query += ` AND se.exercise_id = $2`
		args = append(args, exerciseID)
	}
	query += ` ORDER BY se.session_id, se.position`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query session exercises: %w", err)
	}

	slots := make(map[int64]exerciseSlot)
	var sessionExerciseIDs []int64
	for rows.Next() {
		var (
			id        int64
			sessionID string
			ex        SessionExercise
		)
		if err := rows.Scan(&id, &sessionID, &ex.ExerciseID, &ex.Notes); err != nil {
			rows.Close()
			return fmt.Errorf("scan session exercise: %w", err)
		}
		si, ok := sessionIdx[sessionID]
		if !ok {
			continue
		}
		ex.Sets = []SetRecord{}
		sessions[si].Exercises = append(sessions[si].Exercises, ex)
		slots[id] = exerciseSlot{session: si, exercise: len(sessions[si].Exercises) - 1}
		sessionExerciseIDs = append(sessionExerciseIDs, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate session exercises: %w", err)
	}

	if len(sessionExerciseIDs) == 0 {
		return nil
	}

	rows, err = r.db.Query(
		ctx,
		`SELECT ss.session_exercise_id, ss.reps, ss.weight, ss.rest_time, ss.notes
			FROM session_set ss
			WHERE ss.session_exercise_id = ANY($1)
			ORDER BY ss.session_exercise_id, ss.position`,
		sessionExerciseIDs,
	)
	if err != nil {
		return fmt.Errorf("query session sets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			sessionExerciseID int64
			set               SetRecord
		)
		if err := rows.Scan(&sessionExerciseID, &set.Reps, &set.Weight, &set.RestTime, &set.Notes); err != nil {
			return fmt.Errorf("scan session set: %w", err)
		}
		slot, ok := slots[sessionExerciseID]
		if !ok {
			continue
		}
		ex := &sessions[slot.session].Exercises[slot.exercise]
		ex.Sets = append(ex.Sets, set)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate session sets: %w", err)
	}

	return nil
}

func (r *Repo) CountSessions(ctx context.Context, q SessionQuery) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.sessions.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(setQueryAttributes(q)...)

	where, args := sessionConditions(q)
	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM training_session s WHERE `+where,
		args...,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}

	return count, nil
}

// AddSession stores a session with its exercises and sets in one transaction.
func (r *Repo) AddSession(ctx context.Context, session TrainingSession) (_ *TrainingSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.sessions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := session.Validate(); err != nil {
		return nil, err
	}
	if session.ID == "" {
		session.ID = r.newID()
	}
	span.SetAttributes(attribute.String("session_id", session.ID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err == nil {
			return
		}
		// a failed commit has already closed the tx
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			err = fmt.Errorf("rollback: %w: %w", rollbackErr, err)
		}
	}()

	var templateID *string
	if session.TemplateID != "" {
		templateID = &session.TemplateID
	}
	if _, err = tx.Exec(
		ctx,
		`INSERT INTO training_session (id, owner_id, name, template_id, start_date, end_date, status, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		session.ID, session.OwnerID, session.Name, templateID,
		session.StartDate, session.EndDate, string(session.Status), session.Notes,
	); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	for exPos, ex := range session.Exercises {
		var sessionExerciseID int64
		if err = tx.QueryRow(
			ctx,
			`INSERT INTO session_exercise (session_id, position, exercise_id, notes)
				VALUES ($1, $2, $3, $4)
				RETURNING id`,
			session.ID, exPos, ex.ExerciseID, ex.Notes,
		).Scan(&sessionExerciseID); err != nil {
			return nil, fmt.Errorf("insert session exercise: %w", err)
		}

		for setPos, set := range ex.Sets {
			if _, err = tx.Exec(
				ctx,
				`INSERT INTO session_set (session_exercise_id, position, reps, weight, rest_time, notes)
					VALUES ($1, $2, $3, $4, $5, $6)`,
				sessionExerciseID, setPos, set.Reps, set.Weight, set.RestTime, set.Notes,
			); err != nil {
				return nil, fmt.Errorf("insert session set: %w", err)
			}
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit session: %w", err)
	}

	return &session, nil
}
