package repo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/2beens/gymstats/internal/gymstats/repo"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	id int64
}

func (r fakeRow) Scan(dest ...any) error {
	*(dest[0].(*int64)) = r.id
	return nil
}

// fakeTx records the statements of one transaction. Methods AddSession never calls
// are left to the embedded nil pgx.Tx.
type fakeTx struct {
	pgx.Tx
	commitErr  error
	execs      int
	committed  bool
	rolledBack bool
	closed     bool
}

func (tx *fakeTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	tx.execs++
	return pgconn.CommandTag{}, nil
}

func (tx *fakeTx) QueryRow(context.Context, string, ...any) pgx.Row {
	tx.execs++
	return fakeRow{id: int64(tx.execs)}
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.closed = true
	if tx.commitErr != nil {
		return tx.commitErr
	}
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if tx.closed {
		return pgx.ErrTxClosed
	}
	tx.closed = true
	tx.rolledBack = true
	return nil
}

type fakeDB struct {
	tx *fakeTx
}

func (db *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	return db.tx, nil
}

func (db *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected query")
}

func (db *fakeDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return fakeRow{}
}

func (db *fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("unexpected exec")
}

func newSession() repo.TrainingSession {
	end := time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)
	return repo.TrainingSession{
		OwnerID:   "u1",
		Name:      "Push",
		StartDate: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		EndDate:   &end,
		Status:    repo.SessionStatusClosed,
		Exercises: []repo.SessionExercise{
			{ExerciseID: "bench", Sets: []repo.SetRecord{{Reps: 5, Weight: 100}, {Reps: 5, Weight: 100}}},
		},
	}
}

func TestAddSession_Committed(t *testing.T) {
	tx := &fakeTx{}
	r := repo.NewRepoWithDB(&fakeDB{tx: tx}, func() string { return "s1" })

	stored, err := r.AddSession(context.Background(), newSession())
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "s1", stored.ID)
	// session row, one exercise row, two set rows
	assert.Equal(t, 4, tx.execs)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestAddSession_CommitFailure(t *testing.T) {
	tx := &fakeTx{commitErr: errors.New("connection reset")}
	r := repo.NewRepoWithDB(&fakeDB{tx: tx}, func() string { return "s1" })

	stored, err := r.AddSession(context.Background(), newSession())
	assert.Nil(t, stored)
	assert.EqualError(t, err, "commit session: connection reset")
	assert.False(t, tx.committed)
}

func TestAddSession_InvalidNeverBegins(t *testing.T) {
	r := repo.NewRepoWithDB(&fakeDB{}, func() string { return "s1" })

	session := newSession()
	session.OwnerID = ""
	stored, err := r.AddSession(context.Background(), session)
	assert.Nil(t, stored)
	assert.ErrorIs(t, err, repo.ErrInvalidSession)
}
