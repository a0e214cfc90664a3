// Package memrepo is an in-process store used by tests and the "memory" storage backend.
package memrepo

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/2beens/gymstats/internal/gymstats/repo"

	"github.com/google/uuid"
)

type Repo struct {
	mu        sync.RWMutex
	sessions  []repo.TrainingSession
	exercises map[string]repo.Exercise
	metrics   []repo.BodyMetric
}

func New() *Repo {
	return &Repo{
		exercises: make(map[string]repo.Exercise),
	}
}

func cloneSession(s repo.TrainingSession) repo.TrainingSession {
	out := s
	out.Exercises = make([]repo.SessionExercise, 0, len(s.Exercises))
	for _, ex := range s.Exercises {
		ex.Sets = slices.Clone(ex.Sets)
		if ex.Sets == nil {
			ex.Sets = []repo.SetRecord{}
		}
		out.Exercises = append(out.Exercises, ex)
	}
	if s.EndDate != nil {
		end := *s.EndDate
		out.EndDate = &end
	}
	return out
}

func (r *Repo) AddSession(_ context.Context, session repo.TrainingSession) (*repo.TrainingSession, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	session.StartDate = session.StartDate.UTC()

	stored := cloneSession(session)
	r.mu.Lock()
	r.sessions = append(r.sessions, stored)
	r.mu.Unlock()

	out := cloneSession(stored)
	return &out, nil
}

func (r *Repo) ListSessions(_ context.Context, q repo.SessionQuery) ([]repo.TrainingSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := []repo.TrainingSession{}
	for _, s := range r.sessions {
		if !q.Matches(s) {
			continue
		}
		s = cloneSession(s)
		if q.ExerciseID != "" {
			s.Exercises = slices.DeleteFunc(s.Exercises, func(ex repo.SessionExercise) bool {
				return ex.ExerciseID != q.ExerciseID
			})
		}
		sessions = append(sessions, s)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].StartDate.Equal(sessions[j].StartDate) {
			return sessions[i].ID < sessions[j].ID
		}
		return sessions[i].StartDate.Before(sessions[j].StartDate)
	})

	return sessions, nil
}

func (r *Repo) CountSessions(_ context.Context, q repo.SessionQuery) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, s := range r.sessions {
		if q.Matches(s) {
			count++
		}
	}
	return count, nil
}

func (r *Repo) AddExercise(_ context.Context, exercise repo.Exercise) (*repo.Exercise, error) {
	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}

	r.mu.Lock()
	r.exercises[exercise.ID] = exercise
	r.mu.Unlock()

	return &exercise, nil
}

func (r *Repo) GetExercise(_ context.Context, id string) (*repo.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.exercises[id]
	if !ok {
		return nil, repo.ErrExerciseNotFound
	}
	return &e, nil
}

func (r *Repo) GetExercises(_ context.Context, ids []string) (map[string]repo.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resolved := make(map[string]repo.Exercise, len(ids))
	for _, id := range ids {
		if e, ok := r.exercises[id]; ok {
			resolved[id] = e
		}
	}
	return resolved, nil
}

func (r *Repo) AddMetric(_ context.Context, metric repo.BodyMetric) (*repo.BodyMetric, error) {
	if metric.ID == "" {
		metric.ID = uuid.NewString()
	}

	r.mu.Lock()
	r.metrics = append(r.metrics, metric)
	r.mu.Unlock()

	return &metric, nil
}

func (r *Repo) ListMetrics(_ context.Context, q repo.MetricQuery) ([]repo.BodyMetric, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	metrics := []repo.BodyMetric{}
	for _, m := range r.metrics {
		if q.Matches(m) {
			metrics = append(metrics, m)
		}
	}

	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].MeasuredAt.Before(metrics[j].MeasuredAt)
	})

	return metrics, nil
}
