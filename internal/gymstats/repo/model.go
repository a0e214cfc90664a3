package repo

import (
	"errors"
	"time"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrInvalidSession   = errors.New("invalid training session")
)

type SessionStatus string

const (
	SessionStatusOpen   SessionStatus = "OPEN"
	SessionStatusClosed SessionStatus = "CLOSED"
)

func (s SessionStatus) IsValid() bool {
	return s == SessionStatusOpen || s == SessionStatusClosed
}

// MuscleGroup is opaque to the analytics; the constants cover the default exercise catalogue.
type MuscleGroup string

const (
	MuscleGroupChest      MuscleGroup = "CHEST"
	MuscleGroupBack       MuscleGroup = "BACK"
	MuscleGroupLowerBack  MuscleGroup = "LOWER_BACK"
	MuscleGroupShoulders  MuscleGroup = "SHOULDERS"
	MuscleGroupBiceps     MuscleGroup = "BICEPS"
	MuscleGroupTriceps    MuscleGroup = "TRICEPS"
	MuscleGroupForearms   MuscleGroup = "FOREARMS"
	MuscleGroupAbs        MuscleGroup = "ABS"
	MuscleGroupQuadriceps MuscleGroup = "QUADRICEPS"
	MuscleGroupHamstrings MuscleGroup = "HAMSTRINGS"
	MuscleGroupGlutes     MuscleGroup = "GLUTES"
	MuscleGroupCalves     MuscleGroup = "CALVES"
)

// Exercise is a reference entity. CreatedBy is empty for default exercises.
type Exercise struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	MuscleGroup MuscleGroup `json:"muscleGroup"`
	CreatedBy   string      `json:"createdBy,omitempty"`
	IsDefault   bool        `json:"isDefault"`
}

// AccessibleBy reports whether a non-admin user may read this exercise.
func (e Exercise) AccessibleBy(userID string) bool {
	return e.IsDefault || (e.CreatedBy != "" && e.CreatedBy == userID)
}

type SetRecord struct {
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	RestTime int     `json:"restTime"` // seconds
	Notes    string  `json:"notes,omitempty"`
}

// Volume is weight times reps.
func (s SetRecord) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

type SessionExercise struct {
	ExerciseID string      `json:"exercise"`
	Sets       []SetRecord `json:"sets"`
	Notes      string      `json:"notes,omitempty"`
}

type TrainingSession struct {
	ID         string            `json:"id"`
	OwnerID    string            `json:"user"`
	Name       string            `json:"name"`
	TemplateID string            `json:"workoutTemplate,omitempty"`
	StartDate  time.Time         `json:"startDate"`
	EndDate    *time.Time        `json:"endDate,omitempty"`
	Status     SessionStatus     `json:"status"`
	Exercises  []SessionExercise `json:"exercises"`
	Notes      string            `json:"notes,omitempty"`
}

// Validate checks the record invariants a store relies on.
func (s TrainingSession) Validate() error {
	if s.OwnerID == "" {
		return errors.Join(ErrInvalidSession, errors.New("missing owner"))
	}
	if !s.Status.IsValid() {
		return errors.Join(ErrInvalidSession, errors.New("unknown status "+string(s.Status)))
	}
	if s.Status == SessionStatusOpen && s.EndDate != nil {
		return errors.Join(ErrInvalidSession, errors.New("open session with end date"))
	}
	for _, ex := range s.Exercises {
		if ex.ExerciseID == "" {
			return errors.Join(ErrInvalidSession, errors.New("missing exercise reference"))
		}
		for _, set := range ex.Sets {
			if set.Reps < 1 || set.Weight < 0 || set.RestTime < 0 {
				return errors.Join(ErrInvalidSession, errors.New("invalid set record"))
			}
		}
	}
	return nil
}

// BodyMetric is one sample of the append-only body metric series.
type BodyMetric struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"userId"`
	Weight     *float64  `json:"weight"`
	Height     *float64  `json:"height"`
	BodyFat    *float64  `json:"bodyFat"`
	MeasuredAt time.Time `json:"measuredAt"`
}

// SessionQuery selects sessions of one owner. Nil bounds are unbounded and inclusive otherwise.
// A non-empty ExerciseID keeps only sessions containing that exercise.
type SessionQuery struct {
	OwnerID    string
	Status     SessionStatus
	From       *time.Time
	To         *time.Time
	ExerciseID string
}

// Matches reports whether s satisfies q. Used by stores that filter in process.
func (q SessionQuery) Matches(s TrainingSession) bool {
	if s.OwnerID != q.OwnerID {
		return false
	}
	if q.Status != "" && s.Status != q.Status {
		return false
	}
	if q.From != nil && s.StartDate.Before(*q.From) {
		return false
	}
	if q.To != nil && s.StartDate.After(*q.To) {
		return false
	}
	if q.ExerciseID != "" {
		for _, ex := range s.Exercises {
			if ex.ExerciseID == q.ExerciseID {
				return true
			}
		}
		return false
	}
	return true
}

type MetricQuery struct {
	OwnerID string
	From    *time.Time
	To      *time.Time
}

func (q MetricQuery) Matches(m BodyMetric) bool {
	if m.OwnerID != q.OwnerID {
		return false
	}
	if q.From != nil && m.MeasuredAt.Before(*q.From) {
		return false
	}
	if q.To != nil && m.MeasuredAt.After(*q.To) {
		return false
	}
	return true
}
