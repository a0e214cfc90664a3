package mongorepo

import (
	"time"

	"github.com/2beens/gymstats/internal/gymstats/repo"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	sessionsCollection  = "workoutsessions"
	exercisesCollection = "exercises"
	metricsCollection   = "usermetrics"
)

type setDoc struct {
	Reps     int     `bson:"reps"`
	Weight   float64 `bson:"weight"`
	RestTime int     `bson:"restTime"`
	Notes    string  `bson:"notes,omitempty"`
}

type sessionExerciseDoc struct {
	Exercise primitive.ObjectID `bson:"exercise"`
	Sets     []setDoc           `bson:"sets"`
	Notes    string             `bson:"notes,omitempty"`
}

type sessionDoc struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty"`
	User            primitive.ObjectID   `bson:"user"`
	Name            string               `bson:"name"`
	WorkoutTemplate *primitive.ObjectID  `bson:"workoutTemplate,omitempty"`
	StartDate       time.Time            `bson:"startDate"`
	EndDate         *time.Time           `bson:"endDate,omitempty"`
	Status          string               `bson:"status"`
	Exercises       []sessionExerciseDoc `bson:"exercises"`
	Notes           string               `bson:"notes,omitempty"`
}

type exerciseDoc struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Name        string              `bson:"name"`
	Description string              `bson:"description,omitempty"`
	MuscleGroup string              `bson:"muscleGroup"`
	CreatedBy   *primitive.ObjectID `bson:"createdBy,omitempty"`
	IsDefault   bool                `bson:"isDefault"`
}

type metricDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     primitive.ObjectID `bson:"userId"`
	Weight     *float64           `bson:"weight,omitempty"`
	Height     *float64           `bson:"height,omitempty"`
	BodyFat    *float64           `bson:"bodyFat,omitempty"`
	MeasuredAt time.Time          `bson:"measuredAt"`
}

func (d sessionDoc) toSession(onlyExercise string) repo.TrainingSession {
	s := repo.TrainingSession{
		ID:        d.ID.Hex(),
		OwnerID:   d.User.Hex(),
		Name:      d.Name,
		StartDate: d.StartDate.UTC(),
		Status:    repo.SessionStatus(d.Status),
		Exercises: []repo.SessionExercise{},
		Notes:     d.Notes,
	}
	if d.WorkoutTemplate != nil {
		s.TemplateID = d.WorkoutTemplate.Hex()
	}
	if d.EndDate != nil {
		end := d.EndDate.UTC()
		s.EndDate = &end
	}
	for _, ex := range d.Exercises {
		exerciseID := ex.Exercise.Hex()
		if onlyExercise != "" && exerciseID != onlyExercise {
			continue
		}
		sets := make([]repo.SetRecord, 0, len(ex.Sets))
		for _, set := range ex.Sets {
			sets = append(sets, repo.SetRecord{
				Reps:     set.Reps,
				Weight:   set.Weight,
				RestTime: set.RestTime,
				Notes:    set.Notes,
			})
		}
		s.Exercises = append(s.Exercises, repo.SessionExercise{
			ExerciseID: exerciseID,
			Sets:       sets,
			Notes:      ex.Notes,
		})
	}
	return s
}

func sessionToDoc(s repo.TrainingSession) (sessionDoc, error) {
	user, err := primitive.ObjectIDFromHex(s.OwnerID)
	if err != nil {
		return sessionDoc{}, err
	}

	d := sessionDoc{
		User:      user,
		Name:      s.Name,
		StartDate: s.StartDate.UTC(),
		EndDate:   s.EndDate,
		Status:    string(s.Status),
		Exercises: make([]sessionExerciseDoc, 0, len(s.Exercises)),
		Notes:     s.Notes,
	}
	if s.ID != "" {
		if d.ID, err = primitive.ObjectIDFromHex(s.ID); err != nil {
			return sessionDoc{}, err
		}
	}
	if s.TemplateID != "" {
		tmpl, err := primitive.ObjectIDFromHex(s.TemplateID)
		if err != nil {
			return sessionDoc{}, err
		}
		d.WorkoutTemplate = &tmpl
	}
	for _, ex := range s.Exercises {
		exID, err := primitive.ObjectIDFromHex(ex.ExerciseID)
		if err != nil {
			return sessionDoc{}, err
		}
		sets := make([]setDoc, 0, len(ex.Sets))
		for _, set := range ex.Sets {
			sets = append(sets, setDoc{
				Reps:     set.Reps,
				Weight:   set.Weight,
				RestTime: set.RestTime,
				Notes:    set.Notes,
			})
		}
		d.Exercises = append(d.Exercises, sessionExerciseDoc{Exercise: exID, Sets: sets, Notes: ex.Notes})
	}
	return d, nil
}

func (d exerciseDoc) toExercise() repo.Exercise {
	e := repo.Exercise{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		MuscleGroup: repo.MuscleGroup(d.MuscleGroup),
		IsDefault:   d.IsDefault,
	}
	if d.CreatedBy != nil {
		e.CreatedBy = d.CreatedBy.Hex()
	}
	return e
}

func (d metricDoc) toMetric() repo.BodyMetric {
	return repo.BodyMetric{
		ID:         d.ID.Hex(),
		OwnerID:    d.UserID.Hex(),
		Weight:     d.Weight,
		Height:     d.Height,
		BodyFat:    d.BodyFat,
		MeasuredAt: d.MeasuredAt.UTC(),
	}
}
