package mongorepo

import "github.com/2beens/gymstats/internal/gymstats/repo"

var (
	SessionFilter = sessionFilter
	MetricFilter  = metricFilter
)

// StoreAndLoad converts a session to its document form and back.
func StoreAndLoad(s repo.TrainingSession, onlyExercise string) (repo.TrainingSession, error) {
	d, err := sessionToDoc(s)
	if err != nil {
		return repo.TrainingSession{}, err
	}
	return d.toSession(onlyExercise), nil
}
