package gymstats

import (
	"github.com/2beens/gymstats/internal/gymstats/bodymetrics"
	"github.com/2beens/gymstats/internal/gymstats/storage"
	"github.com/2beens/gymstats/internal/gymstats/stats"
	"github.com/2beens/gymstats/internal/telemetry/metrics"
)

// Assemble builds the facade with the analyzer and the tracker sharing one store.
// metricsManager may be nil.
func Assemble(store storage.Store, metricsManager *metrics.Manager) *Service {
	analyzer := stats.NewAnalyzer(stats.NewAnalyzerParams{
		Sessions:  store,
		Exercises: store,
		Metrics:   metricsManager,
	})
	tracker := bodymetrics.NewTracker(bodymetrics.NewTrackerParams{
		Repo:    store,
		Metrics: metricsManager,
	})
	return NewService(analyzer, tracker)
}
