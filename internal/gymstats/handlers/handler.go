package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/2beens/gymstats/internal/auth"
	"github.com/2beens/gymstats/internal/gymstats/bodymetrics"
	"github.com/2beens/gymstats/internal/gymstats/repo"
	"github.com/2beens/gymstats/internal/gymstats/stats"
	"github.com/2beens/gymstats/internal/telemetry/tracing"
	"github.com/2beens/gymstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=handlers_test

type statsService interface {
	Summary(ctx context.Context, ownerID, startDate, endDate string) (*stats.Summary, error)
	MuscleDistribution(ctx context.Context, ownerID, startDate, endDate string) ([]stats.MuscleShare, error)
	ExerciseProgress(ctx context.Context, ownerID, exerciseID, startDate, endDate string) ([]stats.ProgressPoint, error)
	AddMetric(ctx context.Context, ownerID string, in bodymetrics.Input) (*repo.BodyMetric, error)
	Metrics(ctx context.Context, ownerID, startDate, endDate string) ([]repo.BodyMetric, error)
}

type exerciseGetter interface {
	GetExercise(ctx context.Context, id string) (*repo.Exercise, error)
}

// Handler serves the /statistics routes for the authenticated principal,
// or for any user named in the path when the principal is an admin.
type Handler struct {
	service   statsService
	exercises exerciseGetter
}

func NewHandler(service statsService, exercises exerciseGetter) *Handler {
	return &Handler{
		service:   service,
		exercises: exercises,
	}
}

func (handler *Handler) resolveOwner(w http.ResponseWriter, r *http.Request) (auth.Principal, string, bool) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return auth.Principal{}, "", false
	}

	ownerID, err := auth.ResolveOwner(principal, mux.Vars(r)["userId"])
	switch {
	case errors.Is(err, auth.ErrUnauthorized):
		http.Error(w, "no can do", http.StatusUnauthorized)
		return auth.Principal{}, "", false
	case errors.Is(err, auth.ErrForbidden):
		log.Warnf("user %s tried to read statistics of %s", principal.UserID, mux.Vars(r)["userId"])
		http.Error(w, "forbidden", http.StatusForbidden)
		return auth.Principal{}, "", false
	}

	return principal, ownerID, true
}

func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, stats.ErrInvalidDateFormat):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, stats.ErrUpstreamQuery):
		log.Errorf("%s: %s", op, err)
		http.Error(w, "failed to query training data", http.StatusBadGateway)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func windowParams(r *http.Request) (string, string) {
	q := r.URL.Query()
	return q.Get("startDate"), q.Get("endDate")
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.summary")
	defer span.End()

	_, ownerID, ok := handler.resolveOwner(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("owner_id", ownerID))

	startDate, endDate := windowParams(r)
	summary, err := handler.service.Summary(ctx, ownerID, startDate, endDate)
	if err != nil {
		writeServiceError(w, "get summary", err)
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}

func (handler *Handler) HandleMuscleDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.muscle_distribution")
	defer span.End()

	_, ownerID, ok := handler.resolveOwner(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("owner_id", ownerID))

	startDate, endDate := windowParams(r)
	shares, err := handler.service.MuscleDistribution(ctx, ownerID, startDate, endDate)
	if err != nil {
		writeServiceError(w, "get muscle distribution", err)
		return
	}

	pkg.WriteJSON(w, shares, http.StatusOK)
}

func (handler *Handler) HandleExerciseProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.exercise_progress")
	defer span.End()

	principal, ownerID, ok := handler.resolveOwner(w, r)
	if !ok {
		return
	}

	exerciseID := mux.Vars(r)["exerciseId"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(
		attribute.String("owner_id", ownerID),
		attribute.String("exercise_id", exerciseID),
	)

	exercise, err := handler.exercises.GetExercise(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repo.ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		writeServiceError(w, "get exercise", fmt.Errorf("%w: %w", stats.ErrUpstreamQuery, err))
		return
	}
	if !principal.Admin && !exercise.AccessibleBy(ownerID) {
		log.Warnf("user %s tried to read progress of foreign exercise %s", principal.UserID, exerciseID)
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	startDate, endDate := windowParams(r)
	points, err := handler.service.ExerciseProgress(ctx, ownerID, exerciseID, startDate, endDate)
	if err != nil {
		writeServiceError(w, "get exercise progress", err)
		return
	}

	pkg.WriteJSON(w, points, http.StatusOK)
}

func validateMetricInput(in bodymetrics.Input) error {
	for _, field := range []struct {
		name  string
		value *float64
	}{
		{"weight", in.Weight},
		{"height", in.Height},
		{"bodyFat", in.BodyFat},
	} {
		if field.value != nil && *field.value < 0 {
			return fmt.Errorf("%s must not be negative", field.name)
		}
	}
	return nil
}

func (handler *Handler) HandleAddMetric(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.add_metric")
	defer span.End()

	_, ownerID, ok := handler.resolveOwner(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("owner_id", ownerID))

	var in bodymetrics.Input
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&in); err != nil {
		log.Debugf("add metric, unmarshal json params: %s", err)
		http.Error(w, "invalid metric payload", http.StatusBadRequest)
		return
	}
	if err := validateMetricInput(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	metric, err := handler.service.AddMetric(ctx, ownerID, in)
	if err != nil {
		writeServiceError(w, "add metric", err)
		return
	}

	log.Debugf("body metric %s added for %s", metric.ID, ownerID)
	pkg.WriteJSON(w, metric, http.StatusCreated)
}

func (handler *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.metrics")
	defer span.End()

	_, ownerID, ok := handler.resolveOwner(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("owner_id", ownerID))

	startDate, endDate := windowParams(r)
	samples, err := handler.service.Metrics(ctx, ownerID, startDate, endDate)
	if err != nil {
		writeServiceError(w, "get metrics", err)
		return
	}

	pkg.WriteJSON(w, samples, http.StatusOK)
}

// SetupRoutes registers the statistics routes, each with an optional trailing {userId}.
func (handler *Handler) SetupRoutes(r *mux.Router) {
	statsRouter := r.PathPrefix("/statistics").Subrouter()

	statsRouter.HandleFunc("/summary", handler.HandleSummary).Methods("GET", "OPTIONS")
	statsRouter.HandleFunc("/summary/{userId}", handler.HandleSummary).Methods("GET", "OPTIONS")
	statsRouter.HandleFunc("/muscle-distribution", handler.HandleMuscleDistribution).Methods("GET", "OPTIONS")
	statsRouter.HandleFunc("/muscle-distribution/{userId}", handler.HandleMuscleDistribution).Methods("GET", "OPTIONS")
	statsRouter.HandleFunc("/progress/{exerciseId}", handler.HandleExerciseProgress).Methods("GET", "OPTIONS")
	statsRouter.HandleFunc("/progress/{exerciseId}/{userId}", handler.HandleExerciseProgress).Methods("GET", "OPTIONS")
	statsRouter.HandleFunc("/metrics", handler.HandleAddMetric).Methods("POST", "OPTIONS")
	statsRouter.HandleFunc("/metrics", handler.HandleMetrics).Methods("GET")
	statsRouter.HandleFunc("/metrics/{userId}", handler.HandleAddMetric).Methods("POST", "OPTIONS")
	statsRouter.HandleFunc("/metrics/{userId}", handler.HandleMetrics).Methods("GET")
}
