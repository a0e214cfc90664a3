// Package mongorepo reads and writes the workoutsessions, exercises and usermetrics collections.
// Identifiers are ObjectID hex strings; an id that is not valid hex never matches anything.
package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymstats/internal/gymstats/repo"
	"github.com/2beens/gymstats/internal/telemetry/tracing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, uri, dbName string) (*Repo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &Repo{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

func (r *Repo) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *Repo) collection(name string) *mongo.Collection {
	return r.db.Collection(name)
}

// dateRangeFilter builds an inclusive range at BSON millisecond precision.
// A lower bound with a sub-millisecond part is moved up to the next millisecond,
// otherwise truncation would let in documents stored just before it.
func dateRangeFilter(from, to *time.Time) (bson.M, bool) {
	if from == nil && to == nil {
		return nil, false
	}
	dateRange := bson.M{}
	if from != nil {
		lower := from.Truncate(time.Millisecond)
		if lower.Before(*from) {
			lower = lower.Add(time.Millisecond)
		}
		dateRange["$gte"] = lower
	}
	if to != nil {
		dateRange["$lte"] = to.Truncate(time.Millisecond)
	}
	return dateRange, true
}

// sessionFilter returns false when q can match no document.
func sessionFilter(q repo.SessionQuery) (bson.M, bool) {
	user, err := primitive.ObjectIDFromHex(q.OwnerID)
	if err != nil {
		return nil, false
	}

	filter := bson.M{"user": user}
	if q.Status != "" {
		filter["status"] = string(q.Status)
	}
	if dateRange, ok := dateRangeFilter(q.From, q.To); ok {
		filter["startDate"] = dateRange
	}
	if q.ExerciseID != "" {
		exID, err := primitive.ObjectIDFromHex(q.ExerciseID)
		if err != nil {
			return nil, false
		}
		filter["exercises.exercise"] = exID
	}
	return filter, true
}

func metricFilter(q repo.MetricQuery) (bson.M, bool) {
	user, err := primitive.ObjectIDFromHex(q.OwnerID)
	if err != nil {
		return nil, false
	}

	filter := bson.M{"userId": user}
	if dateRange, ok := dateRangeFilter(q.From, q.To); ok {
		filter["measuredAt"] = dateRange
	}
	return filter, true
}

func (r *Repo) ListSessions(ctx context.Context, q repo.SessionQuery) (_ []repo.TrainingSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.sessions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner_id", q.OwnerID))

	sessions := []repo.TrainingSession{}
	filter, ok := sessionFilter(q)
	if !ok {
		return sessions, nil
	}

	cursor, err := r.collection(sessionsCollection).Find(
		ctx,
		filter,
		options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find sessions: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var d sessionDoc
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode session: %w", err)
		}
		sessions = append(sessions, d.toSession(q.ExerciseID))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}

func (r *Repo) CountSessions(ctx context.Context, q repo.SessionQuery) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.sessions.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	filter, ok := sessionFilter(q)
	if !ok {
		return 0, nil
	}

	count, err := r.collection(sessionsCollection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return int(count), nil
}

func (r *Repo) AddSession(ctx context.Context, session repo.TrainingSession) (_ *repo.TrainingSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.sessions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := session.Validate(); err != nil {
		return nil, err
	}
	d, err := sessionToDoc(session)
	if err != nil {
		return nil, errors.Join(repo.ErrInvalidSession, err)
	}
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}

	if _, err := r.collection(sessionsCollection).InsertOne(ctx, d); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	stored := d.toSession("")
	return &stored, nil
}

func (r *Repo) GetExercises(ctx context.Context, ids []string) (_ map[string]repo.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.exercises.get_many")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	resolved := make(map[string]repo.Exercise, len(ids))
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return resolved, nil
	}

	cursor, err := r.collection(exercisesCollection).Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var d exerciseDoc
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode exercise: %w", err)
		}
		e := d.toExercise()
		resolved[e.ID] = e
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercises: %w", err)
	}

	return resolved, nil
}

func (r *Repo) GetExercise(ctx context.Context, id string) (_ *repo.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repo.ErrExerciseNotFound
	}

	var d exerciseDoc
	if err := r.collection(exercisesCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repo.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("find exercise: %w", err)
	}

	e := d.toExercise()
	return &e, nil
}

func (r *Repo) AddExercise(ctx context.Context, exercise repo.Exercise) (_ *repo.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	d := exerciseDoc{
		ID:          primitive.NewObjectID(),
		Name:        exercise.Name,
		Description: exercise.Description,
		MuscleGroup: string(exercise.MuscleGroup),
		IsDefault:   exercise.IsDefault,
	}
	if exercise.ID != "" {
		if d.ID, err = primitive.ObjectIDFromHex(exercise.ID); err != nil {
			return nil, fmt.Errorf("exercise id: %w", err)
		}
	}
	if exercise.CreatedBy != "" {
		createdBy, err := primitive.ObjectIDFromHex(exercise.CreatedBy)
		if err != nil {
			return nil, fmt.Errorf("exercise creator: %w", err)
		}
		d.CreatedBy = &createdBy
	}

	if _, err := r.collection(exercisesCollection).InsertOne(ctx, d); err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	stored := d.toExercise()
	return &stored, nil
}

func (r *Repo) AddMetric(ctx context.Context, metric repo.BodyMetric) (_ *repo.BodyMetric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.metrics.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := primitive.ObjectIDFromHex(metric.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("metric owner: %w", err)
	}

	d := metricDoc{
		ID:         primitive.NewObjectID(),
		UserID:     user,
		Weight:     metric.Weight,
		Height:     metric.Height,
		BodyFat:    metric.BodyFat,
		MeasuredAt: metric.MeasuredAt.UTC(),
	}
	if _, err := r.collection(metricsCollection).InsertOne(ctx, d); err != nil {
		return nil, fmt.Errorf("insert metric: %w", err)
	}

	stored := d.toMetric()
	return &stored, nil
}

func (r *Repo) ListMetrics(ctx context.Context, q repo.MetricQuery) (_ []repo.BodyMetric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.metrics.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	metrics := []repo.BodyMetric{}
	filter, ok := metricFilter(q)
	if !ok {
		return metrics, nil
	}

	cursor, err := r.collection(metricsCollection).Find(
		ctx,
		filter,
		options.Find().SetSort(bson.D{{Key: "measuredAt", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find metrics: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var d metricDoc
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode metric: %w", err)
		}
		metrics = append(metrics, d.toMetric())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate metrics: %w", err)
	}

	return metrics, nil
}
