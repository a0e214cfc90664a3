package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/gymstats/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// AddMetric appends a sample. MeasuredAt must already be set by the caller.
func (r *Repo) AddMetric(ctx context.Context, metric BodyMetric) (_ *BodyMetric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.metrics.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner_id", metric.OwnerID))

	if metric.ID == "" {
		metric.ID = r.newID()
	}

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO body_metric (id, owner_id, weight, height, body_fat, measured_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
		metric.ID, metric.OwnerID, metric.Weight, metric.Height, metric.BodyFat, metric.MeasuredAt,
	); err != nil {
		return nil, fmt.Errorf("insert body metric: %w", err)
	}

	return &metric, nil
}

// ListMetrics returns the owner's samples ascending by measurement time.
func (r *Repo) ListMetrics(ctx context.Context, q MetricQuery) (_ []BodyMetric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.metrics.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner_id", q.OwnerID))

	conds := []string{"m.owner_id = $1"}
	args := []any{q.OwnerID}
	if q.From != nil {
		args = append(args, *q.From)
		conds = append(conds, fmt.Sprintf("m.measured_at >= $%d", len(args)))
	}
	if q.To != nil {
		args = append(args, *q.To)
		conds = append(conds, fmt.Sprintf("m.measured_at <= $%d", len(args)))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT m.id, m.owner_id, m.weight, m.height, m.body_fat, m.measured_at
			FROM body_metric m
			WHERE `+strings.Join(conds, " AND ")+`
			ORDER BY m.measured_at, m.id`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query body metrics: %w", err)
	}
	defer rows.Close()

	metrics := []BodyMetric{}
	for rows.Next() {
		var m BodyMetric
		if err := rows.Scan(&m.ID, &m.OwnerID, &m.Weight, &m.Height, &m.BodyFat, &m.MeasuredAt); err != nil {
			return nil, fmt.Errorf("scan body metric: %w", err)
		}
		m.MeasuredAt = m.MeasuredAt.UTC()
		metrics = append(metrics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate body metrics: %w", err)
	}

	return metrics, nil
}
