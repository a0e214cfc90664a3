package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/gymstats/internal/gymstats/repo"
	"github.com/2beens/gymstats/internal/gymstats/stats"
)

var ErrSchemaUnavailable = errors.New("schema is only available with the postgres store")

// analytics is the subset of the gymstats facade exposed over MCP. Tools are read-only.
type analytics interface {
	Summary(ctx context.Context, ownerID, startDate, endDate string) (*stats.Summary, error)
	MuscleDistribution(ctx context.Context, ownerID, startDate, endDate string) ([]stats.MuscleShare, error)
	ExerciseProgress(ctx context.Context, ownerID, exerciseID, startDate, endDate string) ([]stats.ProgressPoint, error)
	Metrics(ctx context.Context, ownerID, startDate, endDate string) ([]repo.BodyMetric, error)
}

// contextService is what Handler needs.
type contextService interface {
	analytics
	GetSchema(ctx context.Context) (string, error)
}

type ContextService struct {
	analytics
	schema SchemaRepo
}

// NewContextService wires the facade with an optional schema repo (nil when not on postgres).
func NewContextService(facade analytics, schemaRepo SchemaRepo) *ContextService {
	return &ContextService{
		analytics: facade,
		schema:    schemaRepo,
	}
}

// GetSchema renders the gymstats tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	if s.schema == nil {
		return "", ErrSchemaUnavailable
	}
	cols, err := s.schema.GetGymstatsColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatGymstatsSchema(cols), nil
}

func formatGymstatsSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Gymstats DB Schema\n\nNo gymstats tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}
	tables := make([]string, 0, len(byTable))
	for t := range byTable {
		tables = append(tables, t)
	}
	sort.Strings(tables)

	var b strings.Builder
	b.WriteString("# Gymstats DB Schema\n\n")
	b.WriteString("Tables: " + strings.Join(gymstatsTables, ", ") + " (schema: public).\n")
	for _, table := range tables {
		b.WriteString("\n## " + table + "\n\n")
		b.WriteString("| Column | Type | Nullable | Default |\n|--------|------|----------|---------|\n")
		for _, c := range byTable[table] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
	}

	return b.String()
}
