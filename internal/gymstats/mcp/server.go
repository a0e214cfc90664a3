package mcp

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds the gymstats MCP server. The schema tool is only registered when a
// postgres pool is available. Mounted at /mcp by internal/server and served over stdio by
// cmd/gymstats_mcp.
func NewServer(facade analytics, pool *pgxpool.Pool) *mcp.Server {
	var schemaRepo SchemaRepo
	if pool != nil {
		schemaRepo = NewPoolSchemaRepo(pool)
	}
	return newServer(NewHandler(NewContextService(facade, schemaRepo)), schemaRepo != nil)
}

func newServer(h *Handler, withSchema bool) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymstats",
		Version: "1.0.0",
	}, nil)

	if withSchema {
		mcp.AddTool(s, &mcp.Tool{
			Name:        "get_gymstats_schema",
			Description: "Returns the DB schema of the gymstats tables (exercise, training_session, session_exercise, session_set, body_metric): columns, types, nullable, default.",
		}, h.GetGymstatsSchemaTool())
	}

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_summary",
		Description: "Returns total closed sessions, total volume (reps x weight), total reps and sessions this month for a user. Args: user_id; optional start_date, end_date.",
	}, h.GetTrainingSummaryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_muscle_distribution",
		Description: "Returns set counts and percentages per muscle group for a user's closed sessions, most trained first. Args: user_id; optional start_date, end_date.",
	}, h.GetMuscleDistributionTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_progress",
		Description: "Returns per-session max weight, volume and estimated one-rep max (Epley) for one exercise, oldest first. Args: user_id, exercise_id; optional start_date, end_date.",
	}, h.GetExerciseProgressTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_body_metrics",
		Description: "Returns the user's body metric entries (weight, height, body fat) ordered by measurement time. Args: user_id; optional start_date, end_date.",
	}, h.GetBodyMetricsTool())

	return s
}
