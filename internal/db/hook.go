package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-pg/pg/v10"
)

// QueryLogger implements pg.QueryHook and logs every query with its duration.
type QueryLogger struct {
	logger *slog.Logger
}

func NewQueryLogger(logger *slog.Logger) *QueryLogger {
	return &QueryLogger{
		logger: logger,
	}
}

func (h *QueryLogger) BeforeQuery(ctx context.Context, _ *pg.QueryEvent) (context.Context, error) {
	return ctx, nil
}

func (h *QueryLogger) AfterQuery(ctx context.Context, event *pg.QueryEvent) error {
	query, err := event.FormattedQuery()
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to format query", "error", err)
		return nil
	}

	if event.Err != nil {
		h.logger.WarnContext(ctx, "sql query failed",
			"query", string(query),
			"duration", time.Since(event.StartTime),
			"error", event.Err,
		)
		return nil
	}

	h.logger.DebugContext(ctx, "sql query executed",
		"query", string(query),
		"duration", time.Since(event.StartTime),
	)
	return nil
}
