package logging

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// QueryTracer records every SQL statement sent through a pgx connection.
// Arguments are never logged.
type QueryTracer struct {
	logger *Logger
}

var _ pgx.QueryTracer = (*QueryTracer)(nil)

func NewQueryTracer(logger *Logger) *QueryTracer {
	return &QueryTracer{logger: logger}
}

func (t *QueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	t.logger.LogDB(data.SQL)
	return ctx
}

func (t *QueryTracer) TraceQueryEnd(_ context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	if data.Err != nil {
		t.logger.LogError("query failed: " + data.Err.Error())
	}
}
