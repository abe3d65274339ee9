package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de operações usado pelos repositórios, sempre com contexto
type Queryer interface {
	Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row
}
