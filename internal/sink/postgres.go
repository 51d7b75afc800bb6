package sink

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lmtech-pe/ofertas-loader/internal/schema"
)

// Postgres is the optional supplemental destination: the canonical rows
// of each batch are appended to an analytics table so the cleaned data
// can be queried without going through the object store.
type Postgres struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgres connects, verifies the connection and ensures the
// destination table exists.
func NewPostgres(ctx context.Context, url, table string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	p := &Postgres{pool: pool, table: pgx.Identifier{table}.Sanitize()}
	if err := p.ensureTable(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure table %s: %w", table, err)
	}
	return p, nil
}

// ensureTable creates the destination table if it doesn't exist, with
// one column per canonical column (nullable, integers kept as BIGINT).
func (p *Postgres) ensureTable(ctx context.Context) error {
	cols := schema.Columns()
	defs := make([]string, 0, len(cols))
	for _, c := range cols {
		sqlType := "TEXT"
		if c.Type == schema.TypeInt {
			sqlType = "BIGINT"
		}
		defs = append(defs, fmt.Sprintf("%s %s", columnIdent(c.Name), sqlType))
	}
	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", p.table, strings.Join(defs, ", "))
	_, err := p.pool.Exec(ctx, query)
	return err
}

// Insert appends every canonical row inside one transaction. Unknown
// cells become SQL NULLs.
func (p *Postgres) Insert(ctx context.Context, t *schema.Table) error {
	if len(t.Rows) == 0 {
		return nil
	}

	names := make([]string, 0, len(t.Columns))
	placeholders := make([]string, 0, len(t.Columns))
	for i, c := range t.Columns {
		names = append(names, columnIdent(c.Name))
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		p.table, strings.Join(names, ", "), strings.Join(placeholders, ", "))

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, row := range t.Rows {
		args := make([]any, len(row))
		for i, cell := range row {
			args[i] = cellArg(t.Columns[i], cell)
		}
		batch.Queue(query, args...)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert batch into %s: %w", p.table, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit insert into %s: %w", p.table, err)
	}
	return nil
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

// cellArg converts a canonical cell to a nullable pgx argument.
func cellArg(col schema.Column, cell schema.Cell) any {
	if col.Type == schema.TypeInt {
		return pgtype.Int8{Int64: cell.Int, Valid: cell.Valid}
	}
	return pgtype.Text{String: cell.Text, Valid: cell.Valid}
}

// columnIdent lowercases a canonical column name into a quoted SQL
// identifier.
func columnIdent(name string) string {
	return pgx.Identifier{strings.ToLower(name)}.Sanitize()
}
