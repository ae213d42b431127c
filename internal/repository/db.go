package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX 是 repository 依賴的查詢介面，*pgxpool.Pool 與 pgx.Tx 皆滿足
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func isForeignKeyViolation(err error) bool {
	return hasPgCode(err, pgForeignKeyViolation)
}

func isUniqueViolation(err error) bool {
	return hasPgCode(err, pgUniqueViolation)
}

// emptyToNil 空字串綁定為 NULL，交給欄位預設值或 NOT NULL 約束處理
func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
