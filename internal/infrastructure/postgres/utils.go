package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB es la intersección de pgxpool.Pool y pgx.Tx que usan los repositorios,
// de modo que TxRunner pueda re-atarlos a una transacción.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
// Respaldo del pre-chequeo de duplicados: dos creates concurrentes con el
// mismo nombre degradan a un 409 limpio en lugar de un 500.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// filtroILike construye la condición OR de filtro por subcadena sobre las
// columnas indicadas usando el placeholder $n. Devuelve "" si no hay filtro.
func filtroILike(columnas []string, placeholder int) string {
	if len(columnas) == 0 {
		return ""
	}
	partes := make([]string, 0, len(columnas))
	for _, c := range columnas {
		partes = append(partes, fmt.Sprintf("%s ILIKE $%d", c, placeholder))
	}
	return "(" + strings.Join(partes, " OR ") + ")"
}

// offsetDe calcula el offset de una página (1-based).
func offsetDe(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}
