package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bsalazar/descansos-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Política uniforme: toda escritura multi-sentencia (alta de trabajador
// social con su persona, adjunto con su archivo) pasa por aquí; commit al
// terminar, rollback ante cualquier error.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunTrabajadorSocial ejecuta fn con los repos de persona y trabajador social
// atados a la misma transacción.
func (r *TxRunner) RunTrabajadorSocial(ctx context.Context, fn func(
	personaRepo repository.PersonaRepository,
	trabajadorRepo repository.TrabajadorSocialRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPersonaRepository(tx), NewTrabajadorSocialRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunDocumento ejecuta fn con el repo de documentos atado a una transacción.
func (r *TxRunner) RunDocumento(ctx context.Context, fn func(
	docRepo repository.DocumentoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewDocumentoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
