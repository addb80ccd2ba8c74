package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
)

// TxRunner ejecuta operaciones multi-repo dentro de una transacción.
// Los repos que recibe el callback están ligados a la tx: si el callback
// devuelve error, todo se revierte.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner sobre el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunConversion abre la transacción de conversión lead -> cliente.
func (r *TxRunner) RunConversion(ctx context.Context, fn func(repository.LeadRepository, repository.ClientRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(NewLeadRepository(tx), NewClientRepository(tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
