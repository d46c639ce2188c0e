package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/domain/repository"
)

var _ repository.OrdemCompraRepository = (*OrdemCompraRepo)(nil)

// OrdemCompraRepo implementação do porto OrdemCompraRepository sobre PostgreSQL.
// Usa o pool diretamente porque o Create abre a própria transação (ordem + linhas).
type OrdemCompraRepo struct {
	pool *pgxpool.Pool
}

// NewOrdemCompraRepository constrói o adaptador de persistência de ordens de compra.
func NewOrdemCompraRepository(pool *pgxpool.Pool) *OrdemCompraRepo {
	return &OrdemCompraRepo{pool: pool}
}

// Create persiste a ordem e as linhas de ItemOrdem na mesma transação.
func (r *OrdemCompraRepo) Create(ctx context.Context, o *entity.OrdemCompra) error {
	if o.Status == "" {
		o.Status = "PENDENTE"
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin ordem de compra: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx,
		`INSERT INTO ordens_compra (status) VALUES ($1) RETURNING id, data`, o.Status,
	).Scan(&o.ID, &o.Data)
	if err != nil {
		return fmt.Errorf("insert ordem de compra: %w", err)
	}
	for idx := range o.Itens {
		linha := &o.Itens[idx]
		linha.OrdemCompraID = o.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO itens_ordem (ordem_compra_id, item_id, quantidade)
			VALUES ($1, $2, $3) RETURNING id`,
			linha.OrdemCompraID, linha.ItemID, linha.Quantidade,
		).Scan(&linha.ID)
		if err != nil {
			return fmt.Errorf("insert item da ordem: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit ordem de compra: %w", err)
	}
	return nil
}

// GetByID busca a ordem e as linhas dela. Devolve nil se não existir.
func (r *OrdemCompraRepo) GetByID(ctx context.Context, id int64) (*entity.OrdemCompra, error) {
	var o entity.OrdemCompra
	err := r.pool.QueryRow(ctx,
		`SELECT id, data, status FROM ordens_compra WHERE id = $1`, id,
	).Scan(&o.ID, &o.Data, &o.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ordem de compra: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, ordem_compra_id, item_id, quantidade
		FROM itens_ordem WHERE ordem_compra_id = $1
		ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("itens da ordem: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var linha entity.ItemOrdem
		if err := rows.Scan(&linha.ID, &linha.OrdemCompraID, &linha.ItemID, &linha.Quantidade); err != nil {
			return nil, fmt.Errorf("scan item da ordem: %w", err)
		}
		o.Itens = append(o.Itens, linha)
	}
	return &o, rows.Err()
}
