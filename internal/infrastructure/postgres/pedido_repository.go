package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/estoqueti/estoque-web/internal/domain"
	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementação do porto PedidoRepository sobre PostgreSQL.
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository constrói o adaptador de persistência de pedidos.
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create persiste um novo pedido e preenche ID e CriadoEm gerados.
func (r *PedidoRepo) Create(ctx context.Context, p *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (fornecedor_id, item_id, quantidade, status, entrega_prevista, observacoes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, criado_em`
	err := r.q.QueryRow(ctx, query,
		p.FornecedorID, p.ItemID, p.Quantidade, p.Status, p.EntregaPrevista, p.Observacoes,
	).Scan(&p.ID, &p.CriadoEm)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID busca um pedido por ID, com os nomes do fornecedor e do item. Devolve nil se não existir.
func (r *PedidoRepo) GetByID(ctx context.Context, id int64) (*entity.Pedido, error) {
	query := selectPedido + ` WHERE p.id = $1`
	var p entity.Pedido
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.FornecedorID, &p.ItemID, &p.Quantidade, &p.Status,
		&p.CriadoEm, &p.EntregaPrevista, &p.Observacoes, &p.FornecedorNome, &p.ItemNome,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

const selectPedido = `
	SELECT p.id, p.fornecedor_id, p.item_id, p.quantidade, p.status,
	       p.criado_em, p.entrega_prevista, p.observacoes, f.nome, i.nome
	FROM pedidos p
	JOIN fornecedores f ON f.id = p.fornecedor_id
	JOIN itens        i ON i.id = p.item_id`

// List devolve os pedidos mais recentes primeiro, com filtro opcional de status e fornecedor.
func (r *PedidoRepo) List(ctx context.Context, filter repository.PedidoFilter) ([]*entity.Pedido, error) {
	query := selectPedido + `
	WHERE ($1 = '' OR p.status = $1)
	  AND ($2::BIGINT = 0 OR p.fornecedor_id = $2)
	ORDER BY p.criado_em DESC`
	rows, err := r.q.Query(ctx, query, filter.Status, filter.FornecedorID)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.FornecedorID, &p.ItemID, &p.Quantidade, &p.Status,
			&p.CriadoEm, &p.EntregaPrevista, &p.Observacoes, &p.FornecedorNome, &p.ItemNome); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update atualiza um pedido existente. Devolve domain.ErrNotFound para ID desconhecido.
func (r *PedidoRepo) Update(ctx context.Context, p *entity.Pedido) error {
	query := `
		UPDATE pedidos
		SET fornecedor_id = $2, item_id = $3, quantidade = $4, status = $5,
		    entrega_prevista = $6, observacoes = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.FornecedorID, p.ItemID, p.Quantidade, p.Status, p.EntregaPrevista, p.Observacoes,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update pedido: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete exclui um pedido por ID.
func (r *PedidoRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
