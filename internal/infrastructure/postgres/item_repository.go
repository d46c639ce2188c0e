package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/estoqueti/estoque-web/internal/domain"
	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementação do porto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	q Querier
}

// NewItemRepository constrói o adaptador de persistência do inventário.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste um novo item e preenche o ID gerado.
func (r *ItemRepo) Create(ctx context.Context, i *entity.Item) error {
	query := `
		INSERT INTO itens (nome, categoria, localizacao, quantidade, data_aquisicao, status, valor)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		i.Nome, i.Categoria, i.Localizacao, i.Quantidade, i.DataAquisicao, i.Status, i.Valor,
	).Scan(&i.ID)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID busca um item por ID. Devolve nil se não existir.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	query := `
		SELECT id, nome, categoria, localizacao, quantidade, data_aquisicao, status, valor
		FROM itens WHERE id = $1`
	var i entity.Item
	err := r.q.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.Nome, &i.Categoria, &i.Localizacao, &i.Quantidade,
		&i.DataAquisicao, &i.Status, &i.Valor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// List devolve os itens ordenados por nome, com filtro opcional de busca e status.
func (r *ItemRepo) List(ctx context.Context, filter repository.ItemFilter) ([]*entity.Item, error) {
	query := `
		SELECT id, nome, categoria, localizacao, quantidade, data_aquisicao, status, valor
		FROM itens
		WHERE ($1 = '' OR nome ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR status = $2)
		ORDER BY nome`
	rows, err := r.q.Query(ctx, query, escapeBusca(filter.Busca), filter.Status)
	if err != nil {
		return nil, fmt.Errorf("list itens: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(&i.ID, &i.Nome, &i.Categoria, &i.Localizacao,
			&i.Quantidade, &i.DataAquisicao, &i.Status, &i.Valor); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update atualiza um item existente. Devolve domain.ErrNotFound para ID desconhecido.
func (r *ItemRepo) Update(ctx context.Context, i *entity.Item) error {
	query := `
		UPDATE itens
		SET nome = $2, categoria = $3, localizacao = $4, quantidade = $5,
		    data_aquisicao = $6, status = $7, valor = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		i.ID, i.Nome, i.Categoria, i.Localizacao, i.Quantidade, i.DataAquisicao, i.Status, i.Valor,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete exclui um item. Pedidos dependentes bloqueiam a exclusão (ErrProtegido);
// atribuições e linhas de ordem de compra caem em cascata.
func (r *ItemRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM itens WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProtegido
		}
		return fmt.Errorf("delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SumValor soma o valor de todo o inventário. Devolve zero quando não há itens.
func (r *ItemRepo) SumValor(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(valor), 0) FROM itens`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum valor itens: %w", err)
	}
	return total, nil
}
