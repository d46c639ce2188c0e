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

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

// FornecedorRepo implementação do porto FornecedorRepository sobre PostgreSQL.
// CNPJ vazio é gravado como NULL para não disputar o índice único.
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador de persistência de fornecedores.
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

// Create persiste um novo fornecedor e preenche o ID gerado.
func (r *FornecedorRepo) Create(ctx context.Context, f *entity.Fornecedor) error {
	query := `
		INSERT INTO fornecedores (nome, cnpj, contato, email, produto_principal, status, observacoes)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		f.Nome, f.CNPJ, f.Contato, f.Email, f.ProdutoPrincipal, f.Status, f.Observacoes,
	).Scan(&f.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

// GetByID busca um fornecedor por ID. Devolve nil se não existir.
func (r *FornecedorRepo) GetByID(ctx context.Context, id int64) (*entity.Fornecedor, error) {
	query := `
		SELECT id, nome, COALESCE(cnpj, ''), contato, email, produto_principal, status, observacoes
		FROM fornecedores WHERE id = $1`
	var f entity.Fornecedor
	err := r.q.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.Nome, &f.CNPJ, &f.Contato, &f.Email, &f.ProdutoPrincipal, &f.Status, &f.Observacoes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return &f, nil
}

// List devolve os fornecedores ordenados por nome, com filtro opcional de busca e status.
func (r *FornecedorRepo) List(ctx context.Context, filter repository.FornecedorFilter) ([]*entity.Fornecedor, error) {
	query := `
		SELECT id, nome, COALESCE(cnpj, ''), contato, email, produto_principal, status, observacoes
		FROM fornecedores
		WHERE ($1 = '' OR nome ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR status = $2)
		ORDER BY nome`
	rows, err := r.q.Query(ctx, query, escapeBusca(filter.Busca), filter.Status)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fornecedor
	for rows.Next() {
		var f entity.Fornecedor
		if err := rows.Scan(&f.ID, &f.Nome, &f.CNPJ, &f.Contato, &f.Email,
			&f.ProdutoPrincipal, &f.Status, &f.Observacoes); err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Update atualiza um fornecedor existente. Devolve domain.ErrNotFound para ID desconhecido.
func (r *FornecedorRepo) Update(ctx context.Context, f *entity.Fornecedor) error {
	query := `
		UPDATE fornecedores
		SET nome = $2, cnpj = NULLIF($3, ''), contato = $4, email = $5,
		    produto_principal = $6, status = $7, observacoes = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		f.ID, f.Nome, f.CNPJ, f.Contato, f.Email, f.ProdutoPrincipal, f.Status, f.Observacoes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update fornecedor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete exclui um fornecedor. Pedidos dependentes bloqueiam a exclusão (ErrProtegido).
func (r *FornecedorRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM fornecedores WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProtegido
		}
		return fmt.Errorf("delete fornecedor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
