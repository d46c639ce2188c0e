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

var _ repository.LojaRepository = (*LojaRepo)(nil)

// LojaRepo implementação do porto LojaRepository sobre PostgreSQL.
type LojaRepo struct {
	q Querier
}

// NewLojaRepository constrói o adaptador de persistência de lojas.
func NewLojaRepository(q Querier) *LojaRepo {
	return &LojaRepo{q: q}
}

const lojaColumns = `id, nome, responsavel, telefone, email, endereco, cidade, estado, cep,
	data_abertura, status, observacoes`

// Create persiste uma nova loja e preenche o ID gerado.
func (r *LojaRepo) Create(ctx context.Context, l *entity.Loja) error {
	query := `
		INSERT INTO lojas (nome, responsavel, telefone, email, endereco, cidade, estado, cep,
		                   data_abertura, status, observacoes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		l.Nome, l.Responsavel, l.Telefone, l.Email, l.Endereco, l.Cidade, l.Estado, l.CEP,
		l.DataAbertura, l.Status, l.Observacoes,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert loja: %w", err)
	}
	return nil
}

// GetByID busca uma loja por ID. Devolve nil se não existir.
func (r *LojaRepo) GetByID(ctx context.Context, id int64) (*entity.Loja, error) {
	var l entity.Loja
	err := r.q.QueryRow(ctx, `SELECT `+lojaColumns+` FROM lojas WHERE id = $1`, id).Scan(
		&l.ID, &l.Nome, &l.Responsavel, &l.Telefone, &l.Email, &l.Endereco,
		&l.Cidade, &l.Estado, &l.CEP, &l.DataAbertura, &l.Status, &l.Observacoes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get loja: %w", err)
	}
	return &l, nil
}

// List devolve as lojas ordenadas por nome. A busca cobre nome, responsável e cidade.
func (r *LojaRepo) List(ctx context.Context, filter repository.LojaFilter) ([]*entity.Loja, error) {
	query := `SELECT ` + lojaColumns + `
		FROM lojas
		WHERE ($1 = '' OR nome ILIKE '%' || $1 || '%'
		       OR responsavel ILIKE '%' || $1 || '%'
		       OR cidade ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR status = $2)
		ORDER BY nome`
	rows, err := r.q.Query(ctx, query, escapeBusca(filter.Busca), filter.Status)
	if err != nil {
		return nil, fmt.Errorf("list lojas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Loja
	for rows.Next() {
		var l entity.Loja
		if err := rows.Scan(&l.ID, &l.Nome, &l.Responsavel, &l.Telefone, &l.Email, &l.Endereco,
			&l.Cidade, &l.Estado, &l.CEP, &l.DataAbertura, &l.Status, &l.Observacoes); err != nil {
			return nil, fmt.Errorf("scan loja: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update atualiza uma loja existente. Devolve domain.ErrNotFound para ID desconhecido.
func (r *LojaRepo) Update(ctx context.Context, l *entity.Loja) error {
	query := `
		UPDATE lojas
		SET nome = $2, responsavel = $3, telefone = $4, email = $5, endereco = $6,
		    cidade = $7, estado = $8, cep = $9, data_abertura = $10, status = $11, observacoes = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		l.ID, l.Nome, l.Responsavel, l.Telefone, l.Email, l.Endereco,
		l.Cidade, l.Estado, l.CEP, l.DataAbertura, l.Status, l.Observacoes,
	)
	if err != nil {
		return fmt.Errorf("update loja: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete exclui uma loja por ID. Lojas não têm dependentes.
func (r *LojaRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM lojas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete loja: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
