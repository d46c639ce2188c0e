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

var _ repository.FuncionarioRepository = (*FuncionarioRepo)(nil)

// FuncionarioRepo implementação do porto FuncionarioRepository sobre PostgreSQL.
type FuncionarioRepo struct {
	q Querier
}

// NewFuncionarioRepository constrói o adaptador de persistência de funcionários.
func NewFuncionarioRepository(q Querier) *FuncionarioRepo {
	return &FuncionarioRepo{q: q}
}

// Create persiste um novo funcionário e preenche o ID gerado.
func (r *FuncionarioRepo) Create(ctx context.Context, f *entity.Funcionario) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO funcionarios (nome, setor) VALUES ($1, $2) RETURNING id`,
		f.Nome, f.Setor,
	).Scan(&f.ID)
	if err != nil {
		return fmt.Errorf("insert funcionario: %w", err)
	}
	return nil
}

// GetByID busca um funcionário por ID. Devolve nil se não existir.
func (r *FuncionarioRepo) GetByID(ctx context.Context, id int64) (*entity.Funcionario, error) {
	var f entity.Funcionario
	err := r.q.QueryRow(ctx, `SELECT id, nome, setor FROM funcionarios WHERE id = $1`, id).
		Scan(&f.ID, &f.Nome, &f.Setor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get funcionario: %w", err)
	}
	return &f, nil
}

// List devolve todos os funcionários ordenados por nome.
func (r *FuncionarioRepo) List(ctx context.Context) ([]*entity.Funcionario, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nome, setor FROM funcionarios ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("list funcionarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Funcionario
	for rows.Next() {
		var f entity.Funcionario
		if err := rows.Scan(&f.ID, &f.Nome, &f.Setor); err != nil {
			return nil, fmt.Errorf("scan funcionario: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete exclui um funcionário; as atribuições dele caem em cascata.
func (r *FuncionarioRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM funcionarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete funcionario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
