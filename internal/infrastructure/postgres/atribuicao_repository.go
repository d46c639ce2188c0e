package postgres

import (
	"context"
	"fmt"

	"github.com/estoqueti/estoque-web/internal/domain"
	"github.com/estoqueti/estoque-web/internal/domain/entity"
	"github.com/estoqueti/estoque-web/internal/domain/repository"
)

var _ repository.AtribuicaoRepository = (*AtribuicaoRepo)(nil)

// AtribuicaoRepo implementação do porto AtribuicaoRepository sobre PostgreSQL.
type AtribuicaoRepo struct {
	q Querier
}

// NewAtribuicaoRepository constrói o adaptador de persistência de atribuições.
func NewAtribuicaoRepository(q Querier) *AtribuicaoRepo {
	return &AtribuicaoRepo{q: q}
}

// Create persiste uma nova atribuição e preenche ID e Data gerados.
func (r *AtribuicaoRepo) Create(ctx context.Context, a *entity.Atribuicao) error {
	if a.Status == "" {
		a.Status = "ATIVO"
	}
	err := r.q.QueryRow(ctx, `
		INSERT INTO atribuicoes (item_id, funcionario_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, data`,
		a.ItemID, a.FuncionarioID, a.Status,
	).Scan(&a.ID, &a.Data)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert atribuicao: %w", err)
	}
	return nil
}

// ListByFuncionario devolve as atribuições de um funcionário, mais recentes primeiro.
func (r *AtribuicaoRepo) ListByFuncionario(ctx context.Context, funcionarioID int64) ([]*entity.Atribuicao, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, item_id, funcionario_id, data, status
		FROM atribuicoes WHERE funcionario_id = $1
		ORDER BY data DESC`, funcionarioID)
	if err != nil {
		return nil, fmt.Errorf("list atribuicoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Atribuicao
	for rows.Next() {
		var a entity.Atribuicao
		if err := rows.Scan(&a.ID, &a.ItemID, &a.FuncionarioID, &a.Data, &a.Status); err != nil {
			return nil, fmt.Errorf("scan atribuicao: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
