package repository

import (
	"context"

	"github.com/estoqueti/estoque-web/internal/domain/entity"
)

// AtribuicaoRepository define a porta de persistência para Atribuicao.
type AtribuicaoRepository interface {
	Create(ctx context.Context, a *entity.Atribuicao) error
	ListByFuncionario(ctx context.Context, funcionarioID int64) ([]*entity.Atribuicao, error)
}
