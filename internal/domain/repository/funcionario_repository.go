package repository

import (
	"context"

	"github.com/estoqueti/estoque-web/internal/domain/entity"
)

// FuncionarioRepository define a porta de persistência para Funcionario.
type FuncionarioRepository interface {
	Create(ctx context.Context, f *entity.Funcionario) error
	GetByID(ctx context.Context, id int64) (*entity.Funcionario, error)
	List(ctx context.Context) ([]*entity.Funcionario, error)
	Delete(ctx context.Context, id int64) error
}
