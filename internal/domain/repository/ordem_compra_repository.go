package repository

import (
	"context"

	"github.com/estoqueti/estoque-web/internal/domain/entity"
)

// OrdemCompraRepository define a porta de persistência para OrdemCompra e suas linhas.
type OrdemCompraRepository interface {
	// Create persiste a ordem e as linhas de ItemOrdem em uma única transação.
	Create(ctx context.Context, o *entity.OrdemCompra) error
	GetByID(ctx context.Context, id int64) (*entity.OrdemCompra, error)
}
